package types

// Event types for the feerouter module
const (
	EventTypeFeeRouted = "feerouter_fee_routed"
)

// Event attribute keys for the feerouter module
const (
	AttributeKeySource          = "source"
	AttributeKeyAmount          = "amount"
	AttributeKeyThetaBps        = "theta_bps"
	AttributeKeyValidatorsShare = "validators_share"
	AttributeKeyTreasuryShare   = "treasury_share"
)
