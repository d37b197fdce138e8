package types

// Event types for the treasury module
const (
	EventTypeTreasuryReleased = "treasury_released"
)

// Event attribute keys for the treasury module
const (
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeyDenom     = "denom"
)
