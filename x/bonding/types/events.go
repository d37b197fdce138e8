package types

// Event types for the bonding module
const (
	// Bond events
	EventTypeBonded          = "bonding_bonded"
	EventTypeUnbondInitiated = "bonding_unbond_initiated"
	EventTypeWithdrawn       = "bonding_withdrawn"
	EventTypeSlashed         = "bonding_slashed"

	// Fraud dispute events
	EventTypeFraudReported  = "bonding_fraud_reported"
	EventTypeFraudRebutted  = "bonding_fraud_rebutted"
	EventTypeFraudResolved  = "bonding_fraud_resolved"
)

// Event attribute keys for the bonding module
const (
	AttributeKeyWorker       = "worker"
	AttributeKeyAmount       = "amount"
	AttributeKeyStaked       = "staked"
	AttributeKeyUnbonding    = "unbonding"
	AttributeKeyReadyAt      = "ready_at"
	AttributeKeyReason       = "reason"
	AttributeKeyDisputeID    = "dispute_id"
	AttributeKeySessionID    = "session_id"
	AttributeKeyReporter     = "reporter"
	AttributeKeyResolution   = "resolution"
	AttributeKeyWindowEndsAt = "window_ends_at"
)
