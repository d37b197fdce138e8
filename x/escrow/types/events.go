package types

// Event types for the escrow module
const (
	EventTypeFunded             = "escrow_funded"
	EventTypeMinerAssigned      = "escrow_miner_assigned"
	EventTypeSettled            = "escrow_settled"
	EventTypeRemainderReclaimed = "escrow_remainder_reclaimed"
)

// Event attribute keys for the escrow module
const (
	AttributeKeySessionID = "session_id"
	AttributeKeyClient    = "client"
	AttributeKeyMiner     = "miner"
	AttributeKeyAmount    = "amount"
	AttributeKeyWorkValue = "work_value"
	AttributeKeyMinerNet  = "miner_net"
	AttributeKeyFee       = "fee"
	AttributeKeyRemaining = "remaining"
)
