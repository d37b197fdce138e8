package types

import "encoding/binary"

const (
	// ModuleName defines the module name. The module account under this name
	// holds staked and unbonding collateral plus open dispute deposits.
	ModuleName = "bonding"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for bonding
	RouterKey = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// BondKeyPrefix is the prefix for worker bond records
	BondKeyPrefix = "Bond/value/"

	// DisputeKeyPrefix is the prefix for fraud dispute records
	DisputeKeyPrefix = "Dispute/value/"

	// DisputeBySessionKeyPrefix indexes disputes by session id
	DisputeBySessionKeyPrefix = "Dispute/session/"

	// NextDisputeIDKey holds the big-endian uint64 dispute id counter
	NextDisputeIDKey = "Dispute/next_id"

	// ModuleParamsKey is the store key for the module parameters
	ModuleParamsKey = "Params"
)

// BondKey returns the store key for a worker's bond
func BondKey(worker string) []byte {
	return append(KeyPrefix(BondKeyPrefix), []byte(worker)...)
}

// DisputeKey returns the store key for a dispute
func DisputeKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(KeyPrefix(DisputeKeyPrefix), bz...)
}

// DisputeBySessionKey returns the index key binding a session to a dispute
func DisputeBySessionKey(sessionID string, id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	key := append(KeyPrefix(DisputeBySessionKeyPrefix), []byte(sessionID)...)
	key = append(key, '/')
	return append(key, bz...)
}
