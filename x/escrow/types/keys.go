package types

const (
	// ModuleName defines the module name. The module account under this name
	// holds all funded session balances.
	ModuleName = "escrow"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for escrow
	RouterKey = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// SessionKeyPrefix is the prefix for session escrow records
	SessionKeyPrefix = "Session/value/"

	// ModuleParamsKey is the store key for the module parameters
	ModuleParamsKey = "Params"
)

// BpsDenominator is the basis point scale used for fee arithmetic
const BpsDenominator = 10000

// SessionKey returns the store key for a session
func SessionKey(id SessionID) []byte {
	return append(KeyPrefix(SessionKeyPrefix), id[:]...)
}
