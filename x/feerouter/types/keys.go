package types

const (
	// ModuleName defines the module name. Fees in flight sit in this module's
	// account between collection and routing.
	ModuleName = "feerouter"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for feerouter
	RouterKey = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// ModuleParamsKey is the store key for the module parameters
	ModuleParamsKey = "Params"
)

// BpsDenominator is the basis point scale all split arithmetic uses
const BpsDenominator = 10000
