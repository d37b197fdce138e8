package types

const (
	// ModuleName defines the module name
	ModuleName = "registry"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for registry
	RouterKey = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// DaoInfoKey is the store key for the DAO descriptor
	DaoInfoKey = "DaoInfo"

	// ComponentKeyPrefix is the prefix for component address bindings
	ComponentKeyPrefix = "Component/value/"
)

// Component names the registry accepts. The set is fixed; a binding outside
// it is a deployment wiring bug, not data.
const (
	ComponentTreasury       = "treasury"
	ComponentGovernance     = "governance"
	ComponentVerifier       = "verifier"
	ComponentFeeRouter      = "fee_router"
	ComponentParameterStore = "parameter_store"
	ComponentBondingManager = "bonding_manager"
	ComponentFraudProof     = "fraud_proof"
	ComponentSessionEscrow  = "session_escrow"
)

// KnownComponents is the fixed set of registerable component names
var KnownComponents = map[string]bool{
	ComponentTreasury:       true,
	ComponentGovernance:     true,
	ComponentVerifier:       true,
	ComponentFeeRouter:      true,
	ComponentParameterStore: true,
	ComponentBondingManager: true,
	ComponentFraudProof:     true,
	ComponentSessionEscrow:  true,
}

// ComponentKey returns the store key for a component binding
func ComponentKey(name string) []byte {
	return append(KeyPrefix(ComponentKeyPrefix), []byte(name)...)
}
