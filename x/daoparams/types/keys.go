package types

const (
	// ModuleName defines the module name
	ModuleName = "daoparams"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for daoparams
	RouterKey = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// BoundedKeyPrefix is the prefix for bounded parameter records
	BoundedKeyPrefix = "Bounded/value/"

	// ProposalKeyPrefix is the prefix for pending timelocked proposals
	ProposalKeyPrefix = "Proposal/value/"

	// ModuleParamsKey is the store key for the module's own parameters
	ModuleParamsKey = "Params"
)

// Well-known governance parameter keys. Callers may register additional keys
// via SetBounds; these are the ones the settlement core reads.
const (
	// KeyProtocolFeeBps is the protocol fee taken from each settlement, in
	// basis points of the work value.
	KeyProtocolFeeBps = "protocol_fee_bps"

	// KeyFeeSplitThetaBps is the share of the protocol fee routed to the
	// validator pool, in basis points. The remainder goes to the treasury.
	KeyFeeSplitThetaBps = "fee_split_theta_bps"

	// KeyMinMinerBond is the minimum staked bond a miner must hold to be
	// assigned a session.
	KeyMinMinerBond = "min_miner_bond"
)

// BoundedKey returns the store key for a bounded parameter
func BoundedKey(key string) []byte {
	return append(KeyPrefix(BoundedKeyPrefix), []byte(key)...)
}

// ProposalKey returns the store key for a pending proposal
func ProposalKey(key string) []byte {
	return append(KeyPrefix(ProposalKeyPrefix), []byte(key)...)
}
