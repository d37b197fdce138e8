package types

// GenesisState holds the treasury module genesis state. The vault itself is a
// module account; its balance lives in x/bank genesis.
type GenesisState struct{}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	return nil
}
