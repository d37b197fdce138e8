package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState holds the daoparams module genesis state
type GenesisState struct {
	Params    Params     `json:"params"`
	Bounded   []Bounded  `json:"bounded"`
	Proposals []Proposal `json:"proposals"`
}

// DefaultGenesis returns the default genesis state. It seeds the parameters
// the settlement core reads so a fresh chain can settle sessions without a
// governance round first.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Bounded: []Bounded{
			{Key: KeyProtocolFeeBps, Min: math.ZeroInt(), Max: math.NewInt(2000), Current: math.NewInt(1200)},
			{Key: KeyFeeSplitThetaBps, Min: math.ZeroInt(), Max: math.NewInt(10000), Current: math.NewInt(7000)},
			{Key: KeyMinMinerBond, Min: math.ZeroInt(), Max: math.NewInt(1_000_000_000_000), Current: math.NewInt(1_000_000)},
		},
		Proposals: []Proposal{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[string]bool)
	for i, b := range gs.Bounded {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bounded %d: %w", i, err)
		}
		if seen[b.Key] {
			return fmt.Errorf("bounded %d: duplicate key %s", i, b.Key)
		}
		seen[b.Key] = true
	}

	for i, p := range gs.Proposals {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("proposal %d: %w", i, err)
		}
		if !seen[p.Key] {
			return fmt.Errorf("proposal %d: proposal for uninitialized key %s", i, p.Key)
		}
	}

	return nil
}
