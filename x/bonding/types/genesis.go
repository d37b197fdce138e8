package types

import "fmt"

// GenesisState holds the bonding module genesis state
type GenesisState struct {
	Params        Params    `json:"params"`
	Bonds         []Bond    `json:"bonds"`
	Disputes      []Dispute `json:"disputes"`
	NextDisputeID uint64    `json:"next_dispute_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Bonds:         []Bond{},
		Disputes:      []Dispute{},
		NextDisputeID: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextDisputeID == 0 {
		return fmt.Errorf("next dispute id cannot be zero")
	}

	seenWorkers := make(map[string]bool)
	for i, bond := range gs.Bonds {
		if err := bond.Validate(); err != nil {
			return fmt.Errorf("bond %d: %w", i, err)
		}
		if seenWorkers[bond.Worker] {
			return fmt.Errorf("bond %d: duplicate worker %s", i, bond.Worker)
		}
		seenWorkers[bond.Worker] = true
	}

	seenDisputes := make(map[uint64]bool)
	for i, dispute := range gs.Disputes {
		if err := dispute.Validate(); err != nil {
			return fmt.Errorf("dispute %d: %w", i, err)
		}
		if seenDisputes[dispute.ID] {
			return fmt.Errorf("dispute %d: duplicate id %d", i, dispute.ID)
		}
		if dispute.ID >= gs.NextDisputeID {
			return fmt.Errorf("dispute %d: id %d >= next dispute id %d", i, dispute.ID, gs.NextDisputeID)
		}
		seenDisputes[dispute.ID] = true
	}

	return nil
}
