package types

import "fmt"

// GenesisState holds the escrow module genesis state
type GenesisState struct {
	Params   Params    `json:"params"`
	Sessions []Session `json:"sessions"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Sessions: []Session{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[SessionID]bool)
	for i, session := range gs.Sessions {
		if err := session.Validate(); err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
		if seen[session.ID] {
			return fmt.Errorf("session %d: duplicate id %s", i, session.ID)
		}
		seen[session.ID] = true
	}

	return nil
}
