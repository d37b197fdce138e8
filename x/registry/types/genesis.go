package types

import "fmt"

// GenesisState holds the registry module genesis state
type GenesisState struct {
	DaoInfo    *DaoInfo    `json:"dao_info,omitempty"`
	Components []Component `json:"components"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Components: []Component{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.DaoInfo != nil {
		if err := gs.DaoInfo.Validate(); err != nil {
			return fmt.Errorf("invalid dao info: %w", err)
		}
	}

	seen := make(map[string]bool)
	for i, component := range gs.Components {
		if err := component.Validate(); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		if seen[component.Name] {
			return fmt.Errorf("component %d: duplicate name %s", i, component.Name)
		}
		seen[component.Name] = true
	}

	return nil
}
