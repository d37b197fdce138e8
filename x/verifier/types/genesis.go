package types

import "fmt"

// GenesisState holds the verifier module genesis state
type GenesisState struct {
	ActiveScheme   string   `json:"active_scheme"`
	TrustedSchemes []string `json:"trusted_schemes"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		ActiveScheme:   SchemeGroth16,
		TrustedSchemes: []string{SchemeGroth16},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.ActiveScheme == "" {
		return fmt.Errorf("active scheme cannot be empty")
	}

	seen := make(map[string]bool)
	for i, scheme := range gs.TrustedSchemes {
		if scheme == "" {
			return fmt.Errorf("trusted scheme %d: empty scheme name", i)
		}
		if seen[scheme] {
			return fmt.Errorf("trusted scheme %d: duplicate scheme %s", i, scheme)
		}
		seen[scheme] = true
	}
	if !seen[gs.ActiveScheme] {
		return fmt.Errorf("active scheme %s is not in the trusted set", gs.ActiveScheme)
	}

	return nil
}
