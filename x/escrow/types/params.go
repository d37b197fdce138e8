package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the escrow module parameters. Empty addresses fall back to the
// governance authority for the corresponding role.
type Params struct {
	// AssignerAddress may assign miners to funded sessions.
	AssignerAddress string `json:"assigner_address"`

	// SettlerAddress may submit settlements. The proof does the real gating;
	// this narrows who can spend gas on verification.
	SettlerAddress string `json:"settler_address"`
}

// DefaultParams returns default escrow parameters
func DefaultParams() Params {
	return Params{
		AssignerAddress: "",
		SettlerAddress:  "",
	}
}

// Validate performs basic validation of module parameters
func (p Params) Validate() error {
	if p.AssignerAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.AssignerAddress); err != nil {
			return fmt.Errorf("invalid assigner address: %w", err)
		}
	}
	if p.SettlerAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.SettlerAddress); err != nil {
			return fmt.Errorf("invalid settler address: %w", err)
		}
	}
	return nil
}
