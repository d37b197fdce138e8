package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the feerouter module parameters.
type Params struct {
	// ValidatorPoolAddress receives the validator share of each routed fee.
	// When empty the whole fee is routed to the treasury.
	ValidatorPoolAddress string `json:"validator_pool_address"`
}

// DefaultParams returns default feerouter parameters
func DefaultParams() Params {
	return Params{
		ValidatorPoolAddress: "",
	}
}

// Validate performs basic validation of module parameters
func (p Params) Validate() error {
	if p.ValidatorPoolAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.ValidatorPoolAddress); err != nil {
			return fmt.Errorf("invalid validator pool address: %w", err)
		}
	}
	return nil
}
