package keeper

import (
	"context"
	"fmt"

	"github.com/drip-network/drip/x/feerouter/types"
)

// InitGenesis initializes the feerouter module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	return nil
}

// ExportGenesis returns the feerouter module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params: k.GetParams(ctx),
	}
}
