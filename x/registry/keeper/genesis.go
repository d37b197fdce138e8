package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/drip-network/drip/x/registry/types"
)

// InitGenesis initializes the registry module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if data.DaoInfo != nil {
		if err := data.DaoInfo.Validate(); err != nil {
			return fmt.Errorf("invalid dao info: %w", err)
		}
		bz, err := json.Marshal(data.DaoInfo)
		if err != nil {
			return fmt.Errorf("failed to marshal dao info: %w", err)
		}
		k.getStore(ctx).Set(types.KeyPrefix(types.DaoInfoKey), bz)
	}

	for _, component := range data.Components {
		if err := component.Validate(); err != nil {
			return fmt.Errorf("invalid component %s: %w", component.Name, err)
		}
		k.getStore(ctx).Set(types.ComponentKey(component.Name), []byte(component.Address))
	}

	return nil
}

// ExportGenesis returns the registry module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := &types.GenesisState{
		Components: []types.Component{},
	}

	if info, found := k.GetDaoInfo(ctx); found {
		genesis.DaoInfo = &info
	}
	k.IterateComponents(ctx, func(component types.Component) bool {
		genesis.Components = append(genesis.Components, component)
		return false
	})

	return genesis
}
