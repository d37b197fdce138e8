package keeper

import (
	"context"
	"fmt"

	"github.com/drip-network/drip/x/bonding/types"
)

// InitGenesis initializes the bonding module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, bond := range data.Bonds {
		if err := bond.Validate(); err != nil {
			return fmt.Errorf("invalid bond for %s: %w", bond.Worker, err)
		}
		if err := k.SetBond(ctx, bond); err != nil {
			return err
		}
	}

	for _, dispute := range data.Disputes {
		if err := dispute.Validate(); err != nil {
			return fmt.Errorf("invalid dispute %d: %w", dispute.ID, err)
		}
		if err := k.SetDispute(ctx, dispute); err != nil {
			return err
		}
	}

	k.SetNextDisputeID(ctx, data.NextDisputeID)
	return nil
}

// ExportGenesis returns the bonding module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := &types.GenesisState{
		Params:        k.GetParams(ctx),
		Bonds:         []types.Bond{},
		Disputes:      []types.Dispute{},
		NextDisputeID: k.GetNextDisputeID(ctx),
	}

	k.IterateBonds(ctx, func(bond types.Bond) bool {
		genesis.Bonds = append(genesis.Bonds, bond)
		return false
	})
	k.IterateDisputes(ctx, func(dispute types.Dispute) bool {
		genesis.Disputes = append(genesis.Disputes, dispute)
		return false
	})

	return genesis
}
