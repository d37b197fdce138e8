package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/drip-network/drip/x/daoparams/types"
)

// InitGenesis initializes the daoparams module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, bounded := range data.Bounded {
		if err := bounded.Validate(); err != nil {
			return fmt.Errorf("invalid bounded parameter %s: %w", bounded.Key, err)
		}
		if err := k.setBounded(ctx, bounded); err != nil {
			return err
		}
	}

	store := k.getStore(ctx)
	for _, proposal := range data.Proposals {
		if err := proposal.Validate(); err != nil {
			return fmt.Errorf("invalid proposal for %s: %w", proposal.Key, err)
		}
		bz, err := json.Marshal(proposal)
		if err != nil {
			return fmt.Errorf("failed to marshal proposal for %s: %w", proposal.Key, err)
		}
		store.Set(types.ProposalKey(proposal.Key), bz)
	}

	return nil
}

// ExportGenesis returns the daoparams module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := &types.GenesisState{
		Params:    k.GetParams(ctx),
		Bounded:   []types.Bounded{},
		Proposals: []types.Proposal{},
	}

	_ = k.IterateBounded(ctx, func(bounded types.Bounded) bool {
		genesis.Bounded = append(genesis.Bounded, bounded)
		return false
	})
	_ = k.IterateProposals(ctx, func(proposal types.Proposal) bool {
		genesis.Proposals = append(genesis.Proposals, proposal)
		return false
	})

	return genesis
}
