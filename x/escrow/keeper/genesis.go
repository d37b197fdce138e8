package keeper

import (
	"context"
	"fmt"

	"github.com/drip-network/drip/x/escrow/types"
)

// InitGenesis initializes the escrow module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, session := range data.Sessions {
		if err := session.Validate(); err != nil {
			return fmt.Errorf("invalid session %s: %w", session.ID, err)
		}
		if err := k.SetSession(ctx, session); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the escrow module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := &types.GenesisState{
		Params:   k.GetParams(ctx),
		Sessions: []types.Session{},
	}

	k.IterateSessions(ctx, func(session types.Session) bool {
		genesis.Sessions = append(genesis.Sessions, session)
		return false
	})

	return genesis
}
