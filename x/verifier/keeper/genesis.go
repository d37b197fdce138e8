package keeper

import (
	"context"
	"fmt"

	"github.com/drip-network/drip/x/verifier/types"
)

// InitGenesis initializes the verifier module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	store := k.getStore(ctx)
	for _, scheme := range data.TrustedSchemes {
		store.Set(types.TrustedSchemeKey(scheme), []byte{1})
	}

	if !k.IsTrusted(ctx, data.ActiveScheme) {
		return fmt.Errorf("active scheme %s is not in the trusted set", data.ActiveScheme)
	}
	store.Set(types.KeyPrefix(types.ActiveSchemeKey), []byte(data.ActiveScheme))
	return nil
}

// ExportGenesis returns the verifier module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	active, _ := k.GetActiveScheme(ctx)
	return &types.GenesisState{
		ActiveScheme:   active,
		TrustedSchemes: k.TrustedSchemes(ctx),
	}
}
