package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/escrow/types"
)

// Keeper of the escrow store. It owns the session lifecycle: funding,
// assignment, verified settlement with fee routing, and remainder reclaim.
type Keeper struct {
	storeKey      storetypes.StoreKey
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	bondingKeeper types.BondingKeeper
	verifier      types.VerifierKeeper
	feeRouter     types.FeeRouter
	paramsSource  types.ParamsSource
	authority     string
	denom         string
	metrics       *Metrics
}

// NewKeeper creates a new escrow Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	bondingKeeper types.BondingKeeper,
	verifier types.VerifierKeeper,
	feeRouter types.FeeRouter,
	paramsSource types.ParamsSource,
	authority string,
	denom string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}
	return &Keeper{
		storeKey:      key,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		bondingKeeper: bondingKeeper,
		verifier:      verifier,
		feeRouter:     feeRouter,
		paramsSource:  paramsSource,
		authority:     authority,
		denom:         denom,
		metrics:       NewMetrics(),
	}
}

// GetAuthority returns the module's authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Denom returns the settlement denom
func (k Keeper) Denom() string {
	return k.denom
}

// getStore returns the KVStore for the escrow module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetParams retrieves the module parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.KeyPrefix(types.ModuleParamsKey))
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.KeyPrefix(types.ModuleParamsKey), bz)
	return nil
}

// assignerAddress resolves the configured assigner role, defaulting to the
// governance authority.
func (k Keeper) assignerAddress(ctx context.Context) string {
	params := k.GetParams(ctx)
	if params.AssignerAddress != "" {
		return params.AssignerAddress
	}
	return k.authority
}

// settlerAddress resolves the configured settler role. Empty means any
// signer may submit, the proof itself gates settlement.
func (k Keeper) settlerAddress(ctx context.Context) string {
	return k.GetParams(ctx).SettlerAddress
}
