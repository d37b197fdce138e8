package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/bonding/types"
)

// Keeper of the bonding store. It custodies worker collateral in the module
// account, runs the timed unbonding queue, and adjudicates fraud disputes
// over that collateral.
type Keeper struct {
	storeKey      storetypes.StoreKey
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	authority     string
	denom         string

	// sessionSource is set after construction; escrow and bonding reference
	// each other so one side binds late.
	sessionSource types.SessionSource
}

// NewKeeper creates a new bonding Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
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
		authority:     authority,
		denom:         denom,
	}
}

// SetSessionSource wires the session assignment view. Must be called before
// fraud disputes are accepted.
func (k *Keeper) SetSessionSource(src types.SessionSource) {
	k.sessionSource = src
}

// GetAuthority returns the module's authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Denom returns the collateral denom
func (k Keeper) Denom() string {
	return k.denom
}

// getStore returns the KVStore for the bonding module
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
