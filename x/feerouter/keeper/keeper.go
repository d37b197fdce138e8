package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	daoparamstypes "github.com/drip-network/drip/x/daoparams/types"
	"github.com/drip-network/drip/x/feerouter/types"
	treasurytypes "github.com/drip-network/drip/x/treasury/types"
)

// Keeper of the feerouter store. It splits collected protocol fees between
// the validator pool and the treasury according to the governed theta
// parameter.
type Keeper struct {
	storeKey     storetypes.StoreKey
	bankKeeper   types.BankKeeper
	paramsSource types.ParamsSource
	authority    string
	denom        string
}

// NewKeeper creates a new feerouter Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	paramsSource types.ParamsSource,
	authority string,
	denom string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}
	return &Keeper{
		storeKey:     key,
		bankKeeper:   bankKeeper,
		paramsSource: paramsSource,
		authority:    authority,
		denom:        denom,
	}
}

// GetAuthority returns the module's authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the feerouter module
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

// RouteFee splits the fee held by fromModule between the validator pool and
// the treasury using the governed theta parameter. Callers skip the call for
// zero fees. With no validator pool configured the whole fee goes to the
// treasury.
func (k Keeper) RouteFee(ctx context.Context, fromModule string, fee math.Int) (validators, treasury math.Int, err error) {
	if fee.IsNil() || !fee.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("fee must be positive")
	}

	theta, err := k.paramsSource.GetValue(ctx, daoparamstypes.KeyFeeSplitThetaBps)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	params := k.GetParams(ctx)
	if params.ValidatorPoolAddress == "" {
		theta = math.ZeroInt()
	}

	validators, treasury, err = types.ComputeSplit(fee, theta)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if validators.IsPositive() {
		poolAddr, err := sdk.AccAddressFromBech32(params.ValidatorPoolAddress)
		if err != nil {
			return math.Int{}, math.Int{}, fmt.Errorf("invalid validator pool address: %w", err)
		}
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, validators))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, fromModule, poolAddr, coins); err != nil {
			return math.Int{}, math.Int{}, types.ErrTransferFailed.Wrap(err.Error())
		}
	}
	if treasury.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, treasury))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, fromModule, treasurytypes.ModuleName, coins); err != nil {
			return math.Int{}, math.Int{}, types.ErrTransferFailed.Wrap(err.Error())
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeRouted,
			sdk.NewAttribute(types.AttributeKeySource, fromModule),
			sdk.NewAttribute(types.AttributeKeyAmount, fee.String()),
			sdk.NewAttribute(types.AttributeKeyThetaBps, theta.String()),
			sdk.NewAttribute(types.AttributeKeyValidatorsShare, validators.String()),
			sdk.NewAttribute(types.AttributeKeyTreasuryShare, treasury.String()),
		),
	)
	return validators, treasury, nil
}
