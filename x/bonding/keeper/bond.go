package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/bonding/types"
)

// GetBond retrieves a worker's bond record
func (k Keeper) GetBond(ctx context.Context, worker string) (types.Bond, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.BondKey(worker))
	if bz == nil {
		return types.Bond{}, false
	}

	var bond types.Bond
	if err := json.Unmarshal(bz, &bond); err != nil {
		return types.Bond{}, false
	}
	return bond, true
}

// SetBond stores a worker's bond record
func (k Keeper) SetBond(ctx context.Context, bond types.Bond) error {
	bz, err := json.Marshal(bond)
	if err != nil {
		return fmt.Errorf("SetBond: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.BondKey(bond.Worker), bz)
	return nil
}

// IterateBonds walks all bond records, stopping when cb returns true
func (k Keeper) IterateBonds(ctx context.Context, cb func(bond types.Bond) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.BondKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var bond types.Bond
		if err := json.Unmarshal(iterator.Value(), &bond); err != nil {
			continue
		}
		if cb(bond) {
			break
		}
	}
}

// BondStake locks worker collateral into the module account and credits the
// worker's staked balance.
func (k Keeper) BondStake(ctx context.Context, worker string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	workerAddr, err := sdk.AccAddressFromBech32(worker)
	if err != nil {
		return fmt.Errorf("invalid worker address: %w", err)
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, workerAddr, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrap(err.Error())
	}

	bond, found := k.GetBond(ctx, worker)
	if !found {
		bond = types.NewBond(worker)
	}
	bond.Staked = bond.Staked.Add(amount)
	if err := k.SetBond(ctx, bond); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBonded,
			sdk.NewAttribute(types.AttributeKeyWorker, worker),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyStaked, bond.Staked.String()),
		),
	)
	return nil
}

// InitiateUnbond moves staked collateral into the unbonding queue. Repeated
// calls add to the queued amount and restart the release clock; queued
// collateral stays slashable until withdrawn.
func (k Keeper) InitiateUnbond(ctx context.Context, worker string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrZeroAmount
	}

	bond, found := k.GetBond(ctx, worker)
	if !found {
		return types.ErrUnknownBond.Wrapf("worker %s", worker)
	}
	if bond.Staked.LT(amount) {
		return types.ErrInsufficientStake.Wrapf("staked %s, requested %s", bond.Staked, amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(ctx)

	bond.Staked = bond.Staked.Sub(amount)
	bond.UnbondingAmount = bond.UnbondingAmount.Add(amount)
	bond.UnbondReadyAt = sdkCtx.BlockTime().Add(time.Duration(params.UnbondDelaySeconds) * time.Second)
	if err := k.SetBond(ctx, bond); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnbondInitiated,
			sdk.NewAttribute(types.AttributeKeyWorker, worker),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyUnbonding, bond.UnbondingAmount.String()),
			sdk.NewAttribute(types.AttributeKeyReadyAt, bond.UnbondReadyAt.UTC().Format(time.RFC3339)),
		),
	)
	return nil
}

// WithdrawUnbonded releases the worker's queued collateral back to their
// account once the unbonding delay has elapsed. State is written before the
// outbound transfer.
func (k Keeper) WithdrawUnbonded(ctx context.Context, worker string) (math.Int, error) {
	workerAddr, err := sdk.AccAddressFromBech32(worker)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("invalid worker address: %w", err)
	}

	bond, found := k.GetBond(ctx, worker)
	if !found {
		return math.ZeroInt(), types.ErrUnknownBond.Wrapf("worker %s", worker)
	}
	if !bond.UnbondingAmount.IsPositive() {
		return math.ZeroInt(), types.ErrNothingToWithdraw
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Before(bond.UnbondReadyAt) {
		return math.ZeroInt(), types.ErrNotReady.Wrapf("ready at %s", bond.UnbondReadyAt.UTC().Format(time.RFC3339))
	}

	amount := bond.UnbondingAmount
	bond.UnbondingAmount = math.ZeroInt()
	if err := k.SetBond(ctx, bond); err != nil {
		return math.ZeroInt(), err
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, workerAddr, coins); err != nil {
		return math.ZeroInt(), types.ErrTransferFailed.Wrap(err.Error())
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyWorker, worker),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return amount, nil
}

// Slash burns up to amount of the worker's collateral, staked first then
// unbonding. Returns the amount actually burned, capped at the worker's
// total collateral.
func (k Keeper) Slash(ctx context.Context, worker string, amount math.Int, reason string) (math.Int, error) {
	if !amount.IsPositive() {
		return math.ZeroInt(), types.ErrZeroAmount
	}

	bond, found := k.GetBond(ctx, worker)
	if !found {
		return math.ZeroInt(), types.ErrUnknownBond.Wrapf("worker %s", worker)
	}

	slashed := math.MinInt(amount, bond.Total())
	if !slashed.IsPositive() {
		return math.ZeroInt(), nil
	}

	fromStaked := math.MinInt(slashed, bond.Staked)
	fromUnbonding := slashed.Sub(fromStaked)
	bond.Staked = bond.Staked.Sub(fromStaked)
	bond.UnbondingAmount = bond.UnbondingAmount.Sub(fromUnbonding)
	if err := k.SetBond(ctx, bond); err != nil {
		return math.ZeroInt(), err
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, slashed))
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return math.ZeroInt(), types.ErrTransferFailed.Wrapf("burn: %s", err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSlashed,
			sdk.NewAttribute(types.AttributeKeyWorker, worker),
			sdk.NewAttribute(types.AttributeKeyAmount, slashed.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
	return slashed, nil
}

// HasSufficientBond reports whether the worker's staked collateral covers the
// required amount. Unbonding collateral does not count toward new
// assignments.
func (k Keeper) HasSufficientBond(ctx context.Context, worker string, required math.Int) bool {
	bond, found := k.GetBond(ctx, worker)
	if !found {
		return !required.IsPositive()
	}
	return bond.Staked.GTE(required)
}
