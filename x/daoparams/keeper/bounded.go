package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/daoparams/types"
)

// SetBounds registers a governance parameter with its bound range and initial
// value. Fails if the caller is not the governance authority, if min > max, or
// if the initial value falls outside the range. Re-registering an existing key
// is rejected so bounds cannot be silently widened around the timelock.
func (k Keeper) SetBounds(ctx context.Context, authority, key string, min, max, initial math.Int) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if key == "" {
		return types.ErrUnknownKey.Wrap("key cannot be empty")
	}
	if min.IsNil() || max.IsNil() || initial.IsNil() {
		return types.ErrInvalidValue.Wrap("min, max and initial must be set")
	}
	if min.GT(max) {
		return types.ErrInvalidRange.Wrapf("min %s > max %s", min, max)
	}

	store := k.getStore(ctx)
	if store.Has(types.BoundedKey(key)) {
		return types.ErrDuplicateKey.Wrapf("parameter %s already initialized", key)
	}

	bounded := types.Bounded{Key: key, Min: min, Max: max, Current: initial}
	if !bounded.InRange(initial) {
		return types.ErrOutOfBounds.Wrapf("initial %s outside [%s, %s]", initial, min, max)
	}
	if err := k.setBounded(ctx, bounded); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBoundsSet,
			sdk.NewAttribute(types.AttributeKeyParamKey, key),
			sdk.NewAttribute(types.AttributeKeyMin, min.String()),
			sdk.NewAttribute(types.AttributeKeyMax, max.String()),
			sdk.NewAttribute(types.AttributeKeyValue, initial.String()),
		),
	)
	return nil
}

// GetValue returns the current value of an initialized parameter
func (k Keeper) GetValue(ctx context.Context, key string) (math.Int, error) {
	bounded, err := k.GetBounded(ctx, key)
	if err != nil {
		return math.Int{}, err
	}
	return bounded.Current, nil
}

// GetBounded retrieves a bounded parameter record
func (k Keeper) GetBounded(ctx context.Context, key string) (types.Bounded, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.BoundedKey(key))
	if bz == nil {
		return types.Bounded{}, types.ErrUnknownKey.Wrapf("parameter %s not initialized", key)
	}

	var bounded types.Bounded
	if err := json.Unmarshal(bz, &bounded); err != nil {
		return types.Bounded{}, fmt.Errorf("GetBounded %s: unmarshal: %w", key, err)
	}
	return bounded, nil
}

func (k Keeper) setBounded(ctx context.Context, bounded types.Bounded) error {
	bz, err := json.Marshal(bounded)
	if err != nil {
		return fmt.Errorf("setBounded %s: marshal: %w", bounded.Key, err)
	}
	k.getStore(ctx).Set(types.BoundedKey(bounded.Key), bz)
	return nil
}

// Propose opens a timelocked change for an initialized parameter. A pending
// proposal for the same key is overwritten and its clock restarts. The value
// is bound-checked here so the stored value can never leave the range, even
// transiently.
func (k Keeper) Propose(ctx context.Context, authority, key string, value math.Int) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	bounded, err := k.GetBounded(ctx, key)
	if err != nil {
		return err
	}
	if value.IsNil() {
		return types.ErrInvalidValue.Wrap("value must be set")
	}
	if !bounded.InRange(value) {
		return types.ErrOutOfBounds.Wrapf("value %s outside [%s, %s]", value, bounded.Min, bounded.Max)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	delay := time.Duration(k.GetParams(ctx).TimelockDelaySeconds) * time.Second

	proposal := types.Proposal{
		Key:        key,
		Value:      value,
		ProposedAt: now,
		ReadyAt:    now.Add(delay),
	}
	bz, err := json.Marshal(proposal)
	if err != nil {
		return fmt.Errorf("Propose %s: marshal: %w", key, err)
	}
	k.getStore(ctx).Set(types.ProposalKey(key), bz)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeProposed,
			sdk.NewAttribute(types.AttributeKeyParamKey, key),
			sdk.NewAttribute(types.AttributeKeyValue, value.String()),
			sdk.NewAttribute(types.AttributeKeyReadyAt, proposal.ReadyAt.Format(time.RFC3339)),
		),
	)
	return nil
}

// Finalize applies a pending proposal once its timelock elapsed. Anyone may
// call it: the delay is the guard, not the caller identity.
func (k Keeper) Finalize(ctx context.Context, key string) error {
	store := k.getStore(ctx)
	bz := store.Get(types.ProposalKey(key))
	if bz == nil {
		return types.ErrNoProposal.Wrapf("no pending proposal for %s", key)
	}

	var proposal types.Proposal
	if err := json.Unmarshal(bz, &proposal); err != nil {
		return fmt.Errorf("Finalize %s: unmarshal: %w", key, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Before(proposal.ReadyAt) {
		return types.ErrNotReady.Wrapf("proposal for %s ready at %s", key, proposal.ReadyAt.Format(time.RFC3339))
	}

	bounded, err := k.GetBounded(ctx, key)
	if err != nil {
		return err
	}
	old := bounded.Current
	bounded.Current = proposal.Value
	if err := k.setBounded(ctx, bounded); err != nil {
		return err
	}
	store.Delete(types.ProposalKey(key))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeFinalized,
			sdk.NewAttribute(types.AttributeKeyParamKey, key),
			sdk.NewAttribute(types.AttributeKeyOldValue, old.String()),
			sdk.NewAttribute(types.AttributeKeyValue, proposal.Value.String()),
		),
	)
	return nil
}

// GetProposal retrieves a pending proposal, if any
func (k Keeper) GetProposal(ctx context.Context, key string) (types.Proposal, bool) {
	bz := k.getStore(ctx).Get(types.ProposalKey(key))
	if bz == nil {
		return types.Proposal{}, false
	}
	var proposal types.Proposal
	if err := json.Unmarshal(bz, &proposal); err != nil {
		return types.Proposal{}, false
	}
	return proposal, true
}

// IterateBounded walks all bounded parameter records
func (k Keeper) IterateBounded(ctx context.Context, fn func(bounded types.Bounded) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.BoundedKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var bounded types.Bounded
		if err := json.Unmarshal(iterator.Value(), &bounded); err != nil {
			return fmt.Errorf("IterateBounded: unmarshal: %w", err)
		}
		if fn(bounded) {
			break
		}
	}
	return nil
}

// IterateProposals walks all pending proposals
func (k Keeper) IterateProposals(ctx context.Context, fn func(proposal types.Proposal) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.ProposalKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var proposal types.Proposal
		if err := json.Unmarshal(iterator.Value(), &proposal); err != nil {
			return fmt.Errorf("IterateProposals: unmarshal: %w", err)
		}
		if fn(proposal) {
			break
		}
	}
	return nil
}
