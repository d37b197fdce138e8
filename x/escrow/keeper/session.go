package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	daoparamstypes "github.com/drip-network/drip/x/daoparams/types"
	"github.com/drip-network/drip/x/escrow/types"
)

// GetSession retrieves a session record
func (k Keeper) GetSession(ctx context.Context, id types.SessionID) (types.Session, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.SessionKey(id))
	if bz == nil {
		return types.Session{}, false
	}

	var session types.Session
	if err := json.Unmarshal(bz, &session); err != nil {
		return types.Session{}, false
	}
	return session, true
}

// SetSession stores a session record
func (k Keeper) SetSession(ctx context.Context, session types.Session) error {
	bz, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("SetSession: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.SessionKey(session.ID), bz)
	return nil
}

// IterateSessions walks all session records, stopping when cb returns true
func (k Keeper) IterateSessions(ctx context.Context, cb func(session types.Session) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.SessionKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var session types.Session
		if err := json.Unmarshal(iterator.Value(), &session); err != nil {
			continue
		}
		if cb(session) {
			break
		}
	}
}

// AssignedMiner returns the miner bound to the session identified by its hex
// id. Satisfies the bonding module's session source.
func (k Keeper) AssignedMiner(ctx context.Context, sessionID string) (string, error) {
	id, err := types.SessionIDFromHex(sessionID)
	if err != nil {
		return "", err
	}
	session, found := k.GetSession(ctx, id)
	if !found {
		return "", types.ErrUnknownSession.Wrapf("session %s", id)
	}
	if session.Miner == "" {
		return "", types.ErrNotAssigned.Wrapf("session %s", id)
	}
	return session.Miner, nil
}

// FundSession escrows amount from the client under a fresh session id. The
// id is client-chosen; reusing one fails rather than topping up, so every
// funded session has exactly one funding event.
func (k Keeper) FundSession(ctx context.Context, client string, id types.SessionID, amount math.Int) error {
	if id.IsZero() {
		return types.ErrUnknownSession.Wrap("session id cannot be zero")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	clientAddr, err := sdk.AccAddressFromBech32(client)
	if err != nil {
		return fmt.Errorf("invalid client address: %w", err)
	}

	if _, found := k.GetSession(ctx, id); found {
		return types.ErrDuplicateSession.Wrapf("session %s", id)
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, clientAddr, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrap(err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	session := types.Session{
		ID:        id,
		Client:    client,
		Amount:    amount,
		Settled:   false,
		CreatedAt: sdkCtx.BlockTime(),
	}
	if err := k.SetSession(ctx, session); err != nil {
		return err
	}

	k.metrics.SessionsFunded.Inc()
	k.metrics.EscrowedTotal.Add(float64(amount.Int64()))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFunded,
			sdk.NewAttribute(types.AttributeKeySessionID, id.String()),
			sdk.NewAttribute(types.AttributeKeyClient, client),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// AssignMiner binds a miner to a funded session. Only the assigner role may
// call it, the session must be unassigned, and the miner's staked bond must
// cover the governed minimum.
func (k Keeper) AssignMiner(ctx context.Context, assigner string, id types.SessionID, miner string) error {
	if assigner != k.assignerAddress(ctx) && assigner != k.authority {
		return types.ErrUnauthorized.Wrapf("assigner role required, got %s", assigner)
	}
	if _, err := sdk.AccAddressFromBech32(miner); err != nil {
		return fmt.Errorf("invalid miner address: %w", err)
	}

	session, found := k.GetSession(ctx, id)
	if !found {
		return types.ErrUnknownSession.Wrapf("session %s", id)
	}
	if session.Miner != "" {
		return types.ErrAlreadyAssigned.Wrapf("session %s assigned to %s", id, session.Miner)
	}

	minBond, err := k.paramsSource.GetValue(ctx, daoparamstypes.KeyMinMinerBond)
	if err != nil {
		return err
	}
	if !k.bondingKeeper.HasSufficientBond(ctx, miner, minBond) {
		return types.ErrInsufficientBond.Wrapf("miner %s needs staked bond >= %s", miner, minBond)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	session.Miner = miner
	session.AssignedAt = sdkCtx.BlockTime()
	if err := k.SetSession(ctx, session); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMinerAssigned,
			sdk.NewAttribute(types.AttributeKeySessionID, id.String()),
			sdk.NewAttribute(types.AttributeKeyMiner, miner),
		),
	)
	return nil
}
