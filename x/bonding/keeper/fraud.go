package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/bonding/types"
)

// GetDispute retrieves a dispute by id
func (k Keeper) GetDispute(ctx context.Context, id uint64) (types.Dispute, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.DisputeKey(id))
	if bz == nil {
		return types.Dispute{}, false
	}

	var dispute types.Dispute
	if err := json.Unmarshal(bz, &dispute); err != nil {
		return types.Dispute{}, false
	}
	return dispute, true
}

// SetDispute stores a dispute record and its session index entry
func (k Keeper) SetDispute(ctx context.Context, dispute types.Dispute) error {
	bz, err := json.Marshal(dispute)
	if err != nil {
		return fmt.Errorf("SetDispute: marshal: %w", err)
	}
	store := k.getStore(ctx)
	store.Set(types.DisputeKey(dispute.ID), bz)
	store.Set(types.DisputeBySessionKey(dispute.SessionID, dispute.ID), []byte{1})
	return nil
}

// IterateDisputes walks all dispute records, stopping when cb returns true
func (k Keeper) IterateDisputes(ctx context.Context, cb func(dispute types.Dispute) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.DisputeKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var dispute types.Dispute
		if err := json.Unmarshal(iterator.Value(), &dispute); err != nil {
			continue
		}
		if cb(dispute) {
			break
		}
	}
}

// GetNextDisputeID returns the dispute id counter
func (k Keeper) GetNextDisputeID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.KeyPrefix(types.NextDisputeIDKey))
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextDisputeID stores the dispute id counter
func (k Keeper) SetNextDisputeID(ctx context.Context, id uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	k.getStore(ctx).Set(types.KeyPrefix(types.NextDisputeIDKey), bz)
}

// ReportFraud opens a dispute against the worker assigned to sessionID. The
// reporter's deposit locks in the module account for the life of the dispute.
func (k Keeper) ReportFraud(ctx context.Context, reporter, sessionID string, evidenceHash []byte, deposit math.Int) (uint64, error) {
	if k.sessionSource == nil {
		return 0, types.ErrUnknownSession.Wrap("session source not wired")
	}
	reporterAddr, err := sdk.AccAddressFromBech32(reporter)
	if err != nil {
		return 0, fmt.Errorf("invalid reporter address: %w", err)
	}
	if len(evidenceHash) == 0 {
		return 0, types.ErrEmptyEvidence
	}

	params := k.GetParams(ctx)
	if deposit.LT(params.DisputeDeposit) {
		return 0, types.ErrInsufficientDeposit.Wrapf("minimum %s, got %s", params.DisputeDeposit, deposit)
	}

	worker, err := k.sessionSource.AssignedMiner(ctx, sessionID)
	if err != nil {
		return 0, types.ErrUnknownSession.Wrap(err.Error())
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, deposit))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, reporterAddr, types.ModuleName, coins); err != nil {
		return 0, types.ErrTransferFailed.Wrap(err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	id := k.GetNextDisputeID(ctx)
	dispute := types.Dispute{
		ID:           id,
		SessionID:    sessionID,
		Reporter:     reporter,
		Worker:       worker,
		EvidenceHash: evidenceHash,
		Deposit:      deposit,
		CreatedAt:    sdkCtx.BlockTime(),
		WindowEndsAt: sdkCtx.BlockTime().Add(time.Duration(params.DisputeWindowSeconds) * time.Second),
		Status:       types.DisputeStatusOpen,
	}
	if err := k.SetDispute(ctx, dispute); err != nil {
		return 0, err
	}
	k.SetNextDisputeID(ctx, id+1)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFraudReported,
			sdk.NewAttribute(types.AttributeKeyDisputeID, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeySessionID, sessionID),
			sdk.NewAttribute(types.AttributeKeyReporter, reporter),
			sdk.NewAttribute(types.AttributeKeyWorker, worker),
			sdk.NewAttribute(types.AttributeKeyWindowEndsAt, dispute.WindowEndsAt.UTC().Format(time.RFC3339)),
		),
	)
	return id, nil
}

// RebutFraud marks an open dispute contested. Only the disputed worker may
// rebut, and only while the window is open.
func (k Keeper) RebutFraud(ctx context.Context, worker string, disputeID uint64) error {
	dispute, found := k.GetDispute(ctx, disputeID)
	if !found {
		return types.ErrUnknownDispute.Wrapf("id %d", disputeID)
	}
	if !dispute.Open() {
		return types.ErrDisputeResolved.Wrapf("id %d", disputeID)
	}
	if dispute.Worker != worker {
		return types.ErrNotDisputedWorker.Wrapf("dispute %d names %s", disputeID, dispute.Worker)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if !sdkCtx.BlockTime().Before(dispute.WindowEndsAt) {
		return types.ErrDisputeWindowClosed.Wrapf("window ended at %s", dispute.WindowEndsAt.UTC().Format(time.RFC3339))
	}

	dispute.Status = types.DisputeStatusContested
	if err := k.SetDispute(ctx, dispute); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFraudRebutted,
			sdk.NewAttribute(types.AttributeKeyDisputeID, fmt.Sprintf("%d", disputeID)),
			sdk.NewAttribute(types.AttributeKeyWorker, worker),
		),
	)
	return nil
}

// ResolveFraud closes a dispute after its window has elapsed. An uncontested
// dispute resolves to a slash and anyone may trigger it. A contested dispute
// needs the governance authority, with uphold deciding the direction. A slash
// refunds the reporter's deposit; a dismissal forfeits it to the worker.
func (k Keeper) ResolveFraud(ctx context.Context, sender string, disputeID uint64, uphold bool) error {
	dispute, found := k.GetDispute(ctx, disputeID)
	if !found {
		return types.ErrUnknownDispute.Wrapf("id %d", disputeID)
	}
	if !dispute.Open() {
		return types.ErrDisputeResolved.Wrapf("id %d", disputeID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Before(dispute.WindowEndsAt) {
		return types.ErrDisputeWindowOpen.Wrapf("window ends at %s", dispute.WindowEndsAt.UTC().Format(time.RFC3339))
	}

	slash := !uphold
	switch dispute.Status {
	case types.DisputeStatusOpen:
		// Silence inside the window concedes the claim.
		slash = true
	case types.DisputeStatusContested:
		if sender != k.authority {
			return types.ErrUnauthorized.Wrapf("contested dispute %d requires governance", disputeID)
		}
		slash = uphold
	}

	if slash {
		dispute.Status = types.DisputeStatusResolvedSlashed
	} else {
		dispute.Status = types.DisputeStatusResolvedDismissed
	}
	if err := k.SetDispute(ctx, dispute); err != nil {
		return err
	}

	if slash {
		params := k.GetParams(ctx)
		bond, _ := k.GetBond(ctx, dispute.Worker)
		penalty := bond.Staked.MulRaw(int64(params.FraudSlashBps)).QuoRaw(10000)
		if penalty.IsPositive() {
			if _, err := k.Slash(ctx, dispute.Worker, penalty, fmt.Sprintf("fraud dispute %d", disputeID)); err != nil {
				return err
			}
		}
		reporterAddr, err := sdk.AccAddressFromBech32(dispute.Reporter)
		if err != nil {
			return fmt.Errorf("invalid reporter address: %w", err)
		}
		refund := sdk.NewCoins(sdk.NewCoin(k.denom, dispute.Deposit))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, reporterAddr, refund); err != nil {
			return types.ErrTransferFailed.Wrap(err.Error())
		}
	} else {
		workerAddr, err := sdk.AccAddressFromBech32(dispute.Worker)
		if err != nil {
			return fmt.Errorf("invalid worker address: %w", err)
		}
		forfeit := sdk.NewCoins(sdk.NewCoin(k.denom, dispute.Deposit))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, workerAddr, forfeit); err != nil {
			return types.ErrTransferFailed.Wrap(err.Error())
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFraudResolved,
			sdk.NewAttribute(types.AttributeKeyDisputeID, fmt.Sprintf("%d", disputeID)),
			sdk.NewAttribute(types.AttributeKeyResolution, dispute.Status),
		),
	)
	return nil
}
