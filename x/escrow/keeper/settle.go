package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	daoparamstypes "github.com/drip-network/drip/x/daoparams/types"
	"github.com/drip-network/drip/x/escrow/types"
	verifiertypes "github.com/drip-network/drip/x/verifier/types"
)

// Settle pays the assigned miner for proven work. The public inputs must bind
// the proof to this session; the claimed work value is deducted from escrow,
// the protocol fee carved out and routed, and the session marked settled.
// All session state commits before any outbound transfer, and a settled
// session never settles again.
func (k Keeper) Settle(ctx context.Context, settler string, id types.SessionID, proof, publicInputs []byte) (minerNet, fee math.Int, err error) {
	if configured := k.settlerAddress(ctx); configured != "" && settler != configured && settler != k.authority {
		return math.Int{}, math.Int{}, types.ErrUnauthorized.Wrapf("settler role required, got %s", settler)
	}

	session, found := k.GetSession(ctx, id)
	if !found {
		return math.Int{}, math.Int{}, types.ErrUnknownSession.Wrapf("session %s", id)
	}
	if session.Settled {
		return math.Int{}, math.Int{}, types.ErrAlreadySettled.Wrapf("session %s", id)
	}
	if session.Miner == "" {
		return math.Int{}, math.Int{}, types.ErrNotAssigned.Wrapf("session %s", id)
	}

	inputs, err := verifiertypes.DecodePublicInputs(publicInputs)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrPublicInputMismatch.Wrap(err.Error())
	}
	if inputs.SessionID != [32]byte(session.ID) {
		return math.Int{}, math.Int{}, types.ErrPublicInputMismatch.Wrapf(
			"proof bound to %x, session is %s", inputs.SessionID, id)
	}
	workValue := inputs.WorkValue
	if workValue.GT(session.Amount) {
		return math.Int{}, math.Int{}, types.ErrInsufficientEscrow.Wrapf(
			"work value %s exceeds escrowed %s", workValue, session.Amount)
	}

	if err := k.verifier.Verify(ctx, proof, publicInputs); err != nil {
		k.metrics.VerificationsFailed.Inc()
		return math.Int{}, math.Int{}, types.ErrVerificationFailed.Wrap(err.Error())
	}

	feeBps, err := k.paramsSource.GetValue(ctx, daoparamstypes.KeyProtocolFeeBps)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	fee = workValue.Mul(feeBps).Quo(math.NewInt(types.BpsDenominator))
	minerNet = workValue.Sub(fee)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	session.Amount = session.Amount.Sub(workValue)
	session.Settled = true
	session.SettledAt = sdkCtx.BlockTime()
	if err := k.SetSession(ctx, session); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if minerNet.IsPositive() {
		minerAddr, err := sdk.AccAddressFromBech32(session.Miner)
		if err != nil {
			return math.Int{}, math.Int{}, fmt.Errorf("invalid miner address: %w", err)
		}
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, minerNet))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, minerAddr, coins); err != nil {
			return math.Int{}, math.Int{}, types.ErrTransferFailed.Wrap(err.Error())
		}
	}
	if fee.IsPositive() {
		if _, _, err := k.feeRouter.RouteFee(ctx, types.ModuleName, fee); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	k.metrics.SessionsSettled.Inc()
	k.metrics.FeesCollected.Add(float64(fee.Int64()))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSettled,
			sdk.NewAttribute(types.AttributeKeySessionID, id.String()),
			sdk.NewAttribute(types.AttributeKeyMiner, session.Miner),
			sdk.NewAttribute(types.AttributeKeyWorkValue, workValue.String()),
			sdk.NewAttribute(types.AttributeKeyMinerNet, minerNet.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyRemaining, session.Amount.String()),
		),
	)
	return minerNet, fee, nil
}

// ReclaimRemainder refunds the client whatever escrow the settlement left
// unspent. Only available after settlement; the remainder zeroes out so the
// refund is single-fire too.
func (k Keeper) ReclaimRemainder(ctx context.Context, client string, id types.SessionID) (math.Int, error) {
	session, found := k.GetSession(ctx, id)
	if !found {
		return math.Int{}, types.ErrUnknownSession.Wrapf("session %s", id)
	}
	if !session.Settled {
		return math.Int{}, types.ErrNotSettled.Wrapf("session %s", id)
	}
	if session.Client != client {
		return math.Int{}, types.ErrUnauthorized.Wrapf("session %s belongs to %s", id, session.Client)
	}
	if !session.Amount.IsPositive() {
		return math.Int{}, types.ErrNothingToReclaim.Wrapf("session %s", id)
	}

	clientAddr, err := sdk.AccAddressFromBech32(client)
	if err != nil {
		return math.Int{}, fmt.Errorf("invalid client address: %w", err)
	}

	amount := session.Amount
	session.Amount = math.ZeroInt()
	if err := k.SetSession(ctx, session); err != nil {
		return math.Int{}, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, clientAddr, coins); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrap(err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemainderReclaimed,
			sdk.NewAttribute(types.AttributeKeySessionID, id.String()),
			sdk.NewAttribute(types.AttributeKeyClient, client),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return amount, nil
}
