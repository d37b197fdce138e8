package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bondingkeeper "github.com/drip-network/drip/x/bonding/keeper"
	bondingtypes "github.com/drip-network/drip/x/bonding/types"
	escrowkeeper "github.com/drip-network/drip/x/escrow/keeper"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
	verifiertypes "github.com/drip-network/drip/x/verifier/types"
)

// MaxProofBytes caps the settlement proof blob accepted into the mempool.
// Groth16 proofs on BN254 are well under this; anything larger is garbage.
const MaxProofBytes = 16 * 1024

// SettlementDecorator validates escrow module-specific transaction requirements
// before execution, rejecting obviously invalid settlement traffic cheaply.
type SettlementDecorator struct {
	keeper     escrowkeeper.Keeper
	bankKeeper BankKeeper
}

// NewSettlementDecorator creates a new SettlementDecorator
func NewSettlementDecorator(keeper escrowkeeper.Keeper, bankKeeper BankKeeper) SettlementDecorator {
	return SettlementDecorator{
		keeper:     keeper,
		bankKeeper: bankKeeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (sd SettlementDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *escrowtypes.MsgFundSession:
			if err := sd.validateFundSession(ctx, msg); err != nil {
				return ctx, err
			}
		case *escrowtypes.MsgSettle:
			if err := sd.validateSettle(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateFundSession rejects funding for duplicate sessions and clients that
// cannot cover the deposit
func (sd SettlementDecorator) validateFundSession(ctx sdk.Context, msg *escrowtypes.MsgFundSession) error {
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid client address: %s", err)
	}

	id, err := escrowtypes.SessionIDFromHex(msg.SessionID)
	if err != nil {
		return sdkerrors.ErrInvalidRequest.Wrapf("invalid session id: %s", err)
	}

	ctx.GasMeter().ConsumeGas(1000, "fund session validation")

	if _, exists := sd.keeper.GetSession(ctx, id); exists {
		return sdkerrors.ErrInvalidRequest.Wrapf("session %s already funded", msg.SessionID)
	}

	balance := sd.bankKeeper.GetBalance(ctx, client, sd.keeper.Denom())
	if balance.Amount.LT(msg.Amount) {
		return sdkerrors.ErrInsufficientFunds.Wrapf(
			"client balance %s cannot cover deposit %s%s",
			balance, msg.Amount, sd.keeper.Denom(),
		)
	}

	return nil
}

// validateSettle bounds the proof payload and requires a live assigned session
func (sd SettlementDecorator) validateSettle(ctx sdk.Context, msg *escrowtypes.MsgSettle) error {
	id, err := escrowtypes.SessionIDFromHex(msg.SessionID)
	if err != nil {
		return sdkerrors.ErrInvalidRequest.Wrapf("invalid session id: %s", err)
	}

	ctx.GasMeter().ConsumeGas(2000, "settlement validation")

	if len(msg.Proof) > MaxProofBytes {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"proof too large: %d bytes (max %d)", len(msg.Proof), MaxProofBytes,
		)
	}
	if len(msg.PublicInputs) != verifiertypes.PublicInputsSize {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"public inputs must be %d bytes, got %d", verifiertypes.PublicInputsSize, len(msg.PublicInputs),
		)
	}

	session, exists := sd.keeper.GetSession(ctx, id)
	if !exists {
		return sdkerrors.ErrNotFound.Wrapf("session %s not found", msg.SessionID)
	}
	if session.Settled {
		return sdkerrors.ErrInvalidRequest.Wrapf("session %s already settled", msg.SessionID)
	}
	if session.Miner == "" {
		return sdkerrors.ErrInvalidRequest.Wrapf("session %s has no assigned worker", msg.SessionID)
	}

	return nil
}

// BondingDecorator validates bonding module-specific transaction requirements
type BondingDecorator struct {
	keeper bondingkeeper.Keeper
}

// NewBondingDecorator creates a new BondingDecorator
func NewBondingDecorator(keeper bondingkeeper.Keeper) BondingDecorator {
	return BondingDecorator{keeper: keeper}
}

// AnteHandle implements the AnteDecorator interface
func (bd BondingDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *bondingtypes.MsgReportFraud:
			if err := bd.validateReportFraud(ctx, msg); err != nil {
				return ctx, err
			}
		case *bondingtypes.MsgWithdrawUnbonded:
			if err := bd.validateWithdraw(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateReportFraud rejects reports whose deposit cannot meet the floor
func (bd BondingDecorator) validateReportFraud(ctx sdk.Context, msg *bondingtypes.MsgReportFraud) error {
	ctx.GasMeter().ConsumeGas(1500, "fraud report validation")

	params := bd.keeper.GetParams(ctx)
	if msg.Deposit.LT(params.DisputeDeposit) {
		return sdkerrors.ErrInsufficientFunds.Wrapf(
			"dispute deposit %s below required %s", msg.Deposit, params.DisputeDeposit,
		)
	}

	return nil
}

// validateWithdraw rejects withdrawals with nothing unbonding
func (bd BondingDecorator) validateWithdraw(ctx sdk.Context, msg *bondingtypes.MsgWithdrawUnbonded) error {
	ctx.GasMeter().ConsumeGas(1000, "withdraw validation")

	bond, found := bd.keeper.GetBond(ctx, msg.Worker)
	if !found || bond.UnbondingAmount.IsZero() {
		return sdkerrors.ErrInvalidRequest.Wrapf("worker %s has no unbonding stake", msg.Worker)
	}

	return nil
}
