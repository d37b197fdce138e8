package keeper

import (
	"context"

	"github.com/drip-network/drip/x/bonding/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the bonding MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// BondStake handles collateral deposits
func (ms msgServer) BondStake(goCtx context.Context, msg *types.MsgBondStake) (*types.MsgBondStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.BondStake(goCtx, msg.Worker, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgBondStakeResponse{}, nil
}

// InitiateUnbond handles moving stake into the unbonding queue
func (ms msgServer) InitiateUnbond(goCtx context.Context, msg *types.MsgInitiateUnbond) (*types.MsgInitiateUnbondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.InitiateUnbond(goCtx, msg.Worker, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgInitiateUnbondResponse{}, nil
}

// WithdrawUnbonded handles releasing matured unbonding collateral
func (ms msgServer) WithdrawUnbonded(goCtx context.Context, msg *types.MsgWithdrawUnbonded) (*types.MsgWithdrawUnbondedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if _, err := ms.Keeper.WithdrawUnbonded(goCtx, msg.Worker); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawUnbondedResponse{}, nil
}

// ReportFraud handles opening a fraud dispute
func (ms msgServer) ReportFraud(goCtx context.Context, msg *types.MsgReportFraud) (*types.MsgReportFraudResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	id, err := ms.Keeper.ReportFraud(goCtx, msg.Reporter, msg.SessionID, msg.EvidenceHash, msg.Deposit)
	if err != nil {
		return nil, err
	}
	return &types.MsgReportFraudResponse{DisputeID: id}, nil
}

// RebutFraud handles contesting an open dispute
func (ms msgServer) RebutFraud(goCtx context.Context, msg *types.MsgRebutFraud) (*types.MsgRebutFraudResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.RebutFraud(goCtx, msg.Worker, msg.DisputeID); err != nil {
		return nil, err
	}
	return &types.MsgRebutFraudResponse{}, nil
}

// ResolveFraud handles closing a dispute after its window
func (ms msgServer) ResolveFraud(goCtx context.Context, msg *types.MsgResolveFraud) (*types.MsgResolveFraudResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.ResolveFraud(goCtx, msg.Sender, msg.DisputeID, msg.Uphold); err != nil {
		return nil, err
	}
	return &types.MsgResolveFraudResponse{}, nil
}

// UpdateParams handles module parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}
	if err := ms.Keeper.SetParams(goCtx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
