package keeper

import (
	"context"

	"github.com/drip-network/drip/x/escrow/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the escrow MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// FundSession handles escrowing client funds under a new session
func (ms msgServer) FundSession(goCtx context.Context, msg *types.MsgFundSession) (*types.MsgFundSessionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	id, err := types.SessionIDFromHex(msg.SessionID)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.FundSession(goCtx, msg.Client, id, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgFundSessionResponse{}, nil
}

// AssignMiner handles binding a miner to a funded session
func (ms msgServer) AssignMiner(goCtx context.Context, msg *types.MsgAssignMiner) (*types.MsgAssignMinerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	id, err := types.SessionIDFromHex(msg.SessionID)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.AssignMiner(goCtx, msg.Assigner, id, msg.Miner); err != nil {
		return nil, err
	}
	return &types.MsgAssignMinerResponse{}, nil
}

// Settle handles a verified settlement submission
func (ms msgServer) Settle(goCtx context.Context, msg *types.MsgSettle) (*types.MsgSettleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	id, err := types.SessionIDFromHex(msg.SessionID)
	if err != nil {
		return nil, err
	}
	minerNet, fee, err := ms.Keeper.Settle(goCtx, msg.Settler, id, msg.Proof, msg.PublicInputs)
	if err != nil {
		return nil, err
	}
	return &types.MsgSettleResponse{MinerNet: minerNet, Fee: fee}, nil
}

// ReclaimRemainder handles refunding a settled session's unspent escrow
func (ms msgServer) ReclaimRemainder(goCtx context.Context, msg *types.MsgReclaimRemainder) (*types.MsgReclaimRemainderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	id, err := types.SessionIDFromHex(msg.SessionID)
	if err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.ReclaimRemainder(goCtx, msg.Client, id)
	if err != nil {
		return nil, err
	}
	return &types.MsgReclaimRemainderResponse{Amount: amount}, nil
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
