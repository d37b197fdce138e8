package keeper

import (
	"context"

	"github.com/drip-network/drip/x/daoparams/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the daoparams MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// SetBounds handles parameter registration
func (ms msgServer) SetBounds(goCtx context.Context, msg *types.MsgSetBounds) (*types.MsgSetBoundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetBounds(goCtx, msg.Authority, msg.Key, msg.Min, msg.Max, msg.Initial); err != nil {
		return nil, err
	}
	return &types.MsgSetBoundsResponse{}, nil
}

// ProposeChange handles opening a timelocked parameter change
func (ms msgServer) ProposeChange(goCtx context.Context, msg *types.MsgProposeChange) (*types.MsgProposeChangeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.Propose(goCtx, msg.Authority, msg.Key, msg.Value); err != nil {
		return nil, err
	}
	return &types.MsgProposeChangeResponse{}, nil
}

// FinalizeChange handles applying an elapsed parameter change
func (ms msgServer) FinalizeChange(goCtx context.Context, msg *types.MsgFinalizeChange) (*types.MsgFinalizeChangeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.Finalize(goCtx, msg.Key); err != nil {
		return nil, err
	}
	return &types.MsgFinalizeChangeResponse{}, nil
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
