package keeper

import (
	"context"

	"github.com/drip-network/drip/x/registry/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the registry MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// SetDaoInfo handles setting the DAO descriptor
func (ms msgServer) SetDaoInfo(goCtx context.Context, msg *types.MsgSetDaoInfo) (*types.MsgSetDaoInfoResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetDaoInfo(goCtx, msg.Authority, msg.DaoInfo); err != nil {
		return nil, err
	}
	return &types.MsgSetDaoInfoResponse{}, nil
}

// SetComponent handles binding a component name to an address
func (ms msgServer) SetComponent(goCtx context.Context, msg *types.MsgSetComponent) (*types.MsgSetComponentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetComponent(goCtx, msg.Authority, msg.Name, msg.Address); err != nil {
		return nil, err
	}
	return &types.MsgSetComponentResponse{}, nil
}
