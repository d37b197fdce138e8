package keeper

import (
	"context"

	"github.com/drip-network/drip/x/verifier/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the verifier MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// SetActiveScheme handles switching the active verification scheme
func (ms msgServer) SetActiveScheme(goCtx context.Context, msg *types.MsgSetActiveScheme) (*types.MsgSetActiveSchemeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetActiveScheme(goCtx, msg.Authority, msg.Scheme); err != nil {
		return nil, err
	}
	return &types.MsgSetActiveSchemeResponse{}, nil
}

// TrustScheme handles adding a scheme to the trusted set
func (ms msgServer) TrustScheme(goCtx context.Context, msg *types.MsgTrustScheme) (*types.MsgTrustSchemeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.TrustScheme(goCtx, msg.Authority, msg.Scheme); err != nil {
		return nil, err
	}
	return &types.MsgTrustSchemeResponse{}, nil
}

// RevokeScheme handles removing a scheme from the trusted set
func (ms msgServer) RevokeScheme(goCtx context.Context, msg *types.MsgRevokeScheme) (*types.MsgRevokeSchemeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.RevokeScheme(goCtx, msg.Authority, msg.Scheme); err != nil {
		return nil, err
	}
	return &types.MsgRevokeSchemeResponse{}, nil
}
