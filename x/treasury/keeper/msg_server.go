package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/treasury/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the treasury MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// ReleaseFunds handles governance-authorized treasury releases
func (ms msgServer) ReleaseFunds(goCtx context.Context, msg *types.MsgReleaseFunds) (*types.MsgReleaseFundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrap(err.Error())
	}
	if err := ms.Keeper.Release(goCtx, msg.Authority, recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgReleaseFundsResponse{}, nil
}
