package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgReleaseFunds = "release_funds"
)

var _ sdk.Msg = &MsgReleaseFunds{}

// MsgReleaseFunds releases treasury funds to a recipient. Governance-only.
type MsgReleaseFunds struct {
	Authority string   `json:"authority"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgReleaseFundsResponse struct{}

// MsgServer is the treasury message handling interface
type MsgServer interface {
	ReleaseFunds(context.Context, *MsgReleaseFunds) (*MsgReleaseFundsResponse, error)
}

// ValidateBasic performs stateless validation of MsgReleaseFunds
func (msg *MsgReleaseFunds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidRecipient.Wrap(err.Error())
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// GetSigners returns the expected signers for MsgReleaseFunds
func (msg *MsgReleaseFunds) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgReleaseFunds) Reset()         { *msg = MsgReleaseFunds{} }
func (msg *MsgReleaseFunds) String() string { return fmt.Sprintf("MsgReleaseFunds{%s}", msg.Recipient) }
func (msg *MsgReleaseFunds) ProtoMessage()  {}
