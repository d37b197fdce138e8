package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgSetBounds      = "set_bounds"
	TypeMsgProposeChange  = "propose_change"
	TypeMsgFinalizeChange = "finalize_change"
	TypeMsgUpdateParams   = "update_params"
)

var (
	_ sdk.Msg = &MsgSetBounds{}
	_ sdk.Msg = &MsgProposeChange{}
	_ sdk.Msg = &MsgFinalizeChange{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetBounds registers a governance parameter with its bound range and
// initial value. Governance-only.
type MsgSetBounds struct {
	Authority string   `json:"authority"`
	Key       string   `json:"key"`
	Min       math.Int `json:"min"`
	Max       math.Int `json:"max"`
	Initial   math.Int `json:"initial"`
}

type MsgSetBoundsResponse struct{}

// MsgProposeChange opens a timelocked change for an initialized parameter.
type MsgProposeChange struct {
	Authority string   `json:"authority"`
	Key       string   `json:"key"`
	Value     math.Int `json:"value"`
}

type MsgProposeChangeResponse struct{}

// MsgFinalizeChange applies a pending proposal once its timelock elapsed.
// Callable by anyone: the delay, not the caller, is the guard.
type MsgFinalizeChange struct {
	Sender string `json:"sender"`
	Key    string `json:"key"`
}

type MsgFinalizeChangeResponse struct{}

// MsgUpdateParams updates the module's own parameters. Governance-only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the daoparams message handling interface
type MsgServer interface {
	SetBounds(context.Context, *MsgSetBounds) (*MsgSetBoundsResponse, error)
	ProposeChange(context.Context, *MsgProposeChange) (*MsgProposeChangeResponse, error)
	FinalizeChange(context.Context, *MsgFinalizeChange) (*MsgFinalizeChangeResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// ValidateBasic performs stateless validation of MsgSetBounds
func (msg *MsgSetBounds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if msg.Key == "" {
		return ErrUnknownKey.Wrap("key cannot be empty")
	}
	if msg.Min.IsNil() || msg.Max.IsNil() || msg.Initial.IsNil() {
		return ErrInvalidValue.Wrap("min, max and initial must be set")
	}
	if msg.Min.GT(msg.Max) {
		return ErrInvalidRange.Wrapf("min %s > max %s", msg.Min, msg.Max)
	}
	return nil
}

// GetSigners returns the expected signers for MsgSetBounds
func (msg *MsgSetBounds) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgProposeChange
func (msg *MsgProposeChange) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if msg.Key == "" {
		return ErrUnknownKey.Wrap("key cannot be empty")
	}
	if msg.Value.IsNil() {
		return ErrInvalidValue.Wrap("value must be set")
	}
	return nil
}

// GetSigners returns the expected signers for MsgProposeChange
func (msg *MsgProposeChange) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgFinalizeChange
func (msg *MsgFinalizeChange) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if msg.Key == "" {
		return ErrUnknownKey.Wrap("key cannot be empty")
	}
	return nil
}

// GetSigners returns the expected signers for MsgFinalizeChange
func (msg *MsgFinalizeChange) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return msg.Params.Validate()
}

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// proto.Message implementations (messages are amino/JSON encoded)

func (msg *MsgSetBounds) Reset()         { *msg = MsgSetBounds{} }
func (msg *MsgSetBounds) String() string { return fmt.Sprintf("MsgSetBounds{%s}", msg.Key) }
func (msg *MsgSetBounds) ProtoMessage()  {}

func (msg *MsgProposeChange) Reset()         { *msg = MsgProposeChange{} }
func (msg *MsgProposeChange) String() string { return fmt.Sprintf("MsgProposeChange{%s}", msg.Key) }
func (msg *MsgProposeChange) ProtoMessage()  {}

func (msg *MsgFinalizeChange) Reset()         { *msg = MsgFinalizeChange{} }
func (msg *MsgFinalizeChange) String() string { return fmt.Sprintf("MsgFinalizeChange{%s}", msg.Key) }
func (msg *MsgFinalizeChange) ProtoMessage()  {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return "MsgUpdateParams{daoparams}" }
func (msg *MsgUpdateParams) ProtoMessage()  {}
