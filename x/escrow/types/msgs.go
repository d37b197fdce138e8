package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgFundSession      = "fund_session"
	TypeMsgAssignMiner      = "assign_miner"
	TypeMsgSettle           = "settle"
	TypeMsgReclaimRemainder = "reclaim_remainder"
	TypeMsgUpdateParams     = "update_params"
)

var (
	_ sdk.Msg = &MsgFundSession{}
	_ sdk.Msg = &MsgAssignMiner{}
	_ sdk.Msg = &MsgSettle{}
	_ sdk.Msg = &MsgReclaimRemainder{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgFundSession escrows client tokens under a fresh session identifier.
type MsgFundSession struct {
	Client    string   `json:"client"`
	SessionID string   `json:"session_id"`
	Amount    math.Int `json:"amount"`
}

type MsgFundSessionResponse struct{}

// MsgAssignMiner binds a miner to a funded session. Assigner role only.
type MsgAssignMiner struct {
	Assigner  string `json:"assigner"`
	SessionID string `json:"session_id"`
	Miner     string `json:"miner"`
}

type MsgAssignMinerResponse struct{}

// MsgSettle submits a verified settlement for an assigned session. The proof
// and public inputs travel opaque; the verifier registry interprets them.
type MsgSettle struct {
	Settler      string `json:"settler"`
	SessionID    string `json:"session_id"`
	Proof        []byte `json:"proof"`
	PublicInputs []byte `json:"public_inputs"`
}

type MsgSettleResponse struct {
	MinerNet math.Int `json:"miner_net"`
	Fee      math.Int `json:"fee"`
}

// MsgReclaimRemainder refunds the client the unsettled remainder of a
// settled session.
type MsgReclaimRemainder struct {
	Client    string `json:"client"`
	SessionID string `json:"session_id"`
}

type MsgReclaimRemainderResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgUpdateParams updates the module parameters. Governance-only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the escrow message handling interface
type MsgServer interface {
	FundSession(context.Context, *MsgFundSession) (*MsgFundSessionResponse, error)
	AssignMiner(context.Context, *MsgAssignMiner) (*MsgAssignMinerResponse, error)
	Settle(context.Context, *MsgSettle) (*MsgSettleResponse, error)
	ReclaimRemainder(context.Context, *MsgReclaimRemainder) (*MsgReclaimRemainderResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// ValidateBasic performs stateless validation of MsgFundSession
func (msg *MsgFundSession) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return fmt.Errorf("invalid client address: %w", err)
	}
	if _, err := SessionIDFromHex(msg.SessionID); err != nil {
		return err
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// GetSigners returns the expected signers for MsgFundSession
func (msg *MsgFundSession) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
}

// ValidateBasic performs stateless validation of MsgAssignMiner
func (msg *MsgAssignMiner) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Assigner); err != nil {
		return fmt.Errorf("invalid assigner address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Miner); err != nil {
		return fmt.Errorf("invalid miner address: %w", err)
	}
	if _, err := SessionIDFromHex(msg.SessionID); err != nil {
		return err
	}
	return nil
}

// GetSigners returns the expected signers for MsgAssignMiner
func (msg *MsgAssignMiner) GetSigners() []sdk.AccAddress {
	assigner, _ := sdk.AccAddressFromBech32(msg.Assigner)
	return []sdk.AccAddress{assigner}
}

// ValidateBasic performs stateless validation of MsgSettle
func (msg *MsgSettle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Settler); err != nil {
		return fmt.Errorf("invalid settler address: %w", err)
	}
	if _, err := SessionIDFromHex(msg.SessionID); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return ErrVerificationFailed.Wrap("proof cannot be empty")
	}
	if len(msg.PublicInputs) == 0 {
		return ErrPublicInputMismatch.Wrap("public inputs cannot be empty")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSettle
func (msg *MsgSettle) GetSigners() []sdk.AccAddress {
	settler, _ := sdk.AccAddressFromBech32(msg.Settler)
	return []sdk.AccAddress{settler}
}

// ValidateBasic performs stateless validation of MsgReclaimRemainder
func (msg *MsgReclaimRemainder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return fmt.Errorf("invalid client address: %w", err)
	}
	if _, err := SessionIDFromHex(msg.SessionID); err != nil {
		return err
	}
	return nil
}

// GetSigners returns the expected signers for MsgReclaimRemainder
func (msg *MsgReclaimRemainder) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
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

func (msg *MsgFundSession) Reset()         { *msg = MsgFundSession{} }
func (msg *MsgFundSession) String() string { return fmt.Sprintf("MsgFundSession{%s}", msg.SessionID) }
func (msg *MsgFundSession) ProtoMessage()  {}

func (msg *MsgAssignMiner) Reset()         { *msg = MsgAssignMiner{} }
func (msg *MsgAssignMiner) String() string { return fmt.Sprintf("MsgAssignMiner{%s}", msg.SessionID) }
func (msg *MsgAssignMiner) ProtoMessage()  {}

func (msg *MsgSettle) Reset()         { *msg = MsgSettle{} }
func (msg *MsgSettle) String() string { return fmt.Sprintf("MsgSettle{%s}", msg.SessionID) }
func (msg *MsgSettle) ProtoMessage()  {}

func (msg *MsgReclaimRemainder) Reset()         { *msg = MsgReclaimRemainder{} }
func (msg *MsgReclaimRemainder) String() string { return fmt.Sprintf("MsgReclaimRemainder{%s}", msg.SessionID) }
func (msg *MsgReclaimRemainder) ProtoMessage()  {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return "MsgUpdateParams{escrow}" }
func (msg *MsgUpdateParams) ProtoMessage()  {}
