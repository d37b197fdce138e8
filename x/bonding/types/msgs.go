package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgBondStake       = "bond_stake"
	TypeMsgInitiateUnbond  = "initiate_unbond"
	TypeMsgWithdrawUnbonded = "withdraw_unbonded"
	TypeMsgReportFraud     = "report_fraud"
	TypeMsgRebutFraud      = "rebut_fraud"
	TypeMsgResolveFraud    = "resolve_fraud"
	TypeMsgUpdateParams    = "update_params"
)

var (
	_ sdk.Msg = &MsgBondStake{}
	_ sdk.Msg = &MsgInitiateUnbond{}
	_ sdk.Msg = &MsgWithdrawUnbonded{}
	_ sdk.Msg = &MsgReportFraud{}
	_ sdk.Msg = &MsgRebutFraud{}
	_ sdk.Msg = &MsgResolveFraud{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgBondStake locks worker collateral as slashable stake.
type MsgBondStake struct {
	Worker string   `json:"worker"`
	Amount math.Int `json:"amount"`
}

type MsgBondStakeResponse struct{}

// MsgInitiateUnbond moves staked collateral into the timed unbonding queue.
type MsgInitiateUnbond struct {
	Worker string   `json:"worker"`
	Amount math.Int `json:"amount"`
}

type MsgInitiateUnbondResponse struct{}

// MsgWithdrawUnbonded releases unbonded collateral once the delay elapsed.
type MsgWithdrawUnbonded struct {
	Worker string `json:"worker"`
}

type MsgWithdrawUnbondedResponse struct{}

// MsgReportFraud opens a fraud dispute against a session's assigned worker.
type MsgReportFraud struct {
	Reporter     string   `json:"reporter"`
	SessionID    string   `json:"session_id"`
	EvidenceHash []byte   `json:"evidence_hash"`
	Deposit      math.Int `json:"deposit"`
}

type MsgReportFraudResponse struct {
	DisputeID uint64 `json:"dispute_id"`
}

// MsgRebutFraud contests an open dispute within its window.
type MsgRebutFraud struct {
	Worker    string `json:"worker"`
	DisputeID uint64 `json:"dispute_id"`
}

type MsgRebutFraudResponse struct{}

// MsgResolveFraud resolves a dispute after its window closed. Uncontested
// disputes may be resolved by anyone; contested ones only by governance,
// with Uphold deciding the direction.
type MsgResolveFraud struct {
	Sender    string `json:"sender"`
	DisputeID uint64 `json:"dispute_id"`
	Uphold    bool   `json:"uphold"`
}

type MsgResolveFraudResponse struct{}

// MsgUpdateParams updates the module parameters. Governance-only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the bonding message handling interface
type MsgServer interface {
	BondStake(context.Context, *MsgBondStake) (*MsgBondStakeResponse, error)
	InitiateUnbond(context.Context, *MsgInitiateUnbond) (*MsgInitiateUnbondResponse, error)
	WithdrawUnbonded(context.Context, *MsgWithdrawUnbonded) (*MsgWithdrawUnbondedResponse, error)
	ReportFraud(context.Context, *MsgReportFraud) (*MsgReportFraudResponse, error)
	RebutFraud(context.Context, *MsgRebutFraud) (*MsgRebutFraudResponse, error)
	ResolveFraud(context.Context, *MsgResolveFraud) (*MsgResolveFraudResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// ValidateBasic performs stateless validation of MsgBondStake
func (msg *MsgBondStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Worker); err != nil {
		return fmt.Errorf("invalid worker address: %w", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// GetSigners returns the expected signers for MsgBondStake
func (msg *MsgBondStake) GetSigners() []sdk.AccAddress {
	worker, _ := sdk.AccAddressFromBech32(msg.Worker)
	return []sdk.AccAddress{worker}
}

// ValidateBasic performs stateless validation of MsgInitiateUnbond
func (msg *MsgInitiateUnbond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Worker); err != nil {
		return fmt.Errorf("invalid worker address: %w", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// GetSigners returns the expected signers for MsgInitiateUnbond
func (msg *MsgInitiateUnbond) GetSigners() []sdk.AccAddress {
	worker, _ := sdk.AccAddressFromBech32(msg.Worker)
	return []sdk.AccAddress{worker}
}

// ValidateBasic performs stateless validation of MsgWithdrawUnbonded
func (msg *MsgWithdrawUnbonded) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Worker); err != nil {
		return fmt.Errorf("invalid worker address: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdrawUnbonded
func (msg *MsgWithdrawUnbonded) GetSigners() []sdk.AccAddress {
	worker, _ := sdk.AccAddressFromBech32(msg.Worker)
	return []sdk.AccAddress{worker}
}

// ValidateBasic performs stateless validation of MsgReportFraud
func (msg *MsgReportFraud) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Reporter); err != nil {
		return fmt.Errorf("invalid reporter address: %w", err)
	}
	if msg.SessionID == "" {
		return ErrUnknownSession.Wrap("session id cannot be empty")
	}
	if len(msg.EvidenceHash) == 0 {
		return ErrEmptyEvidence
	}
	if msg.Deposit.IsNil() || !msg.Deposit.IsPositive() {
		return ErrInsufficientDeposit.Wrap("deposit must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgReportFraud
func (msg *MsgReportFraud) GetSigners() []sdk.AccAddress {
	reporter, _ := sdk.AccAddressFromBech32(msg.Reporter)
	return []sdk.AccAddress{reporter}
}

// ValidateBasic performs stateless validation of MsgRebutFraud
func (msg *MsgRebutFraud) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Worker); err != nil {
		return fmt.Errorf("invalid worker address: %w", err)
	}
	if msg.DisputeID == 0 {
		return ErrUnknownDispute.Wrap("dispute id cannot be zero")
	}
	return nil
}

// GetSigners returns the expected signers for MsgRebutFraud
func (msg *MsgRebutFraud) GetSigners() []sdk.AccAddress {
	worker, _ := sdk.AccAddressFromBech32(msg.Worker)
	return []sdk.AccAddress{worker}
}

// ValidateBasic performs stateless validation of MsgResolveFraud
func (msg *MsgResolveFraud) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if msg.DisputeID == 0 {
		return ErrUnknownDispute.Wrap("dispute id cannot be zero")
	}
	return nil
}

// GetSigners returns the expected signers for MsgResolveFraud
func (msg *MsgResolveFraud) GetSigners() []sdk.AccAddress {
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

func (msg *MsgBondStake) Reset()         { *msg = MsgBondStake{} }
func (msg *MsgBondStake) String() string { return fmt.Sprintf("MsgBondStake{%s}", msg.Worker) }
func (msg *MsgBondStake) ProtoMessage()  {}

func (msg *MsgInitiateUnbond) Reset()         { *msg = MsgInitiateUnbond{} }
func (msg *MsgInitiateUnbond) String() string { return fmt.Sprintf("MsgInitiateUnbond{%s}", msg.Worker) }
func (msg *MsgInitiateUnbond) ProtoMessage()  {}

func (msg *MsgWithdrawUnbonded) Reset()         { *msg = MsgWithdrawUnbonded{} }
func (msg *MsgWithdrawUnbonded) String() string { return fmt.Sprintf("MsgWithdrawUnbonded{%s}", msg.Worker) }
func (msg *MsgWithdrawUnbonded) ProtoMessage()  {}

func (msg *MsgReportFraud) Reset()         { *msg = MsgReportFraud{} }
func (msg *MsgReportFraud) String() string { return fmt.Sprintf("MsgReportFraud{%s}", msg.SessionID) }
func (msg *MsgReportFraud) ProtoMessage()  {}

func (msg *MsgRebutFraud) Reset()         { *msg = MsgRebutFraud{} }
func (msg *MsgRebutFraud) String() string { return fmt.Sprintf("MsgRebutFraud{%d}", msg.DisputeID) }
func (msg *MsgRebutFraud) ProtoMessage()  {}

func (msg *MsgResolveFraud) Reset()         { *msg = MsgResolveFraud{} }
func (msg *MsgResolveFraud) String() string { return fmt.Sprintf("MsgResolveFraud{%d}", msg.DisputeID) }
func (msg *MsgResolveFraud) ProtoMessage()  {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return "MsgUpdateParams{bonding}" }
func (msg *MsgUpdateParams) ProtoMessage()  {}
