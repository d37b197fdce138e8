package types

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgSetActiveScheme = "set_active_scheme"
	TypeMsgTrustScheme     = "trust_scheme"
	TypeMsgRevokeScheme    = "revoke_scheme"
)

var (
	_ sdk.Msg = &MsgSetActiveScheme{}
	_ sdk.Msg = &MsgTrustScheme{}
	_ sdk.Msg = &MsgRevokeScheme{}
)

// MsgSetActiveScheme switches the verification capability used at settle
// time. The scheme must already be trusted. Governance-only.
type MsgSetActiveScheme struct {
	Authority string `json:"authority"`
	Scheme    string `json:"scheme"`
}

type MsgSetActiveSchemeResponse struct{}

// MsgTrustScheme adds a scheme to the trusted set. Governance-only.
type MsgTrustScheme struct {
	Authority string `json:"authority"`
	Scheme    string `json:"scheme"`
}

type MsgTrustSchemeResponse struct{}

// MsgRevokeScheme removes a scheme from the trusted set. The active scheme
// cannot be revoked; activate a replacement first. Governance-only.
type MsgRevokeScheme struct {
	Authority string `json:"authority"`
	Scheme    string `json:"scheme"`
}

type MsgRevokeSchemeResponse struct{}

// MsgServer is the verifier message handling interface
type MsgServer interface {
	SetActiveScheme(context.Context, *MsgSetActiveScheme) (*MsgSetActiveSchemeResponse, error)
	TrustScheme(context.Context, *MsgTrustScheme) (*MsgTrustSchemeResponse, error)
	RevokeScheme(context.Context, *MsgRevokeScheme) (*MsgRevokeSchemeResponse, error)
}

func validateSchemeMsg(authority, scheme string) error {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if scheme == "" {
		return ErrUnknownScheme.Wrap("scheme cannot be empty")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSetActiveScheme
func (msg *MsgSetActiveScheme) ValidateBasic() error {
	return validateSchemeMsg(msg.Authority, msg.Scheme)
}

// GetSigners returns the expected signers for MsgSetActiveScheme
func (msg *MsgSetActiveScheme) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgTrustScheme
func (msg *MsgTrustScheme) ValidateBasic() error {
	return validateSchemeMsg(msg.Authority, msg.Scheme)
}

// GetSigners returns the expected signers for MsgTrustScheme
func (msg *MsgTrustScheme) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgRevokeScheme
func (msg *MsgRevokeScheme) ValidateBasic() error {
	return validateSchemeMsg(msg.Authority, msg.Scheme)
}

// GetSigners returns the expected signers for MsgRevokeScheme
func (msg *MsgRevokeScheme) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgSetActiveScheme) Reset()         { *msg = MsgSetActiveScheme{} }
func (msg *MsgSetActiveScheme) String() string { return fmt.Sprintf("MsgSetActiveScheme{%s}", msg.Scheme) }
func (msg *MsgSetActiveScheme) ProtoMessage()  {}

func (msg *MsgTrustScheme) Reset()         { *msg = MsgTrustScheme{} }
func (msg *MsgTrustScheme) String() string { return fmt.Sprintf("MsgTrustScheme{%s}", msg.Scheme) }
func (msg *MsgTrustScheme) ProtoMessage()  {}

func (msg *MsgRevokeScheme) Reset()         { *msg = MsgRevokeScheme{} }
func (msg *MsgRevokeScheme) String() string { return fmt.Sprintf("MsgRevokeScheme{%s}", msg.Scheme) }
func (msg *MsgRevokeScheme) ProtoMessage()  {}
