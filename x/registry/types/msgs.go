package types

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgSetDaoInfo   = "set_dao_info"
	TypeMsgSetComponent = "set_component"
)

var (
	_ sdk.Msg = &MsgSetDaoInfo{}
	_ sdk.Msg = &MsgSetComponent{}
)

// MsgSetDaoInfo sets the DAO descriptor. Governance-only.
type MsgSetDaoInfo struct {
	Authority string  `json:"authority"`
	DaoInfo   DaoInfo `json:"dao_info"`
}

type MsgSetDaoInfoResponse struct{}

// MsgSetComponent binds a component name to an address. Governance-only.
type MsgSetComponent struct {
	Authority string `json:"authority"`
	Name      string `json:"name"`
	Address   string `json:"address"`
}

type MsgSetComponentResponse struct{}

// MsgServer is the registry message handling interface
type MsgServer interface {
	SetDaoInfo(context.Context, *MsgSetDaoInfo) (*MsgSetDaoInfoResponse, error)
	SetComponent(context.Context, *MsgSetComponent) (*MsgSetComponentResponse, error)
}

// ValidateBasic performs stateless validation of MsgSetDaoInfo
func (msg *MsgSetDaoInfo) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return msg.DaoInfo.Validate()
}

// GetSigners returns the expected signers for MsgSetDaoInfo
func (msg *MsgSetDaoInfo) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgSetComponent
func (msg *MsgSetComponent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return Component{Name: msg.Name, Address: msg.Address}.Validate()
}

// GetSigners returns the expected signers for MsgSetComponent
func (msg *MsgSetComponent) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgSetDaoInfo) Reset()         { *msg = MsgSetDaoInfo{} }
func (msg *MsgSetDaoInfo) String() string { return fmt.Sprintf("MsgSetDaoInfo{%s}", msg.DaoInfo.Name) }
func (msg *MsgSetDaoInfo) ProtoMessage()  {}

func (msg *MsgSetComponent) Reset()         { *msg = MsgSetComponent{} }
func (msg *MsgSetComponent) String() string { return fmt.Sprintf("MsgSetComponent{%s}", msg.Name) }
func (msg *MsgSetComponent) ProtoMessage()  {}
