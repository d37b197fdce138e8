package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the registry concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetDaoInfo{}, "drip/registry/MsgSetDaoInfo", nil)
	cdc.RegisterConcrete(&MsgSetComponent{}, "drip/registry/MsgSetComponent", nil)
}

// RegisterInterfaces registers the registry message types with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetDaoInfo{},
		&MsgSetComponent{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
