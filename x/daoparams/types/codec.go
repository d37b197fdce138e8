package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the daoparams concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetBounds{}, "drip/daoparams/MsgSetBounds", nil)
	cdc.RegisterConcrete(&MsgProposeChange{}, "drip/daoparams/MsgProposeChange", nil)
	cdc.RegisterConcrete(&MsgFinalizeChange{}, "drip/daoparams/MsgFinalizeChange", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "drip/daoparams/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the daoparams message types with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetBounds{},
		&MsgProposeChange{},
		&MsgFinalizeChange{},
		&MsgUpdateParams{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
