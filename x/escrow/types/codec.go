package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the escrow concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgFundSession{}, "drip/escrow/MsgFundSession", nil)
	cdc.RegisterConcrete(&MsgAssignMiner{}, "drip/escrow/MsgAssignMiner", nil)
	cdc.RegisterConcrete(&MsgSettle{}, "drip/escrow/MsgSettle", nil)
	cdc.RegisterConcrete(&MsgReclaimRemainder{}, "drip/escrow/MsgReclaimRemainder", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "drip/escrow/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the escrow message types with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgFundSession{},
		&MsgAssignMiner{},
		&MsgSettle{},
		&MsgReclaimRemainder{},
		&MsgUpdateParams{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
