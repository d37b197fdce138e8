package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the bonding concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgBondStake{}, "drip/bonding/MsgBondStake", nil)
	cdc.RegisterConcrete(&MsgInitiateUnbond{}, "drip/bonding/MsgInitiateUnbond", nil)
	cdc.RegisterConcrete(&MsgWithdrawUnbonded{}, "drip/bonding/MsgWithdrawUnbonded", nil)
	cdc.RegisterConcrete(&MsgReportFraud{}, "drip/bonding/MsgReportFraud", nil)
	cdc.RegisterConcrete(&MsgRebutFraud{}, "drip/bonding/MsgRebutFraud", nil)
	cdc.RegisterConcrete(&MsgResolveFraud{}, "drip/bonding/MsgResolveFraud", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "drip/bonding/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the bonding message types with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgBondStake{},
		&MsgInitiateUnbond{},
		&MsgWithdrawUnbonded{},
		&MsgReportFraud{},
		&MsgRebutFraud{},
		&MsgResolveFraud{},
		&MsgUpdateParams{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
