package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the verifier concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetActiveScheme{}, "drip/verifier/MsgSetActiveScheme", nil)
	cdc.RegisterConcrete(&MsgTrustScheme{}, "drip/verifier/MsgTrustScheme", nil)
	cdc.RegisterConcrete(&MsgRevokeScheme{}, "drip/verifier/MsgRevokeScheme", nil)
}

// RegisterInterfaces registers the verifier message types with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetActiveScheme{},
		&MsgTrustScheme{},
		&MsgRevokeScheme{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
