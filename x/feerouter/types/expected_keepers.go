package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank capabilities the feerouter module depends on
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins) error
}

// ParamsSource resolves governance-bounded parameter values. Implemented by
// the daoparams keeper.
type ParamsSource interface {
	GetValue(ctx context.Context, key string) (math.Int, error)
}
