package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank capabilities the bonding module depends on
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// AccountKeeper defines the auth capabilities the bonding module depends on
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// SessionSource resolves the worker assigned to a session. Implemented by the
// escrow keeper; wired after construction because escrow in turn consults
// bonding for assignment sufficiency.
type SessionSource interface {
	AssignedMiner(ctx context.Context, sessionID string) (string, error)
}
