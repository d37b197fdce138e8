package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank capabilities the escrow module depends on
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// AccountKeeper defines the auth capabilities the escrow module depends on
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BondingKeeper checks miner collateral sufficiency at assignment time
type BondingKeeper interface {
	HasSufficientBond(ctx context.Context, worker string, required math.Int) bool
}

// VerifierKeeper dispatches proof verification to the active trusted scheme
type VerifierKeeper interface {
	Verify(ctx context.Context, proof, publicInputs []byte) error
}

// FeeRouter splits a collected protocol fee held by fromModule
type FeeRouter interface {
	RouteFee(ctx context.Context, fromModule string, fee math.Int) (validators, treasury math.Int, err error)
}

// ParamsSource resolves governance-bounded parameter values. Implemented by
// the daoparams keeper.
type ParamsSource interface {
	GetValue(ctx context.Context, key string) (math.Int, error)
}
