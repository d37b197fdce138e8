package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Treasury module sentinel errors

var (
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 2, "unauthorized")
	ErrZeroAmount       = sdkerrors.Register(ModuleName, 3, "amount must be positive")
	ErrInvalidRecipient = sdkerrors.Register(ModuleName, 4, "invalid recipient address")
	ErrInsufficientFunds = sdkerrors.Register(ModuleName, 5, "insufficient treasury funds")
)
