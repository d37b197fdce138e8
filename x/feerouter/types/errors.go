package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Feerouter module sentinel errors
var (
	ErrZeroAmount     = sdkerrors.Register(ModuleName, 2, "amount must be positive")
	ErrInvalidTheta   = sdkerrors.Register(ModuleName, 3, "theta must be between 0 and 10000 basis points")
	ErrTransferFailed = sdkerrors.Register(ModuleName, 4, "token transfer failed")
	ErrUnauthorized   = sdkerrors.Register(ModuleName, 5, "unauthorized")
)
