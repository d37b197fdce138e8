package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Daoparams module sentinel errors

var (
	ErrInvalidRange = sdkerrors.Register(ModuleName, 2, "invalid parameter range")
	ErrOutOfBounds  = sdkerrors.Register(ModuleName, 3, "value outside parameter bounds")
	ErrUnknownKey   = sdkerrors.Register(ModuleName, 4, "unknown parameter key")
	ErrDuplicateKey = sdkerrors.Register(ModuleName, 5, "parameter key already initialized")
	ErrNoProposal   = sdkerrors.Register(ModuleName, 6, "no pending proposal")
	ErrNotReady     = sdkerrors.Register(ModuleName, 7, "timelock has not elapsed")
	ErrUnauthorized = sdkerrors.Register(ModuleName, 8, "unauthorized")
	ErrInvalidValue = sdkerrors.Register(ModuleName, 9, "invalid parameter value")
)
