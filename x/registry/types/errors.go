package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Registry module sentinel errors
var (
	ErrUnknownComponent = sdkerrors.Register(ModuleName, 2, "component name not in the known set")
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 3, "invalid component address")
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 4, "unauthorized")
	ErrInvalidDaoInfo   = sdkerrors.Register(ModuleName, 5, "invalid dao info")
)
