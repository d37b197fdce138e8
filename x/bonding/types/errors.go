package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Bonding module sentinel errors

var (
	// Bond lifecycle errors
	ErrZeroAmount        = sdkerrors.Register(ModuleName, 2, "amount must be positive")
	ErrUnknownBond       = sdkerrors.Register(ModuleName, 3, "no bond for worker")
	ErrInsufficientStake = sdkerrors.Register(ModuleName, 4, "insufficient staked bond")
	ErrNotReady          = sdkerrors.Register(ModuleName, 5, "unbonding delay has not elapsed")
	ErrNothingToWithdraw = sdkerrors.Register(ModuleName, 6, "no unbonding amount to withdraw")
	ErrTransferFailed    = sdkerrors.Register(ModuleName, 7, "token transfer failed")

	// Fraud dispute errors
	ErrUnknownSession       = sdkerrors.Register(ModuleName, 10, "unknown or unassigned session")
	ErrInsufficientDeposit  = sdkerrors.Register(ModuleName, 11, "dispute deposit below minimum")
	ErrUnknownDispute       = sdkerrors.Register(ModuleName, 12, "dispute not found")
	ErrDisputeWindowOpen    = sdkerrors.Register(ModuleName, 13, "dispute window has not closed")
	ErrDisputeWindowClosed  = sdkerrors.Register(ModuleName, 14, "dispute window has closed")
	ErrDisputeResolved      = sdkerrors.Register(ModuleName, 15, "dispute already resolved")
	ErrNotDisputedWorker    = sdkerrors.Register(ModuleName, 16, "caller is not the disputed worker")
	ErrEmptyEvidence        = sdkerrors.Register(ModuleName, 17, "evidence hash cannot be empty")

	// Authorization errors
	ErrUnauthorized = sdkerrors.Register(ModuleName, 20, "unauthorized")
)
