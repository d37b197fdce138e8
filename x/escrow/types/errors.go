package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Escrow module sentinel errors. Codes group by lifecycle stage: funding,
// assignment, settlement, reclaim.
var (
	// Funding errors
	ErrDuplicateSession = sdkerrors.Register(ModuleName, 2, "session already funded")
	ErrZeroAmount       = sdkerrors.Register(ModuleName, 3, "amount must be positive")
	ErrTransferFailed   = sdkerrors.Register(ModuleName, 4, "token transfer failed")

	// Assignment errors
	ErrUnknownSession   = sdkerrors.Register(ModuleName, 10, "session not found")
	ErrAlreadyAssigned  = sdkerrors.Register(ModuleName, 11, "session already has an assigned miner")
	ErrInsufficientBond = sdkerrors.Register(ModuleName, 12, "miner bond below required minimum")

	// Settlement errors
	ErrNotAssigned         = sdkerrors.Register(ModuleName, 20, "session has no assigned miner")
	ErrAlreadySettled      = sdkerrors.Register(ModuleName, 21, "session already settled")
	ErrInsufficientEscrow  = sdkerrors.Register(ModuleName, 22, "work value exceeds escrowed amount")
	ErrPublicInputMismatch = sdkerrors.Register(ModuleName, 23, "public inputs do not bind to this session")
	ErrVerificationFailed  = sdkerrors.Register(ModuleName, 24, "proof verification failed")

	// Reclaim errors
	ErrNotSettled       = sdkerrors.Register(ModuleName, 30, "session not yet settled")
	ErrNothingToReclaim = sdkerrors.Register(ModuleName, 31, "no remainder to reclaim")

	// Authorization errors
	ErrUnauthorized = sdkerrors.Register(ModuleName, 40, "unauthorized")
)
