package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Verifier module sentinel errors

var (
	ErrMalformedInputs    = sdkerrors.Register(ModuleName, 2, "malformed public inputs")
	ErrUnknownScheme      = sdkerrors.Register(ModuleName, 3, "unknown verification scheme")
	ErrUntrustedScheme    = sdkerrors.Register(ModuleName, 4, "verification scheme not trusted")
	ErrSchemeInUse        = sdkerrors.Register(ModuleName, 5, "scheme is the active verification scheme")
	ErrVerificationFailed = sdkerrors.Register(ModuleName, 6, "proof verification failed")
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 7, "unauthorized")
	ErrNoVerifier         = sdkerrors.Register(ModuleName, 8, "no verifier implementation registered for scheme")
	ErrInvalidProof       = sdkerrors.Register(ModuleName, 9, "invalid proof encoding")
)
