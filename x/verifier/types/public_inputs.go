package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// PublicInputsSize is the fixed encoded size: a 32-byte session identifier
// followed by a 32-byte big-endian unsigned work value.
const PublicInputsSize = 64

// PublicInputs binds a settlement proof to one session and one claimed work
// value. The session binding is what prevents replaying a valid proof against
// a different session.
type PublicInputs struct {
	SessionID [32]byte
	WorkValue math.Int
}

// Encode serializes the public inputs into the fixed 64-byte layout.
func (pi PublicInputs) Encode() ([]byte, error) {
	if pi.WorkValue.IsNil() || pi.WorkValue.IsNegative() {
		return nil, ErrMalformedInputs.Wrap("work value must be non-negative")
	}
	if pi.WorkValue.BigInt().BitLen() > 256 {
		return nil, ErrMalformedInputs.Wrap("work value exceeds 256 bits")
	}

	out := make([]byte, PublicInputsSize)
	copy(out[:32], pi.SessionID[:])
	pi.WorkValue.BigInt().FillBytes(out[32:])
	return out, nil
}

// DecodePublicInputs parses the fixed 64-byte layout.
func DecodePublicInputs(bz []byte) (PublicInputs, error) {
	if len(bz) != PublicInputsSize {
		return PublicInputs{}, ErrMalformedInputs.Wrapf("expected %d bytes, got %d", PublicInputsSize, len(bz))
	}

	var pi PublicInputs
	copy(pi.SessionID[:], bz[:32])
	pi.WorkValue = math.NewIntFromBigInt(new(big.Int).SetBytes(bz[32:]))
	return pi, nil
}
