package types

import (
	"cosmossdk.io/math"
)

// ComputeSplit divides a fee between the validator pool and the treasury.
// The validator share is fee * thetaBps / 10000 with truncating division;
// every unit lost to truncation lands in the treasury share, so the two
// shares always sum to the fee exactly.
func ComputeSplit(fee, thetaBps math.Int) (validators, treasury math.Int, err error) {
	if fee.IsNil() || fee.IsNegative() {
		return math.Int{}, math.Int{}, ErrZeroAmount.Wrap("fee must be non-negative")
	}
	if thetaBps.IsNil() || thetaBps.IsNegative() || thetaBps.GT(math.NewInt(BpsDenominator)) {
		return math.Int{}, math.Int{}, ErrInvalidTheta.Wrapf("got %s", thetaBps)
	}

	validators = fee.Mul(thetaBps).Quo(math.NewInt(BpsDenominator))
	treasury = fee.Sub(validators)
	return validators, treasury, nil
}
