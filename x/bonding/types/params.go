package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params holds the bonding module parameters.
type Params struct {
	// UnbondDelaySeconds is the delay between InitiateUnbond and the earliest
	// allowed Withdraw.
	UnbondDelaySeconds uint64 `json:"unbond_delay_seconds"`

	// DisputeWindowSeconds is how long a fraud dispute stays open for
	// rebuttal before it can be resolved.
	DisputeWindowSeconds uint64 `json:"dispute_window_seconds"`

	// FraudSlashBps is the slash applied to a worker's staked bond on a
	// proven fraud, in basis points.
	FraudSlashBps uint64 `json:"fraud_slash_bps"`

	// DisputeDeposit is the minimum deposit a reporter locks when opening a
	// fraud dispute. Refunded on a slash, forfeited to the worker on a
	// dismissal.
	DisputeDeposit math.Int `json:"dispute_deposit"`
}

// DefaultParams returns default bonding parameters
func DefaultParams() Params {
	return Params{
		UnbondDelaySeconds:   604800, // 7 days
		DisputeWindowSeconds: 86400,  // 24 hours
		FraudSlashBps:        5000,   // 50%
		DisputeDeposit:       math.NewInt(100000),
	}
}

// Validate performs basic validation of module parameters
func (p Params) Validate() error {
	if p.FraudSlashBps > 10000 {
		return fmt.Errorf("fraud slash bps cannot exceed 10000, got %d", p.FraudSlashBps)
	}
	if p.DisputeDeposit.IsNil() || p.DisputeDeposit.IsNegative() {
		return fmt.Errorf("dispute deposit must be non-negative")
	}
	return nil
}
