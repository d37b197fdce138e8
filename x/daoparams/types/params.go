package types

// Params holds the daoparams module's own configuration.
type Params struct {
	// TimelockDelaySeconds is the delay between Propose and the earliest
	// allowed Finalize. Zero is permitted for test deployments; production
	// genesis sets a non-zero delay so no parameter change takes effect
	// before its timelock elapses.
	TimelockDelaySeconds uint64 `json:"timelock_delay_seconds"`
}

// DefaultParams returns default daoparams parameters
func DefaultParams() Params {
	return Params{
		TimelockDelaySeconds: 86400, // 24 hours
	}
}

// Validate performs basic validation of module parameters
func (p Params) Validate() error {
	return nil
}
