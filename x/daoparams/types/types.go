package types

import (
	"time"

	"cosmossdk.io/math"
)

// Bounded is a governance-mutable numeric parameter constrained to [Min, Max].
// Current never leaves the bound range: SetBounds validates the initial value
// and Propose rejects out-of-range values before a proposal is even recorded.
type Bounded struct {
	Key     string   `json:"key"`
	Min     math.Int `json:"min"`
	Max     math.Int `json:"max"`
	Current math.Int `json:"current"`
}

// Validate performs stateless validation of a bounded parameter
func (b Bounded) Validate() error {
	if b.Key == "" {
		return ErrUnknownKey.Wrap("key cannot be empty")
	}
	if b.Min.IsNil() || b.Max.IsNil() || b.Current.IsNil() {
		return ErrInvalidValue.Wrapf("parameter %s has nil bounds or value", b.Key)
	}
	if b.Min.GT(b.Max) {
		return ErrInvalidRange.Wrapf("parameter %s: min %s > max %s", b.Key, b.Min, b.Max)
	}
	if !b.InRange(b.Current) {
		return ErrOutOfBounds.Wrapf("parameter %s: current %s outside [%s, %s]", b.Key, b.Current, b.Min, b.Max)
	}
	return nil
}

// InRange reports whether v lies within [Min, Max]
func (b Bounded) InRange(v math.Int) bool {
	return v.GTE(b.Min) && v.LTE(b.Max)
}

// Proposal is a pending timelocked parameter change. The per-key state machine
// is Stable -> Proposed(value, readyAt) -> Stable(newValue); Finalize is the
// only transition out of Proposed.
type Proposal struct {
	Key        string    `json:"key"`
	Value      math.Int  `json:"value"`
	ProposedAt time.Time `json:"proposed_at"`
	ReadyAt    time.Time `json:"ready_at"`
}

// Validate performs stateless validation of a proposal
func (p Proposal) Validate() error {
	if p.Key == "" {
		return ErrUnknownKey.Wrap("key cannot be empty")
	}
	if p.Value.IsNil() {
		return ErrInvalidValue.Wrapf("proposal for %s has nil value", p.Key)
	}
	if p.ReadyAt.Before(p.ProposedAt) {
		return ErrInvalidValue.Wrapf("proposal for %s ready before proposed", p.Key)
	}
	return nil
}
