package types

import (
	"time"

	"cosmossdk.io/math"
)

// Session statuses, derived from record fields rather than stored
const (
	StatusFunded   = "funded"
	StatusAssigned = "assigned"
	StatusSettled  = "settled"
)

// Session is one escrowed unit of client funding. Amount is what remains in
// escrow for this session; settlement decrements it by the proven work value
// and any remainder stays reclaimable by the client.
type Session struct {
	ID         SessionID `json:"id"`
	Client     string    `json:"client"`
	Miner      string    `json:"miner,omitempty"`
	Amount     math.Int  `json:"amount"`
	Settled    bool      `json:"settled"`
	CreatedAt  time.Time `json:"created_at"`
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	SettledAt  time.Time `json:"settled_at,omitempty"`
}

// Status derives the lifecycle stage from the record fields
func (s Session) Status() string {
	switch {
	case s.Settled:
		return StatusSettled
	case s.Miner != "":
		return StatusAssigned
	default:
		return StatusFunded
	}
}

// Validate performs stateless validation of a session record
func (s Session) Validate() error {
	if s.ID.IsZero() {
		return ErrUnknownSession.Wrap("id cannot be zero")
	}
	if s.Client == "" {
		return ErrUnknownSession.Wrapf("session %s missing client", s.ID)
	}
	if s.Amount.IsNil() || s.Amount.IsNegative() {
		return ErrZeroAmount.Wrapf("session %s has invalid amount", s.ID)
	}
	if s.Settled && s.Miner == "" {
		return ErrNotAssigned.Wrapf("session %s settled without a miner", s.ID)
	}
	return nil
}
