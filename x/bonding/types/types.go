package types

import (
	"time"

	"cosmossdk.io/math"
)

// Bond is a worker's at-risk collateral. Staked backs session assignments;
// UnbondingAmount is queued for release and stays slashable until withdrawn.
type Bond struct {
	Worker          string    `json:"worker"`
	Staked          math.Int  `json:"staked"`
	UnbondingAmount math.Int  `json:"unbonding_amount"`
	UnbondReadyAt   time.Time `json:"unbond_ready_at"`
}

// NewBond returns an empty bond for a worker
func NewBond(worker string) Bond {
	return Bond{
		Worker:          worker,
		Staked:          math.ZeroInt(),
		UnbondingAmount: math.ZeroInt(),
	}
}

// Total returns staked plus unbonding collateral, the full slashable amount
func (b Bond) Total() math.Int {
	return b.Staked.Add(b.UnbondingAmount)
}

// Validate performs stateless validation of a bond record
func (b Bond) Validate() error {
	if b.Worker == "" {
		return ErrUnknownBond.Wrap("worker cannot be empty")
	}
	if b.Staked.IsNil() || b.Staked.IsNegative() {
		return ErrZeroAmount.Wrapf("bond for %s has invalid staked amount", b.Worker)
	}
	if b.UnbondingAmount.IsNil() || b.UnbondingAmount.IsNegative() {
		return ErrZeroAmount.Wrapf("bond for %s has invalid unbonding amount", b.Worker)
	}
	return nil
}

// Dispute statuses
const (
	DisputeStatusOpen              = "open"
	DisputeStatusContested         = "contested"
	DisputeStatusResolvedSlashed   = "resolved_slashed"
	DisputeStatusResolvedDismissed = "resolved_dismissed"
)

// Dispute is a fraud claim against a bonded worker. It stays open for the
// dispute window; an uncontested dispute authorizes a slash when resolved,
// a contested one needs a governance ruling.
type Dispute struct {
	ID           uint64    `json:"id"`
	SessionID    string    `json:"session_id"`
	Reporter     string    `json:"reporter"`
	Worker       string    `json:"worker"`
	EvidenceHash []byte    `json:"evidence_hash"`
	Deposit      math.Int  `json:"deposit"`
	CreatedAt    time.Time `json:"created_at"`
	WindowEndsAt time.Time `json:"window_ends_at"`
	Status       string    `json:"status"`
}

// Open reports whether the dispute still awaits resolution
func (d Dispute) Open() bool {
	return d.Status == DisputeStatusOpen || d.Status == DisputeStatusContested
}

// Validate performs stateless validation of a dispute record
func (d Dispute) Validate() error {
	if d.ID == 0 {
		return ErrUnknownDispute.Wrap("id cannot be zero")
	}
	if d.SessionID == "" {
		return ErrUnknownSession.Wrap("session id cannot be empty")
	}
	if d.Worker == "" || d.Reporter == "" {
		return ErrUnknownDispute.Wrapf("dispute %d missing parties", d.ID)
	}
	if len(d.EvidenceHash) == 0 {
		return ErrEmptyEvidence
	}
	if d.Deposit.IsNil() || d.Deposit.IsNegative() {
		return ErrInsufficientDeposit.Wrapf("dispute %d has invalid deposit", d.ID)
	}
	switch d.Status {
	case DisputeStatusOpen, DisputeStatusContested, DisputeStatusResolvedSlashed, DisputeStatusResolvedDismissed:
	default:
		return ErrUnknownDispute.Wrapf("dispute %d has invalid status %s", d.ID, d.Status)
	}
	return nil
}
