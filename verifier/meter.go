package verifier

import (
	"errors"
	"fmt"
)

// ErrTickLimitExceeded is returned by a meter whose tick budget has run out.
var ErrTickLimitExceeded = errors.New("verification tick limit exceeded")

// Meter bounds the amount of work a verification pass may perform. Work is
// measured in abstract ticks so that the bound is independent of wall-clock
// time and identical on every node.
type Meter struct {
	limit uint64
	used  uint64
}

func NewMeter(limit uint64) *Meter {
	return &Meter{limit: limit}
}

// Charge consumes the given number of ticks from the remaining budget. It
// returns ErrTickLimitExceeded, leaving the meter unchanged, when the budget
// does not cover the charge.
func (m *Meter) Charge(ticks uint64) error {
	if ticks > m.limit-m.used {
		return fmt.Errorf("charging %d ticks with %d remaining: %w", ticks, m.limit-m.used, ErrTickLimitExceeded)
	}
	m.used += ticks
	return nil
}

// Used returns the number of ticks consumed so far.
func (m *Meter) Used() uint64 {
	return m.used
}

// Remaining returns the number of ticks left in the budget.
func (m *Meter) Remaining() uint64 {
	return m.limit - m.used
}
