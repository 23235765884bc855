package budget

import (
	"errors"
	"fmt"
)

// DefaultLimit is the operation budget applied when the caller does not
// configure one. Large enough for any interactive expression, small enough
// to stop a runaway tetration in well under a second.
const DefaultLimit = 1_000_000

// Meter tracks the number of primitive ordinal operations performed during
// one calculation and enforces a maximum.
//
// One Meter instance covers one entire top-level calculation. It is passed
// by pointer through every nested arithmetic, comparison, simplification
// and embedding call, so the limit bounds *total* work, not call depth.
// Independent calculations must use independent meters; a Meter is never
// shared across concurrently running calculations.
//
// This prevents runaway expressions such as deeply right-nested tetration
// from consuming unbounded CPU: the calculation fails atomically with
// ExceededError instead.
type Meter struct {
	limit int // Maximum allowed operations for this calculation
	used  int // Operations consumed so far
}

// NewMeter creates a meter with the given operation limit.
// Non-positive limits fall back to DefaultLimit.
func NewMeter(limit int) *Meter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Meter{limit: limit}
}

// Consume charges n units against the budget.
//
// Returns ExceededError once the total passes the limit. Callers must
// propagate the error immediately; nothing resets the meter mid-flight.
func (m *Meter) Consume(n int) error {
	m.used += n
	if m.used > m.limit {
		return &ExceededError{Limit: m.limit, Used: m.used}
	}
	return nil
}

// Used returns the operations consumed so far.
// Used for diagnostics and the CLI's --verbose output.
func (m *Meter) Used() int {
	return m.used
}

// Limit returns the configured operation limit.
func (m *Meter) Limit() int {
	return m.limit
}

// ExceededError is returned when a calculation exceeds its operation budget.
//
// The whole in-flight calculation is aborted; callers may retry with a
// larger budget but nothing is retried automatically.
type ExceededError struct {
	Limit int // Maximum allowed operations
	Used  int // Count reached when the limit tripped
}

// Error implements the error interface.
func (e *ExceededError) Error() string {
	return fmt.Sprintf("operation budget exceeded: %d operations > %d limit", e.Used, e.Limit)
}

// IsExceeded returns true if the error is an ExceededError.
// Uses errors.As to handle wrapped errors.
func IsExceeded(err error) bool {
	var be *ExceededError
	return errors.As(err, &be)
}
