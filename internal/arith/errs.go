package arith

import (
	"errors"
	"fmt"
)

// UnsupportedError reports an operand combination outside the system's
// closed arithmetic: results that would exceed ε₀, or genuinely undefined
// cases. The calculation fails immediately; nothing is approximated.
type UnsupportedError struct {
	Op      string // "add", "mul", "pow", "tetrate"
	Message string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s: %s", e.Op, e.Message)
}

// IsUnsupported returns true if the error is an UnsupportedError.
// Uses errors.As to handle wrapped errors.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}
