package ordinal

import "errors"

// InvariantError reports a normal-form violation handed to a low-level
// constructor: a negative coefficient, a nil exponent, or similar.
// Unreachable through the public API; fails fast instead of producing a
// malformed value.
type InvariantError struct {
	Message string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return "ordinal invariant violated: " + e.Message
}

// IsInvariant returns true if the error is an InvariantError.
// Uses errors.As to handle wrapped errors.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
