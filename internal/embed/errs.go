package embed

import (
	"errors"
	"fmt"
)

// RegressionLimitError reports that the numeric inverse recursed past its
// depth cap without converging on a stable ordinal.
type RegressionLimitError struct {
	Depth int
}

func (e *RegressionLimitError) Error() string {
	return fmt.Sprintf("inverse mapping exceeded recursion depth %d", e.Depth)
}

// IsRegressionLimit reports whether err is a RegressionLimitError.
func IsRegressionLimit(err error) bool {
	var rle *RegressionLimitError
	return errors.As(err, &rle)
}

// DomainError reports an inverse input outside [0, Sup].
type DomainError struct {
	X   float64
	Sup float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value %g is outside the embedding range [0, %g]", e.X, e.Sup)
}

// IsDomain reports whether err is a DomainError.
func IsDomain(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
