// Package testutil provides shared fixtures for calculator tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/expr"
	"github.com/roach88/cantor/internal/ordinal"
)

// MustEval parses and evaluates src, failing the test on any error.
func MustEval(t *testing.T, src string) ordinal.Value {
	t.Helper()
	v, err := expr.EvalString(src, budget.NewMeter(0))
	require.NoError(t, err, "eval %q", src)
	return v
}

// ChainSources is an ascending chain of expressions spanning the
// representable range, finite values through ε₀.
var ChainSources = []string{
	"0",
	"1",
	"2",
	"42",
	"w",
	"w+1",
	"w*2",
	"w^2",
	"w^2+w+1",
	"w^2*2",
	"w^3",
	"w^w",
	"w^(w+1)",
	"w^w^w",
	"w^^4",
	"e_0",
}

// Chain evaluates ChainSources. The result is strictly ascending in the
// ordinal order, which makes it a convenient fixture for order,
// embedding, and simplification properties.
func Chain(t *testing.T) []ordinal.Value {
	t.Helper()
	vals := make([]ordinal.Value, len(ChainSources))
	for i, src := range ChainSources {
		vals[i] = MustEval(t, src)
	}
	return vals
}
