package expr

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cantor/internal/arith"
	"github.com/roach88/cantor/internal/budget"
)

// evalCatalog is the expression corpus for the golden test. Each entry
// exercises a parser rule or an arithmetic identity end to end.
var evalCatalog = []string{
	"1+2",
	"2+w",
	"w+1",
	"w+w",
	"w*2+1",
	"2*w",
	"w*w",
	"w*0",
	"(w+1)*2",
	"(w+1)*(w+1)",
	"2^w",
	"2^(w+1)",
	"w^2*3+w*5+7",
	"(w^2*3)^2",
	"w^w",
	"(w^w)^w",
	"w^w^w",
	"w^2^2",
	"2^^3",
	"2^^2^^2",
	"w^^2",
	"w^^w",
	"2^^w",
	"0^^5",
	"e_0+0",
	"1+e_0",
	"w^(w+1)",
	"w+w*2",
	"2*3^2",
}

// TestEval_Golden evaluates the catalog and compares canonical output
// against the golden file.
func TestEval_Golden(t *testing.T) {
	var buf bytes.Buffer
	for _, src := range evalCatalog {
		v, err := EvalString(src, budget.NewMeter(0))
		require.NoError(t, err, "eval %q", src)
		fmt.Fprintf(&buf, "%s = %s\n", src, v)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "eval_catalog", buf.Bytes())
}

// TestParse_Associativity pins the binding rules: "^" and "^^" group to
// the right, "^^" tighter than "^".
func TestParse_Associativity(t *testing.T) {
	for _, tc := range []struct {
		src, same string
	}{
		{"w^w^w", "w^(w^w)"},
		{"2^^2^^2", "2^^(2^^2)"},
		{"w^w^^2", "w^(w^^2)"},
		{"w+w*2", "w+(w*2)"},
		{"w*2+1", "(w*2)+1"},
	} {
		a, err := EvalString(tc.src, budget.NewMeter(0))
		require.NoError(t, err, tc.src)
		b, err := EvalString(tc.same, budget.NewMeter(0))
		require.NoError(t, err, tc.same)
		assert.Equal(t, b.String(), a.String(), "%q vs %q", tc.src, tc.same)
	}
}

// TestParse_Errors rejects malformed input with positioned errors.
func TestParse_Errors(t *testing.T) {
	for _, tc := range []struct {
		src    string
		offset int
	}{
		{"", 0},
		{"w^", 2},
		{"(w", 2},
		{"w)", 1},
		{"3 4", 2},
		{"$", 0},
		{"e_", 0},
		{"we", 0},
		{"+w", 0},
	} {
		_, err := Parse(tc.src)
		require.Error(t, err, "parse %q", tc.src)
		assert.True(t, IsParse(err), "parse %q: %v", tc.src, err)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, tc.offset, pe.Offset, "parse %q", tc.src)
	}
}

// TestEval_Unsupported surfaces the ε₀ identity-set boundary.
func TestEval_Unsupported(t *testing.T) {
	for _, src := range []string{"e_0+1", "e_0^e_0"} {
		_, err := EvalString(src, budget.NewMeter(0))
		require.Error(t, err, src)
		assert.True(t, arith.IsUnsupported(err), "%s: %v", src, err)
	}
}

// TestEval_BudgetExceeded propagates meter exhaustion out of evaluation.
func TestEval_BudgetExceeded(t *testing.T) {
	_, err := EvalString("(w^w+w*3+5)*(w^w+1)*(w+2)", budget.NewMeter(3))
	require.Error(t, err)
	assert.True(t, budget.IsExceeded(err))
}
