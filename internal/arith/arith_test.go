package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// fin builds a finite ordinal or fails the test.
func fin(t *testing.T, n int64) *ordinal.CNF {
	t.Helper()
	v, err := ordinal.FromInt64(n)
	require.NoError(t, err)
	return v
}

// mono builds ω^exp·coeff or fails the test.
func mono(t *testing.T, exp *ordinal.CNF, coeff int64) *ordinal.CNF {
	t.Helper()
	v, err := ordinal.Monomial(exp, big.NewInt(coeff))
	require.NoError(t, err)
	return v
}

// sum folds addCNF over the given values with a generous meter.
func sum(t *testing.T, vals ...*ordinal.CNF) *ordinal.CNF {
	t.Helper()
	m := budget.NewMeter(0)
	acc := ordinal.Zero()
	for _, v := range vals {
		var err error
		acc, err = addCNF(acc, v, m)
		require.NoError(t, err)
	}
	return acc
}

// evalStr runs op and returns the canonical rendering of the result.
func evalStr(t *testing.T, op func(a, b ordinal.Value, m *budget.Meter) (ordinal.Value, error), a, b ordinal.Value) string {
	t.Helper()
	res, err := op(a, b, budget.NewMeter(0))
	require.NoError(t, err)
	return res.String()
}

// TestAdd_Identities tests zero handling and finite sums.
func TestAdd_Identities(t *testing.T) {
	w := ordinal.Omega()

	assert.Equal(t, "w", evalStr(t, Add, w, fin(t, 0)))
	assert.Equal(t, "w", evalStr(t, Add, fin(t, 0), w))
	assert.Equal(t, "5", evalStr(t, Add, fin(t, 2), fin(t, 3)))
}

// TestAdd_NonCommutative witnesses 1+ω = ω but ω+1 ≠ 1+ω.
func TestAdd_NonCommutative(t *testing.T) {
	w := ordinal.Omega()

	assert.Equal(t, "w", evalStr(t, Add, fin(t, 1), w))
	assert.Equal(t, "w+1", evalStr(t, Add, w, fin(t, 1)))
	assert.Equal(t, "w", evalStr(t, Add, fin(t, 1000), w), "any finite left operand is absorbed")
}

// TestAdd_Absorption tests the low-order tail absorption of the left
// operand against an infinite right operand.
func TestAdd_Absorption(t *testing.T) {
	w := ordinal.Omega()
	wSq := mono(t, fin(t, 2), 1)

	// (ω^2+ω+1) + ω = ω^2+ω·2: the +1 tail vanishes, ω terms merge.
	a := sum(t, wSq, w, fin(t, 1))
	assert.Equal(t, "w^2+w*2", evalStr(t, Add, a, w))

	// (ω+5) + ω^2 = ω^2: everything in a is absorbed.
	b := sum(t, w, fin(t, 5))
	assert.Equal(t, "w^2", evalStr(t, Add, b, wSq))

	// ω^2 + ω keeps both terms.
	assert.Equal(t, "w^2+w", evalStr(t, Add, wSq, w))
}

// TestAdd_Epsilon0 tests the closed ε₀ identity set for addition.
func TestAdd_Epsilon0(t *testing.T) {
	eps := ordinal.Epsilon0{}

	assert.Equal(t, "e_0", evalStr(t, Add, fin(t, 7), eps))
	assert.Equal(t, "e_0", evalStr(t, Add, ordinal.Omega(), eps))
	assert.Equal(t, "e_0", evalStr(t, Add, eps, fin(t, 0)))

	_, err := Add(eps, fin(t, 1), budget.NewMeter(0))
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))

	_, err = Add(eps, eps, budget.NewMeter(0))
	assert.True(t, IsUnsupported(err))
}

// TestMul_Identities tests zero absorption and multiplication by one.
func TestMul_Identities(t *testing.T) {
	w := ordinal.Omega()

	assert.Equal(t, "0", evalStr(t, Mul, w, fin(t, 0)))
	assert.Equal(t, "0", evalStr(t, Mul, fin(t, 0), w))
	assert.Equal(t, "w", evalStr(t, Mul, w, fin(t, 1)))
	assert.Equal(t, "w", evalStr(t, Mul, fin(t, 1), w))
	assert.Equal(t, "6", evalStr(t, Mul, fin(t, 2), fin(t, 3)))
}

// TestMul_Absorption tests the classical multiplication witnesses.
func TestMul_Absorption(t *testing.T) {
	w := ordinal.Omega()

	assert.Equal(t, "w*2", evalStr(t, Mul, w, fin(t, 2)))
	assert.Equal(t, "w", evalStr(t, Mul, fin(t, 2), w))
	assert.Equal(t, "w^2", evalStr(t, Mul, w, w))

	// (ω+1)·2 = ω·2+1.
	wp1 := sum(t, w, fin(t, 1))
	assert.Equal(t, "w*2+1", evalStr(t, Mul, wp1, fin(t, 2)))

	// (ω+1)·ω = ω^2: the +1 is absorbed.
	assert.Equal(t, "w^2", evalStr(t, Mul, wp1, w))

	// (ω^2·3+ω)·5 scales only the leading coefficient.
	a := sum(t, mono(t, fin(t, 2), 3), w)
	assert.Equal(t, "w^2*15+w", evalStr(t, Mul, a, fin(t, 5)))
}

// TestMul_Epsilon0 tests the closed ε₀ identity set for multiplication.
func TestMul_Epsilon0(t *testing.T) {
	eps := ordinal.Epsilon0{}

	assert.Equal(t, "0", evalStr(t, Mul, fin(t, 0), eps))
	assert.Equal(t, "e_0", evalStr(t, Mul, fin(t, 1), eps))
	assert.Equal(t, "e_0", evalStr(t, Mul, fin(t, 9), eps))
	assert.Equal(t, "e_0", evalStr(t, Mul, ordinal.Omega(), eps))
	assert.Equal(t, "e_0", evalStr(t, Mul, eps, fin(t, 1)))
	assert.Equal(t, "0", evalStr(t, Mul, eps, fin(t, 0)))

	_, err := Mul(eps, fin(t, 2), budget.NewMeter(0))
	assert.True(t, IsUnsupported(err))
}

// TestPow_SpecCases tests the exponentiation case table.
func TestPow_SpecCases(t *testing.T) {
	w := ordinal.Omega()

	assert.Equal(t, "1", evalStr(t, Pow, w, fin(t, 0)))
	assert.Equal(t, "0", evalStr(t, Pow, fin(t, 0), w))
	assert.Equal(t, "1", evalStr(t, Pow, fin(t, 1), w))
	assert.Equal(t, "w", evalStr(t, Pow, w, fin(t, 1)))
	assert.Equal(t, "1024", evalStr(t, Pow, fin(t, 2), fin(t, 10)))

	// Finite base, infinite exponent.
	assert.Equal(t, "w", evalStr(t, Pow, fin(t, 2), w))
	wp1 := sum(t, w, fin(t, 1))
	assert.Equal(t, "w*2", evalStr(t, Pow, fin(t, 2), wp1), "2^(ω+1) = ω·2")
	wSq := mono(t, fin(t, 2), 1)
	assert.Equal(t, "w^w", evalStr(t, Pow, fin(t, 3), wSq), "3^(ω^2) = ω^ω")

	// Infinite base, finite exponent: single-term fast path.
	assert.Equal(t, "w^2", evalStr(t, Pow, w, fin(t, 2)))
	w3 := mono(t, fin(t, 1), 3)
	assert.Equal(t, "w^4*3", evalStr(t, Pow, w3, fin(t, 4)), "coefficient is not exponentiated")

	// Infinite base, finite exponent: multi-term iteration.
	assert.Equal(t, "w^2+w+1", evalStr(t, Pow, wp1, fin(t, 2)), "(ω+1)^2 = ω^2+ω+1")

	// Infinite base, infinite exponent.
	assert.Equal(t, "w^w", evalStr(t, Pow, w, w))
	assert.Equal(t, "w^(w^2)", evalStr(t, Pow, wSq, wSq), "(ω^2)^(ω^2) = ω^(2·ω^2) = ω^(ω^2)")
	assert.Equal(t, "w^w", evalStr(t, Pow, wSq, w), "(ω^2)^ω = ω^(2·ω) = ω^ω")
	assert.Equal(t, "w^(w+1)", evalStr(t, Pow, w, sum(t, w, fin(t, 1))), "ω^(ω+1) = ω^ω·ω")
}

// TestPow_Epsilon0 tests the ε₀ exponentiation identity set.
func TestPow_Epsilon0(t *testing.T) {
	eps := ordinal.Epsilon0{}

	assert.Equal(t, "1", evalStr(t, Pow, eps, fin(t, 0)))
	assert.Equal(t, "e_0", evalStr(t, Pow, eps, fin(t, 1)))
	assert.Equal(t, "e_0", evalStr(t, Pow, fin(t, 2), eps))
	assert.Equal(t, "e_0", evalStr(t, Pow, ordinal.Omega(), eps))
	assert.Equal(t, "0", evalStr(t, Pow, fin(t, 0), eps))
	assert.Equal(t, "1", evalStr(t, Pow, fin(t, 1), eps))

	_, err := Pow(eps, fin(t, 2), budget.NewMeter(0))
	assert.True(t, IsUnsupported(err))
	_, err = Pow(eps, eps, budget.NewMeter(0))
	assert.True(t, IsUnsupported(err))
}

// TestTetrate_SpecCases tests the tetration case table.
func TestTetrate_SpecCases(t *testing.T) {
	w := ordinal.Omega()

	assert.Equal(t, "1", evalStr(t, Tetrate, w, fin(t, 0)))
	assert.Equal(t, "w", evalStr(t, Tetrate, w, fin(t, 1)))
	assert.Equal(t, "16", evalStr(t, Tetrate, fin(t, 2), fin(t, 3)))
	assert.Equal(t, "w^w", evalStr(t, Tetrate, w, fin(t, 2)))
	assert.Equal(t, "w^(w^w)", evalStr(t, Tetrate, w, fin(t, 3)))
	assert.Equal(t, "e_0", evalStr(t, Tetrate, w, w))
	assert.Equal(t, "w", evalStr(t, Tetrate, fin(t, 2), w))
	assert.Equal(t, "1", evalStr(t, Tetrate, fin(t, 1), w))
}

// TestTetrate_ZeroBase tests the 0↑↑n parity ladder.
func TestTetrate_ZeroBase(t *testing.T) {
	zero := fin(t, 0)

	assert.Equal(t, "1", evalStr(t, Tetrate, zero, fin(t, 0)))
	assert.Equal(t, "0", evalStr(t, Tetrate, zero, fin(t, 1)))
	assert.Equal(t, "1", evalStr(t, Tetrate, zero, fin(t, 2)))
	assert.Equal(t, "0", evalStr(t, Tetrate, zero, fin(t, 3)))

	_, err := Tetrate(zero, ordinal.Omega(), budget.NewMeter(0))
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
}

// TestTetrate_BudgetExceeded verifies that a deep tetration fails with the
// budget error on a small meter and succeeds on a large one.
func TestTetrate_BudgetExceeded(t *testing.T) {
	w := ordinal.Omega()

	_, err := Tetrate(w, fin(t, 50), budget.NewMeter(10))
	require.Error(t, err)
	assert.True(t, budget.IsExceeded(err))

	res, err := Tetrate(w, fin(t, 5), budget.NewMeter(0))
	require.NoError(t, err)
	assert.Equal(t, "w^(w^(w^(w^w)))", res.String())
}

// TestToCNF_Tower tests tower expansion through the tetration path.
func TestToCNF_Tower(t *testing.T) {
	m := budget.NewMeter(0)

	for _, tc := range []struct {
		height int
		want   string
	}{
		{0, "1"},
		{1, "w"},
		{2, "w^w"},
		{3, "w^(w^w)"},
	} {
		cnf, err := ToCNF(ordinal.Tower{Height: tc.height}, m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, cnf.String(), "w^^%d", tc.height)
	}

	_, err := ToCNF(ordinal.Epsilon0{}, m)
	assert.True(t, IsUnsupported(err))
}

// TestExponentPredecessor tests the helper used by divideByOmega.
func TestExponentPredecessor(t *testing.T) {
	m := budget.NewMeter(0)
	w := ordinal.Omega()

	for _, tc := range []struct {
		in   *ordinal.CNF
		want string
	}{
		{fin(t, 0), "0"},
		{fin(t, 4), "3"},
		{sum(t, w, fin(t, 1)), "w"},
		{sum(t, w, fin(t, 3)), "w+2"},
		{w, "w"}, // limit ordinals have no predecessor
	} {
		got, err := ExponentPredecessor(tc.in, m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String())
	}
}

// TestDivideByOmega tests ξ = B/ω for limit ordinals.
func TestDivideByOmega(t *testing.T) {
	m := budget.NewMeter(0)
	w := ordinal.Omega()

	// ω/ω = 1.
	got, err := divideByOmega(w, m)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	// (ω^3·2+ω^2)/ω = ω^2·2+ω.
	b := sum(t, mono(t, fin(t, 3), 2), mono(t, fin(t, 2), 1))
	got, err = divideByOmega(b, m)
	require.NoError(t, err)
	assert.Equal(t, "w^2*2+w", got.String())

	// (ω^ω)/ω = ω^ω: the exponent ω is a limit, unchanged.
	got, err = divideByOmega(mono(t, w, 1), m)
	require.NoError(t, err)
	assert.Equal(t, "w^w", got.String())
}
