package ordinal

import (
	"fmt"

	"github.com/roach88/cantor/internal/budget"
)

// Compare imposes the total order on ordinal values: any CNF value < ε₀,
// two ε₀ sentinels are equal, and ω-towers are expanded to CNF first.
// Returns -1, 0, or 1.
//
// Tower expansion charges the meter proportionally to the height; plain
// CNF comparison charges one unit per call.
func Compare(a, b Value, m *budget.Meter) (int, error) {
	if err := m.Consume(1); err != nil {
		return 0, err
	}

	_, aEps := a.(Epsilon0)
	_, bEps := b.(Epsilon0)
	switch {
	case aEps && bEps:
		return 0, nil
	case aEps:
		return 1, nil
	case bEps:
		return -1, nil
	}

	ac, err := expandCNF(a, m)
	if err != nil {
		return 0, err
	}
	bc, err := expandCNF(b, m)
	if err != nil {
		return 0, err
	}
	return compareCNF(ac, bc), nil
}

// expandCNF turns a non-ε₀ value into its CNF form, expanding towers.
func expandCNF(v Value, m *budget.Meter) (*CNF, error) {
	switch val := v.(type) {
	case *CNF:
		return val, nil
	case Tower:
		return TowerCNF(val.Height, m)
	default:
		return nil, &InvariantError{Message: fmt.Sprintf("cannot expand %T to CNF", v)}
	}
}

// TowerCNF expands ω↑↑height into its CNF form: 1, ω, ω^ω, ω^(ω^ω), …
// Each level charges one budget unit.
func TowerCNF(height int, m *budget.Meter) (*CNF, error) {
	if height < 0 {
		return nil, &InvariantError{Message: fmt.Sprintf("tower height must be non-negative, got %d", height)}
	}
	x := one
	for i := 0; i < height; i++ {
		if err := m.Consume(1); err != nil {
			return nil, err
		}
		x = &CNF{terms: []Term{{Exp: x, Coeff: bigOne}}}
	}
	return x, nil
}

// compareCNF is the pure total order on CNF values. Term sequences are
// compared lexicographically: exponents recursively, coefficients as a
// tie-break, and a proper prefix sorts below the longer sequence.
func compareCNF(a, b *CNF) int {
	n := min(len(a.terms), len(b.terms))
	for i := 0; i < n; i++ {
		if c := compareCNF(a.terms[i].Exp, b.terms[i].Exp); c != 0 {
			return c
		}
		if c := a.terms[i].Coeff.Cmp(b.terms[i].Coeff); c != 0 {
			return c
		}
	}
	switch {
	case len(a.terms) < len(b.terms):
		return -1
	case len(a.terms) > len(b.terms):
		return 1
	default:
		return 0
	}
}

// CompareCNF compares two CNF values without budget accounting.
// Exposed for normalization and tests; public calculations should go
// through Compare.
func CompareCNF(a, b *CNF) int {
	return compareCNF(a, b)
}
