package arith

import (
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// Tetrate computes a↑↑b, iterated exponentiation of a onto itself b
// times. ω↑↑n expands the pure power towers (ω↑↑2 = ω^ω) and ω↑↑ω is the
// defining limit for ε₀.
func Tetrate(a, b ordinal.Value, m *budget.Meter) (ordinal.Value, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	ops, err := splitOperands(a, b, m)
	if err != nil {
		return nil, err
	}

	switch {
	case ops.aEps && ops.bEps:
		return nil, &UnsupportedError{Op: "tetrate", Message: "e_0^^e_0 exceeds e_0"}
	case ops.bEps:
		switch {
		case ops.a.IsZero():
			return ordinal.Zero(), nil
		case ops.a.IsOne():
			return ordinal.One(), nil
		default:
			// x^^e_0 = e_0 for every x > 1, mirroring x^e_0 = e_0.
			return ordinal.Epsilon0{}, nil
		}
	case ops.aEps:
		switch {
		case ops.b.IsZero():
			return ordinal.One(), nil
		case ops.b.IsOne():
			return ordinal.Epsilon0{}, nil
		default:
			return nil, &UnsupportedError{Op: "tetrate", Message: "e_0^^x exceeds e_0 for x > 1"}
		}
	}

	return tetrateCNF(ops.a, ops.b, m)
}

// tetrateCNF implements CNF tetration.
func tetrateCNF(a, b *ordinal.CNF, m *budget.Meter) (ordinal.Value, error) {
	switch {
	case b.IsZero():
		return ordinal.One(), nil
	case b.IsOne():
		return a, nil
	}

	if a.IsZero() {
		// 0^^n alternates: 0, 1, 0, 1, … starting at 0^^1 = 0.
		if !b.IsFinite() {
			return nil, &UnsupportedError{Op: "tetrate", Message: "0^^b is undefined for infinite b"}
		}
		if b.FinitePart().Bit(0) == 1 {
			return ordinal.Zero(), nil
		}
		return ordinal.One(), nil
	}
	if a.IsOne() {
		return ordinal.One(), nil
	}

	if b.IsFinite() {
		// a↑↑n = a^(a↑↑(n−1)), built bottom-up.
		acc := a
		i := big.NewInt(1)
		n := b.FinitePart()
		for i.Cmp(n) < 0 {
			if err := m.Consume(1); err != nil {
				return nil, err
			}
			res, err := powCNF(a, acc, m)
			if err != nil {
				return nil, err
			}
			acc = res
			i = new(big.Int).Add(i, bigIntOne)
		}
		return acc, nil
	}

	if a.IsFinite() {
		// k^^b for finite k >= 2 and infinite b converges to ω.
		return ordinal.Omega(), nil
	}
	// Infinite base, infinite height: the first fixed point of x ↦ ω^x.
	return ordinal.Epsilon0{}, nil
}
