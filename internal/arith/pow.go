package arith

import (
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// Pow computes the ordinal power a^b.
func Pow(a, b ordinal.Value, m *budget.Meter) (ordinal.Value, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	ops, err := splitOperands(a, b, m)
	if err != nil {
		return nil, err
	}

	switch {
	case ops.aEps && ops.bEps:
		return nil, &UnsupportedError{Op: "pow", Message: "e_0^e_0 exceeds e_0"}
	case ops.bEps:
		switch {
		case ops.a.IsZero():
			return ordinal.Zero(), nil
		case ops.a.IsOne():
			return ordinal.One(), nil
		default:
			// x^e_0 = e_0 for every x > 1 below e_0.
			return ordinal.Epsilon0{}, nil
		}
	case ops.aEps:
		switch {
		case ops.b.IsZero():
			return ordinal.One(), nil
		case ops.b.IsOne():
			return ordinal.Epsilon0{}, nil
		default:
			return nil, &UnsupportedError{Op: "pow", Message: "e_0^x exceeds e_0 for x > 1"}
		}
	}

	return powCNF(ops.a, ops.b, m)
}

// powCNF implements CNF exponentiation. The case split follows the
// classical laws; the two absorption cases (finite^infinite and
// infinite^infinite) are where the non-trivial structure lives.
func powCNF(a, b *ordinal.CNF, m *budget.Meter) (*ordinal.CNF, error) {
	switch {
	case b.IsZero():
		return ordinal.One(), nil
	case a.IsZero():
		return ordinal.Zero(), nil
	case a.IsOne():
		return ordinal.One(), nil
	case b.IsOne():
		return a, nil
	}

	if a.IsFinite() && b.IsFinite() {
		return finitePow(a.FinitePart(), b.FinitePart(), m)
	}

	if a.IsFinite() {
		// k^(ω·ξ+r) = ω^ξ · k^r for finite k >= 2.
		xi, err := divideByOmega(b.LimitPart(), m)
		if err != nil {
			return nil, err
		}
		kr, err := finitePow(a.FinitePart(), b.FinitePart(), m)
		if err != nil {
			return nil, err
		}
		return ordinal.Monomial(xi, kr.FinitePart())
	}

	if b.IsFinite() {
		return infinitePowFinite(a, b.FinitePart(), m)
	}

	// Infinite base, infinite exponent: a^(B+r) = ω^(a₁·B) · a^r, where
	// a₁ is a's leading exponent; everything below it is absorbed.
	lead, _ := a.LeadingTerm()
	prodExp, err := mulCNF(lead.Exp, b.LimitPart(), m)
	if err != nil {
		return nil, err
	}
	aB, err := ordinal.Monomial(prodExp, big.NewInt(1))
	if err != nil {
		return nil, err
	}
	r := b.FinitePart()
	if r.Sign() == 0 {
		return aB, nil
	}
	ar, err := infinitePowFinite(a, r, m)
	if err != nil {
		return nil, err
	}
	return mulCNF(aB, ar, m)
}

// finitePow computes k^e for finite operands with exact big-integer
// exponentiation. The meter is charged proportionally to e before the
// multiplication happens, so oversized results trip the budget instead of
// exhausting memory.
func finitePow(k, e *big.Int, m *budget.Meter) (*ordinal.CNF, error) {
	if err := chargeBigCost(e, m); err != nil {
		return nil, err
	}
	return ordinal.FromBig(new(big.Int).Exp(k, e, nil))
}

// infinitePowFinite computes a^n for an infinite base and finite n >= 1.
// A single-term base has the closed form (ω^e·c)^n = ω^(e·n)·c; the
// coefficient is not exponentiated. Multi-term bases fall back to
// repeated multiplication, bounded by the meter.
func infinitePowFinite(a *ordinal.CNF, n *big.Int, m *budget.Meter) (*ordinal.CNF, error) {
	if a.Len() == 1 {
		lead, _ := a.LeadingTerm()
		nOrd, err := ordinal.FromBig(n)
		if err != nil {
			return nil, err
		}
		exp, err := mulCNF(lead.Exp, nOrd, m)
		if err != nil {
			return nil, err
		}
		return ordinal.Monomial(exp, lead.Coeff)
	}

	acc := a
	i := big.NewInt(1)
	for i.Cmp(n) < 0 {
		if err := m.Consume(1); err != nil {
			return nil, err
		}
		var err error
		acc, err = mulCNF(acc, a, m)
		if err != nil {
			return nil, err
		}
		i = new(big.Int).Add(i, bigIntOne)
	}
	return acc, nil
}

// ExponentPredecessor computes the predecessor of an exponent ordinal:
// n ↦ n−1 for finite n > 0, a successor loses its trailing unit, 0 and
// limit ordinals map to themselves (a limit has no predecessor).
func ExponentPredecessor(g *ordinal.CNF, m *budget.Meter) (*ordinal.CNF, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	if g.IsZero() || g.IsLimit() {
		return g, nil
	}

	// Successor: decrement the trailing exponent-0 term.
	terms := termsOf(g)
	last := len(terms) - 1
	terms[last].Coeff = new(big.Int).Sub(terms[last].Coeff, bigIntOne)
	return ordinal.FromTerms(terms)
}

// divideByOmega computes B/ω for a limit ordinal B by mapping every
// term's exponent through its predecessor.
func divideByOmega(b *ordinal.CNF, m *budget.Meter) (*ordinal.CNF, error) {
	terms := make([]ordinal.Term, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		t := b.At(i)
		pe, err := ExponentPredecessor(t.Exp, m)
		if err != nil {
			return nil, err
		}
		terms = append(terms, ordinal.Term{Exp: pe, Coeff: t.Coeff})
	}
	return ordinal.FromTerms(terms)
}

var bigIntOne = big.NewInt(1)
