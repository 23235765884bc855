package arith

import (
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// Add computes the ordinal sum a+b. Ordinal addition is not commutative:
// any low-order tail of a vanishes against a b whose leading exponent is
// at least as large (1+ω = ω, but ω+1 ≠ ω).
func Add(a, b ordinal.Value, m *budget.Meter) (ordinal.Value, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	ops, err := splitOperands(a, b, m)
	if err != nil {
		return nil, err
	}

	switch {
	case ops.aEps && ops.bEps:
		return nil, &UnsupportedError{Op: "add", Message: "e_0+e_0 exceeds e_0"}
	case ops.bEps:
		// x + e_0 = e_0 for every x < e_0.
		return ordinal.Epsilon0{}, nil
	case ops.aEps:
		if ops.b.IsZero() {
			return ordinal.Epsilon0{}, nil
		}
		return nil, &UnsupportedError{Op: "add", Message: "e_0+x exceeds e_0 for x > 0"}
	}

	return addCNF(ops.a, ops.b, m)
}

// addCNF implements CNF addition.
func addCNF(a, b *ordinal.CNF, m *budget.Meter) (*ordinal.CNF, error) {
	if b.IsZero() {
		return a, nil
	}
	if a.IsZero() {
		return b, nil
	}

	if b.IsFinite() {
		// Merge b into a's trailing finite part. FromTerms sums the two
		// exponent-0 terms during normalization.
		if err := m.Consume(1); err != nil {
			return nil, err
		}
		terms := append(termsOf(a), ordinal.Term{Exp: ordinal.Zero(), Coeff: b.FinitePart()})
		return ordinal.FromTerms(terms)
	}
	if a.IsFinite() {
		// A finite left operand is absorbed by an infinite right one.
		return b, nil
	}

	// Both infinite: terms of a above b's leading exponent survive, the
	// rest of a is absorbed.
	lead, _ := b.LeadingTerm()
	j := 0
	for j < a.Len() {
		if err := m.Consume(1); err != nil {
			return nil, err
		}
		if ordinal.CompareCNF(a.At(j).Exp, lead.Exp) <= 0 {
			break
		}
		j++
	}

	terms := make([]ordinal.Term, 0, j+b.Len())
	for i := 0; i < j; i++ {
		terms = append(terms, a.At(i))
	}
	if j < a.Len() && ordinal.CompareCNF(a.At(j).Exp, lead.Exp) == 0 {
		merged := new(big.Int).Add(a.At(j).Coeff, lead.Coeff)
		terms = append(terms, ordinal.Term{Exp: lead.Exp, Coeff: merged})
		for i := 1; i < b.Len(); i++ {
			terms = append(terms, b.At(i))
		}
	} else {
		terms = append(terms, termsOf(b)...)
	}
	return ordinal.FromTerms(terms)
}
