package arith

import (
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// Mul computes the ordinal product a·b by right-distributing a over b's
// terms. Only a's leading exponent survives multiplication by an infinite
// term; a finite right factor scales only a's leading coefficient:
// (ω^a·c+R)·k = ω^a·(c·k)+R.
func Mul(a, b ordinal.Value, m *budget.Meter) (ordinal.Value, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	ops, err := splitOperands(a, b, m)
	if err != nil {
		return nil, err
	}

	switch {
	case ops.aEps && ops.bEps:
		return nil, &UnsupportedError{Op: "mul", Message: "e_0*e_0 exceeds e_0"}
	case ops.bEps:
		if ops.a.IsZero() {
			return ordinal.Zero(), nil
		}
		// x * e_0 = e_0 for every 1 <= x < e_0.
		return ordinal.Epsilon0{}, nil
	case ops.aEps:
		if ops.b.IsZero() {
			return ordinal.Zero(), nil
		}
		if ops.b.IsOne() {
			return ordinal.Epsilon0{}, nil
		}
		return nil, &UnsupportedError{Op: "mul", Message: "e_0*x exceeds e_0 for x > 1"}
	}

	return mulCNF(ops.a, ops.b, m)
}

// mulCNF implements CNF multiplication.
func mulCNF(a, b *ordinal.CNF, m *budget.Meter) (*ordinal.CNF, error) {
	if a.IsZero() || b.IsZero() {
		return ordinal.Zero(), nil
	}
	if b.IsOne() {
		return a, nil
	}
	if a.IsOne() {
		return b, nil
	}

	acc := ordinal.Zero()
	for i := 0; i < b.Len(); i++ {
		if err := m.Consume(1); err != nil {
			return nil, err
		}
		prod, err := mulTerm(a, b.At(i), m)
		if err != nil {
			return nil, err
		}
		acc, err = addCNF(acc, prod, m)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// mulTerm computes a · ω^t.Exp·t.Coeff for a single term of the right
// operand.
func mulTerm(a *ordinal.CNF, t ordinal.Term, m *budget.Meter) (*ordinal.CNF, error) {
	if !t.Exp.IsZero() {
		// Infinite term: a finite a contributes nothing but existence,
		// an infinite a contributes only its leading exponent.
		if a.IsFinite() {
			return ordinal.Monomial(t.Exp, t.Coeff)
		}
		lead, _ := a.LeadingTerm()
		exp, err := addCNF(lead.Exp, t.Exp, m)
		if err != nil {
			return nil, err
		}
		return ordinal.Monomial(exp, t.Coeff)
	}

	// Finite term k > 0.
	if a.IsFinite() {
		return ordinal.FromBig(new(big.Int).Mul(a.FinitePart(), t.Coeff))
	}
	terms := termsOf(a)
	terms[0].Coeff = new(big.Int).Mul(terms[0].Coeff, t.Coeff)
	return ordinal.FromTerms(terms)
}
