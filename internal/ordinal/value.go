package ordinal

import (
	"fmt"
	"math/big"
	"slices"
)

// Value is a sealed interface over the three ordinal variants.
// Only *CNF, Epsilon0, and Tower implement it.
type Value interface {
	fmt.Stringer
	ordinalValue() // Sealed - only these types implement it
}

// Term is one ω^Exp·Coeff summand of a CNF value.
// Not meaningful outside the CNF it belongs to.
type Term struct {
	Exp   *CNF     // Exponent ordinal; Zero() for the finite part
	Coeff *big.Int // Strictly positive
}

// CNF is an ordinal below ε₀ in Cantor Normal Form: Σ ω^Exp_i · Coeff_i
// with strictly decreasing exponents. The empty term list is 0.
type CNF struct {
	terms []Term
}

func (*CNF) ordinalValue() {}

// Epsilon0 is the ε₀ sentinel. Always infinite, maximal in the order;
// arithmetic with it is limited to a small closed identity set.
type Epsilon0 struct{}

func (Epsilon0) ordinalValue() {}

// Tower is the compact representation of ω↑↑Height.
// Height 0 is 1, height 1 is ω, height 2 is ω^ω, and so on.
// Height must be non-negative; use NewTower to construct checked values.
type Tower struct {
	Height int
}

func (Tower) ordinalValue() {}

// NewTower constructs ω↑↑height, rejecting negative heights.
func NewTower(height int) (Tower, error) {
	if height < 0 {
		return Tower{}, &InvariantError{Message: fmt.Sprintf("tower height must be non-negative, got %d", height)}
	}
	return Tower{Height: height}, nil
}

var (
	zero  = &CNF{}
	one   = &CNF{terms: []Term{{Exp: zero, Coeff: big.NewInt(1)}}}
	omega = &CNF{terms: []Term{{Exp: one, Coeff: big.NewInt(1)}}}
)

// Zero returns the ordinal 0. The returned value is shared; it is immutable.
func Zero() *CNF { return zero }

// One returns the ordinal 1.
func One() *CNF { return one }

// Omega returns ω, the smallest infinite ordinal.
func Omega() *CNF { return omega }

// FromInt64 constructs a finite ordinal from a non-negative integer.
func FromInt64(n int64) (*CNF, error) {
	if n < 0 {
		return nil, &InvariantError{Message: fmt.Sprintf("finite ordinal must be non-negative, got %d", n)}
	}
	return FromBig(big.NewInt(n))
}

// FromBig constructs a finite ordinal from a non-negative big integer.
// The input is copied, so the caller may keep mutating it.
func FromBig(n *big.Int) (*CNF, error) {
	if n == nil || n.Sign() < 0 {
		return nil, &InvariantError{Message: fmt.Sprintf("finite ordinal must be non-negative, got %v", n)}
	}
	if n.Sign() == 0 {
		return zero, nil
	}
	return &CNF{terms: []Term{{Exp: zero, Coeff: new(big.Int).Set(n)}}}, nil
}

// Monomial constructs ω^exp · coeff. A zero coefficient yields 0.
func Monomial(exp *CNF, coeff *big.Int) (*CNF, error) {
	if exp == nil {
		return nil, &InvariantError{Message: "monomial exponent must not be nil"}
	}
	if coeff == nil || coeff.Sign() < 0 {
		return nil, &InvariantError{Message: fmt.Sprintf("monomial coefficient must be non-negative, got %v", coeff)}
	}
	if coeff.Sign() == 0 {
		return zero, nil
	}
	return &CNF{terms: []Term{{Exp: exp, Coeff: new(big.Int).Set(coeff)}}}, nil
}

// FromTerms constructs a CNF value from an arbitrary term sequence,
// normalizing it: zero-coefficient terms are dropped, terms are sorted
// by strictly descending exponent, and terms with equal exponents are
// merged by summing coefficients.
//
// Negative coefficients and nil exponents are rejected with InvariantError:
// they cannot arise through the public API and indicate a caller bug.
func FromTerms(terms []Term) (*CNF, error) {
	kept := make([]Term, 0, len(terms))
	for i, t := range terms {
		if t.Exp == nil {
			return nil, &InvariantError{Message: fmt.Sprintf("term %d: nil exponent", i)}
		}
		if t.Coeff == nil || t.Coeff.Sign() < 0 {
			return nil, &InvariantError{Message: fmt.Sprintf("term %d: coefficient must be non-negative, got %v", i, t.Coeff)}
		}
		if t.Coeff.Sign() == 0 {
			continue
		}
		kept = append(kept, Term{Exp: t.Exp, Coeff: new(big.Int).Set(t.Coeff)})
	}

	// Descending by exponent. The sort is stable so that merging below
	// sums coefficients in the caller's order.
	slices.SortStableFunc(kept, func(a, b Term) int {
		return compareCNF(b.Exp, a.Exp)
	})

	merged := make([]Term, 0, len(kept))
	for _, t := range kept {
		if n := len(merged); n > 0 && compareCNF(merged[n-1].Exp, t.Exp) == 0 {
			merged[n-1].Coeff = new(big.Int).Add(merged[n-1].Coeff, t.Coeff)
			continue
		}
		merged = append(merged, t)
	}

	if len(merged) == 0 {
		return zero, nil
	}
	return &CNF{terms: merged}, nil
}

// Clone returns a value equal to v. Term slices and coefficients are
// copied; exponent subtrees are shared, which is safe because values are
// immutable.
func Clone(v Value) Value {
	switch val := v.(type) {
	case *CNF:
		if len(val.terms) == 0 {
			return zero
		}
		terms := make([]Term, len(val.terms))
		for i, t := range val.terms {
			terms[i] = Term{Exp: t.Exp, Coeff: new(big.Int).Set(t.Coeff)}
		}
		return &CNF{terms: terms}
	case Epsilon0:
		return Epsilon0{}
	case Tower:
		return Tower{Height: val.Height}
	default:
		panic(fmt.Sprintf("unknown ordinal variant: %T", v))
	}
}

// Len returns the number of CNF terms.
func (c *CNF) Len() int { return len(c.terms) }

// At returns the i-th term in descending exponent order.
// The caller must not modify the returned coefficient.
func (c *CNF) At(i int) Term { return c.terms[i] }

// IsZero reports whether the value is 0.
func (c *CNF) IsZero() bool { return len(c.terms) == 0 }

// IsFinite reports whether the value is a natural number (including 0).
func (c *CNF) IsFinite() bool {
	return len(c.terms) == 0 || (len(c.terms) == 1 && c.terms[0].Exp.IsZero())
}

// IsLimit reports whether the value is a limit ordinal: infinite with no
// trailing finite part.
func (c *CNF) IsLimit() bool {
	if c.IsZero() || c.IsFinite() {
		return false
	}
	return !c.terms[len(c.terms)-1].Exp.IsZero()
}

// IsSuccessor reports whether the value has an immediate predecessor:
// its trailing term has exponent 0.
func (c *CNF) IsSuccessor() bool {
	return len(c.terms) > 0 && c.terms[len(c.terms)-1].Exp.IsZero()
}

// IsOmega reports whether the value is exactly ω.
func (c *CNF) IsOmega() bool {
	return len(c.terms) == 1 &&
		c.terms[0].Exp.IsOne() &&
		c.terms[0].Coeff.Cmp(bigOne) == 0
}

// IsOne reports whether the value is exactly 1.
func (c *CNF) IsOne() bool {
	return len(c.terms) == 1 && c.terms[0].Exp.IsZero() && c.terms[0].Coeff.Cmp(bigOne) == 0
}

// FinitePart returns the trailing exponent-0 coefficient, or 0 if the
// value has no finite part. The result is a fresh big.Int.
func (c *CNF) FinitePart() *big.Int {
	if n := len(c.terms); n > 0 && c.terms[n-1].Exp.IsZero() {
		return new(big.Int).Set(c.terms[n-1].Coeff)
	}
	return new(big.Int)
}

// LimitPart returns the value with its finite part removed: all terms
// with exponent > 0.
func (c *CNF) LimitPart() *CNF {
	n := len(c.terms)
	if n == 0 || !c.terms[n-1].Exp.IsZero() {
		return c
	}
	if n == 1 {
		return zero
	}
	return &CNF{terms: c.terms[:n-1]}
}

// LeadingTerm returns the highest-exponent term.
// ok is false for 0, which has no terms.
func (c *CNF) LeadingTerm() (Term, bool) {
	if len(c.terms) == 0 {
		return Term{}, false
	}
	return c.terms[0], true
}

// Rest returns the tail after the leading term.
func (c *CNF) Rest() *CNF {
	if len(c.terms) <= 1 {
		return zero
	}
	return &CNF{terms: c.terms[1:]}
}

// FiniteValue returns the value as a big integer if it is finite.
func (c *CNF) FiniteValue() (*big.Int, bool) {
	if !c.IsFinite() {
		return nil, false
	}
	return c.FinitePart(), true
}

var bigOne = big.NewInt(1)
