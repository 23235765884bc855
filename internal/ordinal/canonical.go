package ordinal

import (
	"fmt"
	"strings"
)

// String renders the canonical CNF form: "0" for zero, "w" for ω, powers
// as "w^E" with parentheses when E is a sum or a non-trivial power,
// coefficients > 1 as a "*c" suffix, terms joined with "+".
//
// The rendering is canonical: equal values always render identically, so
// the string doubles as a cache/hash key.
func (c *CNF) String() string {
	if len(c.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range c.terms {
		if i > 0 {
			sb.WriteByte('+')
		}
		if t.Exp.IsZero() {
			sb.WriteString(t.Coeff.String())
			continue
		}
		if t.Exp.IsOne() {
			sb.WriteByte('w')
		} else if exponentNeedsParens(t.Exp) {
			sb.WriteString("w^(")
			sb.WriteString(t.Exp.String())
			sb.WriteByte(')')
		} else {
			sb.WriteString("w^")
			sb.WriteString(t.Exp.String())
		}
		if t.Coeff.Cmp(bigOne) != 0 {
			sb.WriteByte('*')
			sb.WriteString(t.Coeff.String())
		}
	}
	return sb.String()
}

// exponentNeedsParens reports whether an exponent must be parenthesized:
// sums, coefficients, and nested non-ω powers all need them. Bare
// integers and plain ω do not.
func exponentNeedsParens(exp *CNF) bool {
	return !exp.IsFinite() && !exp.IsOmega()
}

// String renders the ε₀ sentinel.
func (Epsilon0) String() string { return "e_0" }

// String renders an ω-tower as "w^^h".
func (t Tower) String() string { return fmt.Sprintf("w^^%d", t.Height) }
