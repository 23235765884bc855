package simplify

import (
	"math"
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// Simplify returns the ordinally largest value v' <= v with
// Cost(v') <= costBudget that a bounded search can find. It is an
// approximator, not an exhaustive optimizer: the search walks terms in
// descending order, recursively simplifies exponents, and stops at the
// first term it had to alter.
//
// Invariants: the result never exceeds v in the ordinal order, and its
// complexity never exceeds the budget (0 always fits, since g(0)=0).
//
// The ω-tower fallback — collapsing a value whose leading exponent is too
// deep to render into a compact ω↑↑h — applies only at the top level;
// exponents inside a CNF stay CNF.
func Simplify(v ordinal.Value, costBudget int, m *budget.Meter) (ordinal.Value, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	if costBudget < 0 {
		costBudget = 0
	}
	if Cost(v) <= costBudget {
		return v, nil
	}

	switch val := v.(type) {
	case ordinal.Epsilon0:
		// Below g(ε₀)=3 the largest representable values are ω (1 unit)
		// and small naturals; ω wins.
		if costBudget >= 1 {
			return ordinal.Omega(), nil
		}
		return ordinal.Zero(), nil

	case ordinal.Tower:
		if val.Height == 0 {
			// ω↑↑0 is the value 1, cheaper as a plain numeral.
			if costBudget >= 1 {
				return ordinal.One(), nil
			}
			return ordinal.Zero(), nil
		}
		if h := maxTowerHeight(costBudget); h >= 1 {
			return ordinal.Tower{Height: min(val.Height, h)}, nil
		}
		if costBudget >= 1 {
			return ordinal.Omega(), nil
		}
		return ordinal.Zero(), nil

	case *ordinal.CNF:
		if val.IsFinite() {
			return truncateFinite(val, costBudget)
		}
		lead, _ := val.LeadingTerm()
		depth, skel := skeleton(lead.Exp)
		skelMono, err := ordinal.Monomial(skel, big.NewInt(1))
		if err != nil {
			return nil, err
		}
		if Cost(skelMono) > costBudget {
			// Even the bare power-tower shape of the leading exponent is
			// too expensive; a compact tower of matching depth is the
			// only way to stay large.
			tw := ordinal.Tower{Height: depth + 1}
			if Cost(tw) <= costBudget {
				return tw, nil
			}
			return ordinal.Zero(), nil
		}
		return simplifyCNF(val, costBudget, m)

	default:
		return nil, &ordinal.InvariantError{Message: "unknown ordinal variant in simplify"}
	}
}

// simplifyCNF is the CNF-only bounded search used for top-level values
// past the tower check and for exponent recursion.
func simplifyCNF(v *ordinal.CNF, costBudget int, m *budget.Meter) (*ordinal.CNF, error) {
	if err := m.Consume(1); err != nil {
		return nil, err
	}
	if Cost(v) <= costBudget {
		return v, nil
	}
	if v.IsFinite() {
		return truncateFinite(v, costBudget)
	}

	var kept []ordinal.Term
	remaining := costBudget
	for i := 0; i < v.Len(); i++ {
		t := v.At(i)
		sep := 0
		if len(kept) > 0 {
			sep = 1
		}
		tb := remaining - sep
		if tb <= 0 {
			break
		}

		if t.Exp.IsZero() {
			// Trailing finite part.
			if digits(t.Coeff) <= tb {
				kept = append(kept, t)
			} else {
				kept = append(kept, ordinal.Term{Exp: ordinal.Zero(), Coeff: allNines(tb)})
			}
			break // exponent-0 term is always last
		}

		// Cheapest keepable form of this term: original exponent, unit
		// coefficient.
		minKeep := termCost(ordinal.Term{Exp: t.Exp, Coeff: big.NewInt(1)})
		if minKeep > tb {
			// Exponent itself must shrink; a reduced term ends the search.
			se, err := simplifyCNF(t.Exp, max(tb-4, 0), m)
			if err != nil {
				return nil, err
			}
			kept = append(kept, ordinal.Term{Exp: se, Coeff: big.NewInt(1)})
			break
		}

		full := termCost(t)
		if full <= tb {
			kept = append(kept, t)
			remaining -= sep + full
			continue
		}
		// Exponent fits but the coefficient does not: drop it and stop.
		kept = append(kept, ordinal.Term{Exp: t.Exp, Coeff: big.NewInt(1)})
		break
	}

	candidate, err := ordinal.FromTerms(kept)
	if err != nil {
		return nil, err
	}
	if Cost(candidate) <= costBudget && ordinal.CompareCNF(candidate, v) <= 0 {
		return candidate, nil
	}
	if len(kept) > 0 {
		leadOnly, err := ordinal.FromTerms(kept[:1])
		if err != nil {
			return nil, err
		}
		if Cost(leadOnly) <= costBudget && ordinal.CompareCNF(leadOnly, v) <= 0 {
			return leadOnly, nil
		}
	}
	return ordinal.Zero(), nil
}

// skeleton extracts the pure ω-power chain of an exponent, discarding
// coefficients and remainders: ω^(ω^(…^F)) with innermost finite F.
// Returns the chain depth and the chain itself.
func skeleton(exp *ordinal.CNF) (int, *ordinal.CNF) {
	if exp.IsFinite() {
		return 0, exp
	}
	lead, _ := exp.LeadingTerm()
	d, inner := skeleton(lead.Exp)
	mono, err := ordinal.Monomial(inner, big.NewInt(1))
	if err != nil {
		// Monomial on a valid CNF exponent cannot fail.
		panic(err)
	}
	return d + 1, mono
}

// truncateFinite shrinks a finite value to the largest natural whose
// digit count fits the budget.
func truncateFinite(v *ordinal.CNF, costBudget int) (*ordinal.CNF, error) {
	if costBudget <= 0 {
		return ordinal.Zero(), nil
	}
	return ordinal.FromBig(allNines(costBudget))
}

// allNines returns 10^k − 1, the largest k-digit natural.
func allNines(k int) *big.Int {
	n := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	return n.Sub(n, big.NewInt(1))
}

// maxTowerHeight returns the tallest tower height renderable within the
// budget (g(ω↑↑h) = digits(h)+3), or 0 if none fits.
func maxTowerHeight(costBudget int) int {
	d := costBudget - 3
	if d <= 0 {
		return 0
	}
	if d >= 10 {
		return math.MaxInt32
	}
	h := 1
	for i := 0; i < d; i++ {
		h *= 10
	}
	return h - 1
}
