// Package simplify measures the structural complexity of ordinal values
// and produces human-scale approximations bounded by a complexity budget.
package simplify

import (
	"fmt"
	"math/big"

	"github.com/roach88/cantor/internal/ordinal"
)

// Cost computes the structural complexity g(α): roughly the number of
// glyphs a reader has to absorb. Finite values cost their decimal digit
// count, ω costs 1, each power wrapper and coefficient adds its overhead,
// and a "+" separator costs 1 per joint.
//
//	g(0)=0  g(n)=digits(n)  g(ω)=1  g(ω·m)=g(m)+2
//	g(ω^a)=g(a)+4  g(ω^a·m)=g(a)+g(m)+5  g(ε₀)=3  g(ω↑↑m)=digits(m)+3
func Cost(v ordinal.Value) int {
	switch val := v.(type) {
	case ordinal.Epsilon0:
		return 3
	case ordinal.Tower:
		if val.Height < 0 {
			panic(fmt.Sprintf("negative tower height: %d", val.Height))
		}
		return digitsInt(val.Height) + 3
	case *ordinal.CNF:
		if val.IsZero() {
			return 0
		}
		total := val.Len() - 1 // "+" separators
		for i := 0; i < val.Len(); i++ {
			total += termCost(val.At(i))
		}
		return total
	default:
		panic(fmt.Sprintf("unknown ordinal variant: %T", v))
	}
}

// termCost computes g for a single ω^Exp·Coeff summand.
func termCost(t ordinal.Term) int {
	unit := t.Coeff.Cmp(big.NewInt(1)) == 0
	switch {
	case t.Exp.IsZero():
		return digits(t.Coeff)
	case t.Exp.IsOne() && unit:
		return 1 // ω
	case t.Exp.IsOne():
		return digits(t.Coeff) + 2 // ω·m
	case unit:
		return Cost(t.Exp) + 4 // ω^a
	default:
		return Cost(t.Exp) + digits(t.Coeff) + 5 // ω^a·m
	}
}

func digits(n *big.Int) int {
	return len(n.Text(10))
}

func digitsInt(n int) int {
	return len(fmt.Sprintf("%d", n))
}
