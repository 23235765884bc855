package embed

import (
	"fmt"
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// DefaultMaxDepth bounds the recursion of the numeric inverse.
const DefaultMaxDepth = 48

// Mapper evaluates the embedding f and its numeric inverse. It owns a
// memo cache keyed by canonical rendering, scoped to one calculation:
// callers create a fresh Mapper per evaluation so cache growth is
// bounded by the values that evaluation touches.
//
// A Mapper is not safe for concurrent use.
type Mapper struct {
	scales   Scales
	meter    *budget.Meter
	memo     map[string]float64
	maxDepth int
}

// NewMapper constructs a Mapper over the given scales. maxDepth bounds
// inverse recursion; values < 1 select DefaultMaxDepth.
func NewMapper(s Scales, maxDepth int, m *budget.Meter) (*Mapper, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &Mapper{
		scales:   s,
		meter:    m,
		memo:     make(map[string]float64),
		maxDepth: maxDepth,
	}, nil
}

// Scales returns the constants the Mapper was built with.
func (mp *Mapper) Scales() Scales { return mp.scales }

// F evaluates the embedding at v. Strictly increasing: α < β implies
// F(α) < F(β). Finite values land in [0, 1), everything below ε₀ in
// [0, Sup), and F(ε₀) = Sup exactly.
//
// Each uncached evaluation charges one budget unit.
func (mp *Mapper) F(v ordinal.Value) (float64, error) {
	key := v.String()
	if x, ok := mp.memo[key]; ok {
		return x, nil
	}
	if err := mp.meter.Consume(1); err != nil {
		return 0, err
	}

	x, err := mp.eval(v)
	if err != nil {
		return 0, err
	}
	mp.memo[key] = x
	return x, nil
}

func (mp *Mapper) eval(v ordinal.Value) (float64, error) {
	s := mp.scales
	switch val := v.(type) {
	case ordinal.Epsilon0:
		return s.Sup(), nil

	case ordinal.Tower:
		switch {
		case val.Height < 0:
			return 0, &ordinal.InvariantError{Message: fmt.Sprintf("negative tower height %d", val.Height)}
		case val.Height == 0:
			// ω↑↑0 = 1.
			return s.finite(1), nil
		default:
			return mp.fTower(val.Height)
		}

	case *ordinal.CNF:
		if n, ok := val.FiniteValue(); ok {
			return s.finiteBig(n), nil
		}
		lead, _ := val.LeadingTerm()
		fb, err := mp.fPow(lead.Exp)
		if err != nil {
			return 0, err
		}
		succ, err := successor(lead.Exp)
		if err != nil {
			return 0, err
		}
		fb1, err := mp.fPow(succ)
		if err != nil {
			return 0, err
		}

		// Coefficient c slides from f(ω^β) toward f(ω^(β+1)).
		span := fb1 - fb
		cm1 := new(big.Int).Sub(lead.Coeff, bigIntOne)
		fbc := fb + span*s.coeffBig(cm1)

		rest := val.Rest()
		if rest.IsZero() {
			return fbc, nil
		}
		// The remainder δ < ω^β slides from f(ω^β·c) toward
		// f(ω^β·(c+1)) in proportion to f(δ)/f(ω^β).
		fbc1 := fb + span*s.coeffBig(lead.Coeff)
		fd, err := mp.F(rest)
		if err != nil {
			return 0, err
		}
		return fbc + (fbc1-fbc)*fd/fb, nil

	default:
		return 0, &ordinal.InvariantError{Message: fmt.Sprintf("unknown ordinal variant %T in embedding", v)}
	}
}

// fPow evaluates f(ω^e). Finite exponents j walk the band
// [1, FOmegaOmega) via 1 + Exp·finite(j−1); infinite exponents apply
// the Möbius step to f(e).
func (mp *Mapper) fPow(e *ordinal.CNF) (float64, error) {
	if n, ok := e.FiniteValue(); ok {
		if n.Sign() == 0 {
			// ω^0 = 1.
			return mp.scales.finite(1), nil
		}
		nm1 := new(big.Int).Sub(n, bigIntOne)
		return 1 + mp.scales.Exp*mp.scales.finiteBig(nm1), nil
	}
	fk, err := mp.F(e)
	if err != nil {
		return 0, err
	}
	return mp.scales.mobius(fk), nil
}

// fTower evaluates f(ω↑↑h) for h ≥ 1 by iterating the Möbius step up
// from f(ω), the same recurrence fPow applies one level at a time. The
// iterates climb toward Sup, its fixed point. One budget unit per level,
// so very tall towers are bounded by the meter.
func (mp *Mapper) fTower(h int) (float64, error) {
	s := mp.scales
	x := s.FOmega()
	for i := 1; i < h; i++ {
		if err := mp.meter.Consume(1); err != nil {
			return 0, err
		}
		next := s.mobius(x)
		if next <= x {
			// Float64 fixed point: taller towers are indistinguishable.
			return x, nil
		}
		x = next
	}
	return x, nil
}

// successor returns e+1.
func successor(e *ordinal.CNF) (*ordinal.CNF, error) {
	terms := make([]ordinal.Term, 0, e.Len()+1)
	for i := 0; i < e.Len(); i++ {
		terms = append(terms, e.At(i))
	}
	terms = append(terms, ordinal.Term{Exp: ordinal.Zero(), Coeff: bigIntOne})
	return ordinal.FromTerms(terms)
}

var bigIntOne = big.NewInt(1)
