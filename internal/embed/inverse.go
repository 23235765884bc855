package embed

import (
	"math"
	"math/big"

	"github.com/roach88/cantor/internal/arith"
	"github.com/roach88/cantor/internal/ordinal"
)

// baseTolerance is the equality threshold at recursion depth zero. Each
// descent into an exponent or remainder multiplies it by the local
// derivative of the forward formula, so deep reconstructions tolerate
// proportionally more float noise.
const baseTolerance = 1e-9

// towerCut is the height at which the inverse stops resolving power
// structure and snaps to a compact tower. Above f(ω↑↑towerCut) the bands
// between consecutive towers are too narrow for float64 to separate
// exponent, coefficient, and remainder reliably.
const towerCut = 5

// Inverse reconstructs an ordinal whose embedding is approximately x.
// Exact images round-trip to an equal ordinal; arbitrary points map to a
// nearby one. Inputs outside [0, Sup] fail with DomainError, and
// reconstructions nested deeper than the Mapper's depth cap fail with
// RegressionLimitError.
func (mp *Mapper) Inverse(x float64) (ordinal.Value, error) {
	return mp.inverse(x, baseTolerance, 0)
}

func (mp *Mapper) inverse(x, tol float64, depth int) (ordinal.Value, error) {
	if depth > mp.maxDepth {
		return nil, &RegressionLimitError{Depth: depth}
	}
	if err := mp.meter.Consume(1); err != nil {
		return nil, err
	}

	s := mp.scales
	sup := s.Sup()
	if math.IsNaN(x) || x < -tol || x > sup+tol {
		return nil, &DomainError{X: x, Sup: sup}
	}
	x = math.Max(0, math.Min(x, sup))

	// Exact region boundaries first.
	switch {
	case x <= tol:
		return ordinal.Zero(), nil
	case math.Abs(x-s.FOmega()) <= tol:
		return ordinal.Omega(), nil
	case math.Abs(x-s.FOmegaOmega()) <= tol:
		return omegaOmega(), nil
	case sup-x <= tol:
		return ordinal.Epsilon0{}, nil
	}

	// Finite region [0, 1): invert the ramp and round to the nearest
	// natural.
	if x < 1 {
		y := s.Add * x / (1 - x)
		n, _ := big.NewFloat(math.Round(y)).Int(nil)
		return ordinal.FromBig(n)
	}

	// Tower region [f(ω↑↑towerCut), Sup): walk the Möbius iterates up
	// from f(ω↑↑towerCut) and snap to whichever tower image is nearest.
	cut, err := mp.fTower(towerCut)
	if err != nil {
		return nil, err
	}
	if x >= cut {
		h := towerCut
		cur := cut
		for cur < x {
			if err := mp.meter.Consume(1); err != nil {
				return nil, err
			}
			next := s.mobius(cur)
			if next <= cur {
				// Float64 fixed point below x.
				break
			}
			if next >= x {
				if next-x <= x-cur {
					h++
				}
				break
			}
			cur = next
			h++
		}
		return ordinal.Tower{Height: h}, nil
	}

	// Everything else is ω^β·c+δ. Recover the exponent β first.
	var beta *ordinal.CNF
	if x < s.FOmegaOmega() {
		// Finite-exponent band: invert 1 + Exp·finite(j−1) and take the
		// largest j with f(ω^j) ≤ x.
		t := (x - 1) / s.Exp
		y := s.Add * t / (1 - t)
		beta = finiteExponent(y)
	} else {
		// Infinite-exponent band: undo the Möbius step and recurse on
		// f(β), widening the tolerance by the step's local derivative.
		y := math.Max(s.mobiusInv(x), s.FOmega())
		childTol := math.Max(tol, tol*s.mobiusInvDeriv(x))
		bv, err := mp.inverse(y, childTol, depth+1)
		if err != nil {
			return nil, err
		}
		beta, err = exponentCNF(bv, mp)
		if err != nil {
			return nil, err
		}
	}

	return mp.refine(x, beta, tol, depth)
}

// refine recovers the coefficient and remainder of ω^β·c+δ once the
// leading exponent β is fixed.
func (mp *Mapper) refine(x float64, beta *ordinal.CNF, tol float64, depth int) (ordinal.Value, error) {
	s := mp.scales

	fb, err := mp.fPow(beta)
	if err != nil {
		return nil, err
	}
	succ, err := successor(beta)
	if err != nil {
		return nil, err
	}
	fb1, err := mp.fPow(succ)
	if err != nil {
		return nil, err
	}
	span := fb1 - fb

	// Coefficient: invert the Mult ramp over [f(ω^β), f(ω^(β+1))).
	u := math.Max(0, (x-fb)/span)
	var yc float64
	if 1-u < 1e-12 {
		yc = 1e15
	} else {
		yc = math.Min(s.Mult*u/(1-u), 1e15)
	}
	c := int64(math.Floor(yc+1e-9)) + 1

	base, err := ordinal.Monomial(beta, big.NewInt(c))
	if err != nil {
		return nil, err
	}

	fbc := fb + span*s.coeff(float64(c-1))
	fbc1 := fb + span*s.coeff(float64(c))
	resSpan := fbc1 - fbc
	if resSpan <= 0 {
		return base, nil
	}

	// Remainder: the residual in f-space, rescaled back into the range
	// of f over ordinals below ω^β.
	amp := fb / resSpan
	fd := (x - fbc) * amp
	if fd <= tol*amp {
		return base, nil
	}
	delta, err := mp.inverse(fd, tol*amp, depth+1)
	if err != nil {
		return nil, err
	}
	return arith.Add(base, delta, mp.meter)
}

// finiteExponent turns the real-valued ramp inverse y into the largest
// finite exponent j ≥ 1 with f(ω^j) ≤ x, as a CNF value.
func finiteExponent(y float64) *ordinal.CNF {
	j := int64(math.Floor(y+1e-9)) + 1
	if j < 1 {
		j = 1
	}
	e, err := ordinal.FromInt64(j)
	if err != nil {
		// j ≥ 1 by construction.
		panic(err)
	}
	return e
}

// exponentCNF coerces a recursively inverted exponent into CNF form.
// ε₀ cannot appear here: the Möbius preimage of the searched band stays
// strictly below Sup.
func exponentCNF(v ordinal.Value, mp *Mapper) (*ordinal.CNF, error) {
	switch val := v.(type) {
	case *ordinal.CNF:
		return val, nil
	case ordinal.Tower:
		return ordinal.TowerCNF(val.Height, mp.meter)
	default:
		return nil, &ordinal.InvariantError{Message: "inverse exponent escaped the CNF range"}
	}
}

// omegaOmega is ω^ω.
func omegaOmega() *ordinal.CNF {
	v, err := ordinal.Monomial(ordinal.Omega(), bigIntOne)
	if err != nil {
		panic(err)
	}
	return v
}
