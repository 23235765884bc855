// Package embed maps ordinals in [0, ε₀] into a bounded real interval via
// a strictly increasing function f, and numerically inverts it.
//
// The shape of f follows a fixed ladder: finite values fill [0, 1), powers
// ω^j with finite j fill [1, f(ω^ω)), powers with infinite exponents climb
// a Möbius iteration toward the supremum U = f(ε₀), and coefficients and
// remainders interpolate linearly between consecutive powers. Every
// interpolation is increasing by construction, which is what makes
// α < β ⇒ f(α) < f(β) hold globally.
package embed

import (
	"fmt"
	"math/big"
)

// Scales holds the positive constants that shape f, one per operator
// level. The defaults reproduce the reference curve with f(ω)=1,
// f(ω^ω)=3 and f(ε₀)=5.
type Scales struct {
	Add  float64 // finite ramp: f(n) = n/(n+Add)
	Mult float64 // coefficient ramp between consecutive powers
	Exp  float64 // width of the finite-exponent power band
	Tet  float64 // width of the tower band below the supremum
}

// DefaultScales returns the reference constants {1, 1, 2, 2}.
func DefaultScales() Scales {
	return Scales{Add: 1, Mult: 1, Exp: 2, Tet: 2}
}

// Validate rejects non-positive constants.
func (s Scales) Validate() error {
	if s.Add <= 0 || s.Mult <= 0 || s.Exp <= 0 || s.Tet <= 0 {
		return fmt.Errorf("embedding scales must all be positive, got %+v", s)
	}
	return nil
}

// FOmega is f(ω), the supremum of the finite ramp.
func (s Scales) FOmega() float64 { return 1 }

// FOmegaOmega is f(ω^ω), the supremum of the finite-exponent power band.
func (s Scales) FOmegaOmega() float64 { return 1 + s.Exp }

// Sup is U = f(ε₀), the supremum of the whole embedding.
func (s Scales) Sup() float64 { return 1 + s.Exp + s.Tet }

// mobiusB and mobiusA derive the coefficients of the infinite-exponent
// step f(ω^k) = (A − f(k))/(B − f(k)). They are fixed by two conditions:
// the map must hold U as its fixed point (so towers converge to ε₀) and
// must send f(ω) to f(ω^ω) (so the band joins the finite-exponent ladder
// continuously). For the default scales this yields A=25, B=9.
func (s Scales) mobiusB() float64 {
	u := s.Sup()
	return (u*(u-1) - s.Exp) / s.Tet
}

func (s Scales) mobiusA() float64 {
	u := s.Sup()
	return u * (s.mobiusB() - u + 1)
}

// mobius applies the infinite-exponent step to a value in [FOmega, Sup).
func (s Scales) mobius(x float64) float64 {
	return (s.mobiusA() - x) / (s.mobiusB() - x)
}

// mobiusInv inverts the step: given f(ω^k), recover f(k).
func (s Scales) mobiusInv(y float64) float64 {
	return (s.mobiusB()*y - s.mobiusA()) / (y - 1)
}

// mobiusInvDeriv is the magnitude of d(mobiusInv)/dx at x, used to
// amplify the error threshold when recursing on the exponent.
func (s Scales) mobiusInvDeriv(x float64) float64 {
	d := x - 1
	return (s.mobiusA() - s.mobiusB()) / (d * d)
}

// finite is the ramp n ↦ n/(n+Add) filling [0, 1) with the naturals.
func (s Scales) finite(x float64) float64 {
	return x / (x + s.Add)
}

// finiteBig is finite for arbitrary-precision naturals.
func (s Scales) finiteBig(n *big.Int) float64 {
	if n.Sign() <= 0 {
		return 0
	}
	x := new(big.Float).SetInt(n)
	den := new(big.Float).Add(x, big.NewFloat(s.Add))
	f, _ := new(big.Float).Quo(x, den).Float64()
	return f
}

// coeff is the ramp interpolating coefficients between consecutive
// powers: c ↦ (c−1)/((c−1)+Mult) applied to c−1.
func (s Scales) coeff(x float64) float64 {
	return x / (x + s.Mult)
}

// coeffBig is coeff for arbitrary-precision coefficients.
func (s Scales) coeffBig(n *big.Int) float64 {
	if n.Sign() <= 0 {
		return 0
	}
	x := new(big.Float).SetInt(n)
	den := new(big.Float).Add(x, big.NewFloat(s.Mult))
	f, _ := new(big.Float).Quo(x, den).Float64()
	return f
}
