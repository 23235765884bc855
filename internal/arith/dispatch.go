package arith

import (
	"math/big"

	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// ToCNF expands a value into Cantor Normal Form. Towers are expanded by
// tetrating ω to the height, charging the meter proportionally; ε₀ has no
// CNF form and is rejected.
func ToCNF(v ordinal.Value, m *budget.Meter) (*ordinal.CNF, error) {
	switch val := v.(type) {
	case *ordinal.CNF:
		return val, nil
	case ordinal.Tower:
		h, err := ordinal.FromInt64(int64(val.Height))
		if err != nil {
			return nil, err
		}
		res, err := Tetrate(ordinal.Omega(), h, m)
		if err != nil {
			return nil, err
		}
		cnf, ok := res.(*ordinal.CNF)
		if !ok {
			// ω↑↑h for finite h is always below ε₀.
			return nil, &ordinal.InvariantError{Message: "tower expansion did not yield CNF"}
		}
		return cnf, nil
	case ordinal.Epsilon0:
		return nil, &UnsupportedError{Op: "expand", Message: "e_0 has no Cantor Normal Form below e_0"}
	default:
		return nil, &ordinal.InvariantError{Message: "unknown ordinal variant"}
	}
}

// operands expands towers and classifies the ε₀ operands in one place so
// that the four operations share identical dispatch.
type operands struct {
	a, b       *ordinal.CNF // nil when the corresponding side is ε₀
	aEps, bEps bool
}

func splitOperands(a, b ordinal.Value, m *budget.Meter) (operands, error) {
	var ops operands
	var err error

	if _, ops.aEps = a.(ordinal.Epsilon0); !ops.aEps {
		if ops.a, err = ToCNF(a, m); err != nil {
			return ops, err
		}
	}
	if _, ops.bEps = b.(ordinal.Epsilon0); !ops.bEps {
		if ops.b, err = ToCNF(b, m); err != nil {
			return ops, err
		}
	}
	return ops, nil
}

// termsOf copies a CNF's terms into a fresh slice for local assembly.
func termsOf(c *ordinal.CNF) []ordinal.Term {
	terms := make([]ordinal.Term, c.Len())
	for i := range terms {
		terms[i] = c.At(i)
	}
	return terms
}

// chargeBigCost converts a big integer loop/size bound into a meter
// charge. Values beyond the meter's limit charge the whole limit, which
// trips the budget before any oversized allocation happens.
func chargeBigCost(n *big.Int, m *budget.Meter) error {
	if !n.IsInt64() || n.Int64() > int64(m.Limit()) {
		return m.Consume(m.Limit() + 1)
	}
	cost := int(n.Int64())
	if cost < 1 {
		cost = 1
	}
	return m.Consume(cost)
}
