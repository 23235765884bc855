package expr

import (
	"fmt"

	"github.com/roach88/cantor/internal/arith"
	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/ordinal"
)

// Eval reduces an AST to an ordinal value, charging every arithmetic
// step to the meter.
func Eval(n Node, m *budget.Meter) (ordinal.Value, error) {
	switch node := n.(type) {
	case *Num:
		return ordinal.FromBig(node.Value)
	case *Omega:
		return ordinal.Omega(), nil
	case *Eps:
		return ordinal.Epsilon0{}, nil
	case *BinOp:
		left, err := Eval(node.Left, m)
		if err != nil {
			return nil, err
		}
		right, err := Eval(node.Right, m)
		if err != nil {
			return nil, err
		}
		switch node.Op {
		case OpAdd:
			return arith.Add(left, right, m)
		case OpMul:
			return arith.Mul(left, right, m)
		case OpPow:
			return arith.Pow(left, right, m)
		case OpTet:
			return arith.Tetrate(left, right, m)
		default:
			return nil, &ordinal.InvariantError{Message: fmt.Sprintf("unknown operator %d", node.Op)}
		}
	default:
		return nil, &ordinal.InvariantError{Message: fmt.Sprintf("unknown AST node %T", n)}
	}
}

// EvalString parses and evaluates in one step.
func EvalString(src string, m *budget.Meter) (ordinal.Value, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Eval(node, m)
}
