// Package expr parses and evaluates ordinal arithmetic expressions.
//
// Grammar, loosest to tightest binding:
//
//	sum    := product ("+" product)*
//	product:= power ("*" power)*
//	power  := tower ("^" power)?          right-associative
//	tower  := atom ("^^" tower)?          right-associative
//	atom   := NUMBER | "w" | "e_0" | "(" sum ")"
//
// Whitespace between tokens is ignored. Numbers are arbitrary-precision
// naturals.
package expr

import "math/big"

// Node is a sealed interface over expression AST nodes.
type Node interface {
	nodeExpr()
	// Pos is the byte offset of the node's first token, for errors.
	Pos() int
}

// Num is a natural number literal.
type Num struct {
	Value  *big.Int
	Offset int
}

func (*Num) nodeExpr()  {}
func (n *Num) Pos() int { return n.Offset }

// Omega is the literal ω, spelled "w".
type Omega struct {
	Offset int
}

func (*Omega) nodeExpr()  {}
func (n *Omega) Pos() int { return n.Offset }

// Eps is the literal ε₀, spelled "e_0".
type Eps struct {
	Offset int
}

func (*Eps) nodeExpr()  {}
func (n *Eps) Pos() int { return n.Offset }

// Op enumerates the binary operators.
type Op int

const (
	OpAdd Op = iota
	OpMul
	OpPow
	OpTet
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "^"
	case OpTet:
		return "^^"
	default:
		return "?"
	}
}

// BinOp is a binary application.
type BinOp struct {
	Op          Op
	Left, Right Node
	Offset      int
}

func (*BinOp) nodeExpr()  {}
func (n *BinOp) Pos() int { return n.Offset }
