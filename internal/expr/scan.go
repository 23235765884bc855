package expr

import (
	"fmt"
	"math/big"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOmega
	tokEps
	tokPlus
	tokStar
	tokCaret
	tokTetra
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	num  *big.Int // set for tokNumber
}

// scan tokenizes the whole input up front. Offsets are byte positions.
func scan(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			n, ok := new(big.Int).SetString(src[start:i], 10)
			if !ok {
				return nil, &ParseError{Offset: start, Message: "malformed number"}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, num: n})

		case c == 'w':
			if i+1 < len(src) && isWordByte(src[i+1]) {
				return nil, &ParseError{Offset: i, Message: "unknown identifier"}
			}
			toks = append(toks, token{kind: tokOmega, pos: i})
			i++

		case c == 'e':
			if i+2 >= len(src) || src[i+1] != '_' || src[i+2] != '0' {
				return nil, &ParseError{Offset: i, Message: `expected "e_0"`}
			}
			if i+3 < len(src) && isWordByte(src[i+3]) {
				return nil, &ParseError{Offset: i, Message: "unknown identifier"}
			}
			toks = append(toks, token{kind: tokEps, pos: i})
			i += 3

		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++

		case c == '*':
			toks = append(toks, token{kind: tokStar, pos: i})
			i++

		case c == '^':
			if i+1 < len(src) && src[i+1] == '^' {
				toks = append(toks, token{kind: tokTetra, pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokCaret, pos: i})
				i++
			}

		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++

		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++

		default:
			return nil, &ParseError{Offset: i, Message: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (k tokenKind) describe() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokOmega:
		return `"w"`
	case tokEps:
		return `"e_0"`
	case tokPlus:
		return `"+"`
	case tokStar:
		return `"*"`
	case tokCaret:
		return `"^"`
	case tokTetra:
		return `"^^"`
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	default:
		return "token"
	}
}
