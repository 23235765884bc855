package expr

import "fmt"

// Parse builds the AST for one expression. The whole input must be
// consumed; trailing tokens are an error.
func Parse(src string) (Node, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	node, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.unexpected("end of input")
	}
	return node, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) unexpected(want string) error {
	t := p.peek()
	return &ParseError{Offset: t.pos, Message: fmt.Sprintf("expected %s, found %s", want, t.kind.describe())}
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPlus {
		op := p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Op: OpAdd, Left: left, Right: right, Offset: op.pos}
	}
	return left, nil
}

func (p *parser) parseProduct() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokStar {
		op := p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Op: OpMul, Left: left, Right: right, Offset: op.pos}
	}
	return left, nil
}

// parsePower handles "^", recursing on the right for right-associativity.
func (p *parser) parsePower() (Node, error) {
	left, err := p.parseTower()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return left, nil
	}
	op := p.next()
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &BinOp{Op: OpPow, Left: left, Right: right, Offset: op.pos}, nil
}

// parseTower handles "^^", which binds tighter than "^" and is also
// right-associative.
func (p *parser) parseTower() (Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokTetra {
		return left, nil
	}
	op := p.next()
	right, err := p.parseTower()
	if err != nil {
		return nil, err
	}
	return &BinOp{Op: OpTet, Left: left, Right: right, Offset: op.pos}, nil
}

func (p *parser) parseAtom() (Node, error) {
	switch t := p.peek(); t.kind {
	case tokNumber:
		p.next()
		return &Num{Value: t.num, Offset: t.pos}, nil
	case tokOmega:
		p.next()
		return &Omega{Offset: t.pos}, nil
	case tokEps:
		p.next()
		return &Eps{Offset: t.pos}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.unexpected(`")"`)
		}
		p.next()
		return inner, nil
	default:
		return nil, p.unexpected("number, \"w\", \"e_0\", or \"(\"")
	}
}
