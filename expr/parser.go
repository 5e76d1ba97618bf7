package expr

import (
	"fmt"
)

// parser is a recursive-descent parser over the closed expression grammar.
//
// Names are resolved while parsing: an identifier must be a declared free
// variable or an entry of the symbol table, otherwise parsing fails.
type parser struct {
	l    lexer
	cur  token
	vars map[string]int
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...)
}

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return p.errorf("unexpected end of input")
	}
	return p.errorf("unexpected %s at %d", p.cur.describe(), p.cur.pos)
}

func (p *parser) parse() (node, error) {
	p.next()
	if p.cur.kind == tokEOF {
		return nil, p.errorf("empty expression")
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parseUnary binds a sign looser than '^': -z^2 is -(z^2).
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		// Right-associative; the exponent may carry a sign (2^-1).
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		txt := p.cur.text
		p.next()
		return nodeNumber{v: v, text: txt}, nil
	case tokIdent:
		return p.parseIdent()
	case tokLParen:
		p.next()
		ex, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, p.errorf("expected ')' at %d", p.cur.pos)
		}
		p.next()
		return ex, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) parseIdent() (node, error) {
	name := p.cur.text
	pos := p.cur.pos
	p.next()

	if slot, ok := p.vars[name]; ok {
		if p.cur.kind == tokLParen {
			return nil, p.errorf("variable %q is not a function", name)
		}
		return nodeVar{name: name, slot: slot}, nil
	}

	sym, ok := symbols[name]
	if !ok {
		return nil, p.errorf("unknown identifier %q at %d", name, pos)
	}

	if p.cur.kind != tokLParen {
		if sym.kind == symFunc {
			return nodeFuncRef{name: name}, nil
		}
		return nodeConst{name: name, v: sym.val}, nil
	}
	if sym.kind != symFunc {
		return nil, p.errorf("%q is not a function", name)
	}

	p.next()
	var args []node
	if p.cur.kind != tokRParen {
		for {
			ex, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
			if p.cur.kind == tokComma {
				p.next()
				continue
			}
			break
		}
	}
	if p.cur.kind != tokRParen {
		return nil, p.errorf("expected ')' at %d", p.cur.pos)
	}
	p.next()
	if len(args) != 1 {
		return nil, p.errorf("%s expects 1 argument, got %d", name, len(args))
	}
	return nodeCall{name: name, fn: sym.fn, arg: args[0]}, nil
}
