package expr

import (
	"fmt"
	"strconv"

	"zwplot/cnum"
)

// scope holds the free-variable bindings of one evaluation, indexed by slot.
// It is the only state an expression can reach.
type scope struct {
	vals []cnum.Complex
}

type node interface {
	Eval(s *scope) (Value, error)
	String() string
}

type nodeNumber struct {
	v    float64
	text string
}

func (n nodeNumber) Eval(_ *scope) (Value, error) { return NumberValue(cnum.Real(n.v)), nil }

func (n nodeNumber) String() string {
	if n.text != "" {
		return n.text
	}
	return strconv.FormatFloat(n.v, 'g', -1, 64)
}

type nodeConst struct {
	name string
	v    cnum.Complex
}

func (n nodeConst) Eval(_ *scope) (Value, error) { return NumberValue(n.v), nil }

func (n nodeConst) String() string { return n.name }

type nodeVar struct {
	name string
	slot int
}

func (n nodeVar) Eval(s *scope) (Value, error) {
	if s == nil || n.slot >= len(s.vals) {
		return Value{}, fmt.Errorf("%w: unbound variable %q", ErrEval, n.name)
	}
	return NumberValue(s.vals[n.slot]), nil
}

func (n nodeVar) String() string { return n.name }

// nodeFuncRef is a built-in function name used as a value. It parses, but the
// value cannot take part in arithmetic or be returned.
type nodeFuncRef struct{ name string }

func (n nodeFuncRef) Eval(_ *scope) (Value, error) { return FuncValue(n.name), nil }

func (n nodeFuncRef) String() string { return n.name }

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) Eval(s *scope) (Value, error) {
	v, err := n.x.Eval(s)
	if err != nil {
		return Value{}, err
	}
	z, err := v.number(fmt.Sprintf("unary %c", n.op))
	if err != nil {
		return Value{}, err
	}
	switch n.op {
	case '+':
		return NumberValue(z), nil
	case '-':
		return NumberValue(z.Neg()), nil
	default:
		return Value{}, fmt.Errorf("%w: unary %q", ErrEval, n.op)
	}
}

func (n nodeUnary) String() string { return "(" + string(n.op) + n.x.String() + ")" }

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) Eval(s *scope) (Value, error) {
	a, err := n.left.Eval(s)
	if err != nil {
		return Value{}, err
	}
	b, err := n.right.Eval(s)
	if err != nil {
		return Value{}, err
	}
	what := fmt.Sprintf("operator %c", n.op)
	za, err := a.number(what)
	if err != nil {
		return Value{}, err
	}
	zb, err := b.number(what)
	if err != nil {
		return Value{}, err
	}

	var out cnum.Complex
	switch n.op {
	case '+':
		out = za.Add(zb)
	case '-':
		out = za.Sub(zb)
	case '*':
		out = za.Mul(zb)
	case '/':
		out, err = za.Div(zb)
	case '^':
		out, err = za.Pow(zb)
	default:
		return Value{}, fmt.Errorf("%w: binary %q", ErrEval, n.op)
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return NumberValue(out), nil
}

func (n nodeBinary) String() string {
	return "(" + n.left.String() + " " + string(n.op) + " " + n.right.String() + ")"
}

type nodeCall struct {
	name string
	fn   func(cnum.Complex) (cnum.Complex, error)
	arg  node
}

func (n nodeCall) Eval(s *scope) (Value, error) {
	v, err := n.arg.Eval(s)
	if err != nil {
		return Value{}, err
	}
	z, err := v.number(n.name + " argument")
	if err != nil {
		return Value{}, err
	}
	out, err := n.fn(z)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: %w", ErrEval, n.name, err)
	}
	return NumberValue(out), nil
}

func (n nodeCall) String() string { return n.name + "(" + n.arg.String() + ")" }
