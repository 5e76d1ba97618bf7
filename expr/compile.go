// Package expr compiles expression text over complex numbers into a reusable
// function.
//
// The grammar is closed: numbers, the operators + - * / ^, parentheses, calls to
// the built-in functions and the names listed by Symbols plus the free variables
// declared at compile time. Every identifier is resolved while parsing, so an
// expression can only ever reach those names.
//
// Precedence from loosest to tightest: + and -, then * and /, then a leading
// sign, then ^. So -z^2 is -(z^2), and ^ is right-associative: 2^3^2 is 2^9.
package expr

import (
	"fmt"
	"strings"

	"zwplot/cnum"
)

// Func is a compiled expression. It holds no mutable state and may be evaluated
// any number of times, from any goroutine.
type Func struct {
	src  string
	vars []string
	root node
}

// Compile parses src into a Func with the given free variables.
func Compile(src string, vars ...string) (*Func, error) {
	slots := make(map[string]int, len(vars))
	for i, v := range vars {
		if !validName(v) {
			return nil, fmt.Errorf("%w: invalid variable name %q", ErrParse, v)
		}
		if _, ok := symbols[v]; ok {
			return nil, fmt.Errorf("%w: variable %q shadows a built-in", ErrParse, v)
		}
		if _, dup := slots[v]; dup {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrParse, v)
		}
		slots[v] = i
	}

	p := parser{l: lexer{s: src}, vars: slots}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Func{
		src:  strings.TrimSpace(src),
		vars: append([]string(nil), vars...),
		root: root,
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and fixed
// expressions.
func MustCompile(src string, vars ...string) *Func {
	f, err := Compile(src, vars...)
	if err != nil {
		panic(err)
	}
	return f
}

func validName(s string) bool {
	if s == "" || !isIdentStart(rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentContinue(rune(s[i])) {
			return false
		}
	}
	return true
}

// Eval evaluates f with the given bindings. Every declared variable must be bound.
//
// Only the final value is checked: a NaN or infinite result is ErrEval wrapping
// cnum.ErrDomain. Intermediate values follow IEEE double arithmetic, so an
// overflow that later cancels out, as in 1/(1e308*10), yields a finite result.
func (f *Func) Eval(bindings map[string]cnum.Complex) (cnum.Complex, error) {
	sc := scope{vals: make([]cnum.Complex, len(f.vars))}
	for i, name := range f.vars {
		v, ok := bindings[name]
		if !ok {
			return cnum.Complex{}, fmt.Errorf("%w: missing binding for %q", ErrEval, name)
		}
		sc.vals[i] = v
	}
	return f.eval(&sc)
}

// Call evaluates f with its variables bound positionally, in declaration order.
func (f *Func) Call(args ...cnum.Complex) (cnum.Complex, error) {
	if len(args) != len(f.vars) {
		return cnum.Complex{}, fmt.Errorf("%w: want %d arguments, got %d", ErrEval, len(f.vars), len(args))
	}
	return f.eval(&scope{vals: args})
}

func (f *Func) eval(sc *scope) (cnum.Complex, error) {
	raw, err := f.root.Eval(sc)
	if err != nil {
		return cnum.Complex{}, err
	}
	z, err := Coerce(raw)
	if err != nil {
		return cnum.Complex{}, err
	}
	if !z.IsFinite() {
		return cnum.Complex{}, fmt.Errorf("%w: %w: non-finite result %v", ErrEval, cnum.ErrDomain, z)
	}
	return z, nil
}

// Vars returns the declared free variables in order.
func (f *Func) Vars() []string { return append([]string(nil), f.vars...) }

// Source returns the trimmed source text.
func (f *Func) Source() string { return f.src }

// String returns the fully parenthesized form of the parsed expression.
func (f *Func) String() string { return f.root.String() }
