package expr

import (
	"errors"
	"math"

	"zwplot/cnum"
)

var (
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")
	// ErrType is returned when an evaluated value cannot be coerced to a complex number.
	ErrType = errors.New("type error")
)

type symbolKind uint8

const (
	symConst symbolKind = iota
	symFunc
)

// symbol is an entry of the fixed symbol table.
type symbol struct {
	kind symbolKind
	val  cnum.Complex
	fn   func(cnum.Complex) (cnum.Complex, error)
}

func total(fn func(cnum.Complex) cnum.Complex) func(cnum.Complex) (cnum.Complex, error) {
	return func(z cnum.Complex) (cnum.Complex, error) { return fn(z), nil }
}

// symbols is the complete set of names reachable from expression text besides the
// declared free variables.
var symbols = map[string]symbol{
	"sin": {kind: symFunc, fn: total(cnum.Complex.Sin)},
	"cos": {kind: symFunc, fn: total(cnum.Complex.Cos)},
	"tan": {kind: symFunc, fn: total(cnum.Complex.Tan)},
	"exp": {kind: symFunc, fn: total(cnum.Complex.Exp)},
	"log": {kind: symFunc, fn: cnum.Complex.Log},

	"pi": {kind: symConst, val: cnum.Real(math.Pi)},
	"e":  {kind: symConst, val: cnum.Real(math.E)},
	"i":  {kind: symConst, val: cnum.I},
}

// Symbols returns the names of the built-in constants and functions, sorted.
func Symbols() []string {
	return []string{"cos", "e", "exp", "i", "log", "pi", "sin", "tan"}
}
