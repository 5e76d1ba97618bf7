package expr

import (
	"fmt"
	"reflect"

	"zwplot/cnum"
)

type valueKind uint8

const (
	valueNumber valueKind = iota
	valueFunc
)

// Value is the raw result of evaluating an expression node.
type Value struct {
	kind valueKind
	num  cnum.Complex
	fn   string
}

func NumberValue(z cnum.Complex) Value { return Value{kind: valueNumber, num: z} }

// FuncValue is a reference to a built-in function by name.
func FuncValue(name string) Value { return Value{kind: valueFunc, fn: name} }

func (v Value) IsFunc() bool { return v.kind == valueFunc }

// Interface returns the underlying Go value: a cnum.Complex for numbers and the
// function name for function references.
func (v Value) Interface() any {
	if v.kind == valueFunc {
		return builtinRef(v.fn)
	}
	return v.num
}

func (v Value) number(what string) (cnum.Complex, error) {
	if v.kind != valueNumber {
		return cnum.Complex{}, fmt.Errorf("%w: %s: function %s is not a number", ErrType, what, v.fn)
	}
	return v.num, nil
}

type builtinRef string

func (b builtinRef) String() string { return "builtin " + string(b) }

type realPart interface{ Real() float64 }

type imagPart interface{ Imag() float64 }

// Coerce converts a raw value into a complex number.
//
// Real Go numbers become (x, 0); complex64, complex128 and cnum.Complex are taken
// as-is. A value exposing Real() float64 and/or Imag() float64 becomes (re, im),
// with a missing accessor read as 0. Everything else is ErrType.
func Coerce(x any) (cnum.Complex, error) {
	switch v := x.(type) {
	case cnum.Complex:
		return v, nil
	case *cnum.Complex:
		if v == nil {
			return cnum.Complex{}, fmt.Errorf("%w: nil complex", ErrType)
		}
		return *v, nil
	case Value:
		return v.number("result")
	case complex128:
		return cnum.FromComplex128(v), nil
	case complex64:
		return cnum.FromComplex128(complex128(v)), nil
	case nil:
		return cnum.Complex{}, fmt.Errorf("%w: nil value", ErrType)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cnum.Real(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cnum.Real(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return cnum.Real(rv.Float()), nil
	}

	re, hasRe := x.(realPart)
	im, hasIm := x.(imagPart)
	if !hasRe && !hasIm {
		return cnum.Complex{}, fmt.Errorf("%w: cannot coerce %T to a complex number", ErrType, x)
	}
	var out cnum.Complex
	if hasRe {
		out.Re = re.Real()
	}
	if hasIm {
		out.Im = im.Imag()
	}
	return out, nil
}
