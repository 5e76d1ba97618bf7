// Package cnum implements the immutable complex number value used by the plotter.
//
// Every operation returns a new value. Division and logarithm are the only partial
// operations: both fail with ErrDomain at exactly (0, 0).
package cnum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// ErrDomain is returned when an operation is undefined for its argument.
var ErrDomain = errors.New("domain error")

// Complex is a complex number with real part Re and imaginary part Im.
type Complex struct {
	Re float64
	Im float64
}

var (
	Zero = Complex{}
	One  = Complex{Re: 1}
	I    = Complex{Im: 1}
)

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// Real returns x + 0i.
func Real(x float64) Complex { return Complex{Re: x} }

func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

func (a Complex) Complex128() complex128 { return complex(a.Re, a.Im) }

// IsZero reports whether a is exactly (0, 0).
func (a Complex) IsZero() bool { return a.Re == 0 && a.Im == 0 }

// IsFinite reports whether both parts are neither NaN nor infinite.
func (a Complex) IsFinite() bool {
	return !math.IsNaN(a.Re) && !math.IsInf(a.Re, 0) && !math.IsNaN(a.Im) && !math.IsInf(a.Im, 0)
}

// Equal reports whether a and b differ by at most tol in each part.
func (a Complex) Equal(b Complex, tol float64) bool {
	return math.Abs(a.Re-b.Re) <= tol && math.Abs(a.Im-b.Im) <= tol
}

func (a Complex) Abs() float64 { return math.Hypot(a.Re, a.Im) }

func (a Complex) Neg() Complex { return Complex{Re: -a.Re, Im: -a.Im} }

func (a Complex) Add(b Complex) Complex { return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im} }

func (a Complex) Sub(b Complex) Complex { return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im} }

func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b, or ErrDomain when b is zero.
func (a Complex) Div(b Complex) (Complex, error) {
	if b.IsZero() {
		return Complex{}, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	return FromComplex128(a.Complex128() / b.Complex128()), nil
}

// Pow returns a^b.
//
// Integer real exponents are computed by repeated squaring so small integer powers
// stay exact; every other exponent goes through Exp(b * Log(a)).
func (a Complex) Pow(b Complex) (Complex, error) {
	if n, ok := integerExponent(b); ok {
		return a.powInt(n)
	}
	l, err := a.Log()
	if err != nil {
		return Complex{}, fmt.Errorf("%w: zero base with non-integer exponent", ErrDomain)
	}
	return b.Mul(l).Exp(), nil
}

const maxIntExponent = 1 << 30

func integerExponent(b Complex) (int64, bool) {
	if b.Im != 0 || b.Re != math.Trunc(b.Re) || math.Abs(b.Re) > maxIntExponent {
		return 0, false
	}
	return int64(b.Re), true
}

func (a Complex) powInt(n int64) (Complex, error) {
	if n < 0 {
		p, err := a.powInt(-n)
		if err != nil {
			return Complex{}, err
		}
		return One.Div(p)
	}
	out := One
	base := a
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return out, nil
}

func (a Complex) Exp() Complex { return FromComplex128(cmplx.Exp(a.Complex128())) }

// Log returns the principal natural logarithm, or ErrDomain at zero.
func (a Complex) Log() (Complex, error) {
	if a.IsZero() {
		return Complex{}, fmt.Errorf("%w: log of zero", ErrDomain)
	}
	return FromComplex128(cmplx.Log(a.Complex128())), nil
}

// Sin returns sin(re)cosh(im) + i·cos(re)sinh(im).
func (a Complex) Sin() Complex { return FromComplex128(cmplx.Sin(a.Complex128())) }

// Cos returns cos(re)cosh(im) - i·sin(re)sinh(im).
func (a Complex) Cos() Complex { return FromComplex128(cmplx.Cos(a.Complex128())) }

func (a Complex) Tan() Complex { return FromComplex128(cmplx.Tan(a.Complex128())) }

// String formats a as "re+imi" with up to 12 significant digits.
func (a Complex) String() string {
	re := strconv.FormatFloat(a.Re, 'g', 12, 64)
	if a.Im == 0 {
		return re
	}
	im := strconv.FormatFloat(math.Abs(a.Im), 'g', 12, 64)
	sign := "+"
	if a.Im < 0 || (a.Im == 0 && math.Signbit(a.Im)) {
		sign = "-"
	}
	if a.Re == 0 {
		if sign == "+" {
			sign = ""
		}
		return sign + im + "i"
	}
	return re + sign + im + "i"
}
