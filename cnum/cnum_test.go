package cnum

import (
	"errors"
	"math"
	"testing"
)

func TestAddInverseIsZero(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 3.5, 1e300, -1e-300, math.Pi} {
		got := Real(x).Add(Real(-x))
		if !got.IsZero() {
			t.Fatalf("%v + %v = %v, want 0", x, -x, got)
		}
	}
}

func TestDivByZero(t *testing.T) {
	_, err := New(1, 2).Div(Zero)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("err=%v, want ErrDomain", err)
	}
	_, err = Zero.Div(Complex{})
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("0/0 err=%v, want ErrDomain", err)
	}
}

func TestDivIsInverseOfMul(t *testing.T) {
	tests := []struct{ a, b Complex }{
		{New(1, 2), New(3, -4)},
		{New(-7.5, 0.25), New(0, 1)},
		{New(1e-3, 1e3), New(-2, 0)},
		{New(0, 0), New(5, 5)},
	}
	for _, tt := range tests {
		q, err := tt.a.Div(tt.b)
		if err != nil {
			t.Fatalf("%v / %v: %v", tt.a, tt.b, err)
		}
		back := q.Mul(tt.b)
		if !back.Equal(tt.a, 1e-9*(1+tt.a.Abs())) {
			t.Fatalf("(%v / %v) * %v = %v", tt.a, tt.b, tt.b, back)
		}
	}
}

func TestMul(t *testing.T) {
	got := I.Mul(I)
	if got != Real(-1) {
		t.Fatalf("i*i=%v", got)
	}
	got = New(1, 2).Mul(New(3, 4))
	if got != New(-5, 10) {
		t.Fatalf("(1+2i)(3+4i)=%v", got)
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{"square", Real(2), Real(2), Real(4)},
		{"zero exponent", New(3, -1), Zero, One},
		{"zero base positive", Zero, Real(3), Zero},
		{"i squared", I, Real(2), Real(-1)},
		{"negative exponent", Real(2), Real(-2), Real(0.25)},
		{"half", Real(4), Real(0.5), Real(2)},
		{"i to the i", I, I, Real(math.Exp(-math.Pi / 2))},
	}
	for _, tt := range tests {
		got, err := tt.a.Pow(tt.b)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !got.Equal(tt.want, 1e-12) {
			t.Fatalf("%s: %v^%v=%v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPowZeroBaseDomain(t *testing.T) {
	if _, err := Zero.Pow(Real(-1)); !errors.Is(err, ErrDomain) {
		t.Fatalf("0^-1 err=%v", err)
	}
	if _, err := Zero.Pow(Real(0.5)); !errors.Is(err, ErrDomain) {
		t.Fatalf("0^0.5 err=%v", err)
	}
	if _, err := Zero.Pow(I); !errors.Is(err, ErrDomain) {
		t.Fatalf("0^i err=%v", err)
	}
}

func TestLog(t *testing.T) {
	if _, err := Zero.Log(); !errors.Is(err, ErrDomain) {
		t.Fatalf("log(0) err=%v", err)
	}
	got, err := Real(-1).Log()
	if err != nil {
		t.Fatalf("log(-1): %v", err)
	}
	if !got.Equal(New(0, math.Pi), 1e-12) {
		t.Fatalf("log(-1)=%v", got)
	}
	back := got.Exp()
	if !back.Equal(Real(-1), 1e-12) {
		t.Fatalf("exp(log(-1))=%v", back)
	}
}

func TestTrig(t *testing.T) {
	a, b := 0.7, -1.3
	z := New(a, b)
	wantSin := New(math.Sin(a)*math.Cosh(b), math.Cos(a)*math.Sinh(b))
	if got := z.Sin(); !got.Equal(wantSin, 1e-12) {
		t.Fatalf("sin=%v want %v", got, wantSin)
	}
	wantCos := New(math.Cos(a)*math.Cosh(b), -math.Sin(a)*math.Sinh(b))
	if got := z.Cos(); !got.Equal(wantCos, 1e-12) {
		t.Fatalf("cos=%v want %v", got, wantCos)
	}
	q, err := z.Sin().Div(z.Cos())
	if err != nil {
		t.Fatalf("sin/cos: %v", err)
	}
	if got := z.Tan(); !got.Equal(q, 1e-12) {
		t.Fatalf("tan=%v want %v", got, q)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Complex
		want string
	}{
		{Real(5), "5"},
		{New(1, 2), "1+2i"},
		{New(1, -2), "1-2i"},
		{I, "1i"},
		{New(0, -0.5), "-0.5i"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("String(%#v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
