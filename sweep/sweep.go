// Package sweep generates the sample sequences a plot is drawn from.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"zwplot/cnum"
	"zwplot/expr"
	"zwplot/view"
)

var ErrSweep = errors.New("sweep error")

// MaxSamples bounds the length of any sweep.
const MaxSamples = 1 << 20

// Sweep is a finite, restartable sequence of bindings for one free variable.
// At must be a pure function of i.
type Sweep interface {
	Var() string
	Len() int
	At(i int) cnum.Complex
	Validate() error
}

// SampleError reports the sample at which generation or mapping failed.
type SampleError struct {
	Index int
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d: %v", e.Index, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }

// Parametric sweeps the real parameter t over [TMin, TMax] in steps of Step.
type Parametric struct {
	TMin, TMax float64
	Step       float64
}

// DefaultParametric returns t in [-10, 10] step 0.02: 1001 samples.
func DefaultParametric() Parametric {
	return Parametric{TMin: -10, TMax: 10, Step: 0.02}
}

func (p Parametric) Var() string { return "t" }

// Validate rejects non-finite or inverted ranges, a non-positive step, and
// any sweep longer than MaxSamples.
func (p Parametric) Validate() error {
	if !finite(p.TMin) || !finite(p.TMax) || !finite(p.Step) {
		return fmt.Errorf("%w: non-finite parametric range", ErrSweep)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: step %g <= 0", ErrSweep, p.Step)
	}
	if p.TMax < p.TMin {
		return fmt.Errorf("%w: tmax %g < tmin %g", ErrSweep, p.TMax, p.TMin)
	}
	q := p.quotient()
	if !finite(q) || q >= MaxSamples {
		return fmt.Errorf("%w: range [%g, %g] step %g exceeds %d samples", ErrSweep, p.TMin, p.TMax, p.Step, MaxSamples)
	}
	return nil
}

// quotient is (TMax-TMin)/Step, nudged up so rounding just below an integer
// still counts the last sample.
func (p Parametric) quotient() float64 {
	return (p.TMax-p.TMin)/p.Step + 1e-9
}

// Len returns floor((TMax-TMin)/Step) + 1, or 0 for an invalid sweep.
func (p Parametric) Len() int {
	if p.Validate() != nil {
		return 0
	}
	return int(math.Floor(p.quotient())) + 1
}

func (p Parametric) At(i int) cnum.Complex {
	return cnum.Real(p.TMin + float64(i)*p.Step)
}

// PixelAligned samples z along the real axis of View, one sample per pixel column
// boundary: Width+1 samples from MinX to MaxX inclusive.
type PixelAligned struct {
	View  view.Config
	Width int
}

func (p PixelAligned) Var() string { return "z" }

func (p PixelAligned) Validate() error {
	if p.Width <= 0 || p.Width >= MaxSamples {
		return fmt.Errorf("%w: width %d out of range (0, %d)", ErrSweep, p.Width, MaxSamples)
	}
	return p.View.Validate()
}

func (p PixelAligned) Len() int {
	if p.Validate() != nil {
		return 0
	}
	return p.Width + 1
}

func (p PixelAligned) At(i int) cnum.Complex {
	return cnum.Real(p.View.MinX + float64(i)/float64(p.Width)*(p.View.MaxX-p.View.MinX))
}

// Generate evaluates f at every binding of s. The first failure aborts the whole
// sequence with a *SampleError; no partial output is returned.
func Generate(f *expr.Func, s Sweep) ([]cnum.Complex, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	name := s.Var()
	n := s.Len()
	out := make([]cnum.Complex, n)
	bind := map[string]cnum.Complex{}
	for i := 0; i < n; i++ {
		bind[name] = s.At(i)
		v, err := f.Eval(bind)
		if err != nil {
			return nil, &SampleError{Index: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// Map applies f to every sample with z bound to it. The result is index-aligned
// with samples and fails fast like Generate.
func Map(samples []cnum.Complex, f *expr.Func) ([]cnum.Complex, error) {
	out := make([]cnum.Complex, len(samples))
	bind := map[string]cnum.Complex{}
	for i, z := range samples {
		bind["z"] = z
		w, err := f.Eval(bind)
		if err != nil {
			return nil, &SampleError{Index: i, Err: err}
		}
		out[i] = w
	}
	return out, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
