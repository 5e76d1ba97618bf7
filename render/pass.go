package render

import (
	"errors"
	"fmt"

	"zwplot/cnum"
	"zwplot/expr"
	"zwplot/sweep"
	"zwplot/view"
)

var ErrPass = errors.New("render pass error")

// StageError reports which stage of a pass failed: "z-plane", "w-plane",
// "curve" or "map".
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Plane is one surface together with its view window.
type Plane struct {
	Surface Surface
	View    view.Config
}

// Pass holds everything one render pass reads. A nil Curve clears both planes
// and draws only the grid. A nil Map is the identity.
type Pass struct {
	Z, W  Plane
	Curve *expr.Func
	Map   *expr.Func
	Sweep sweep.Sweep
	Style Style

	// SkipGrid leaves out the grid decoration.
	SkipGrid bool
}

// Result holds the sample sequences a successful pass drew.
type Result struct {
	Z []cnum.Complex
	W []cnum.Complex
}

// Run validates the pass, computes both sample sequences, and only then clears
// and redraws both planes. On error no surface is touched.
func (p *Pass) Run() (Result, error) {
	if p.Z.Surface == nil || p.W.Surface == nil {
		return Result{}, fmt.Errorf("%w: missing surface", ErrPass)
	}
	if err := p.Z.View.Validate(); err != nil {
		return Result{}, &StageError{Stage: "z-plane", Err: err}
	}
	if err := p.W.View.Validate(); err != nil {
		return Result{}, &StageError{Stage: "w-plane", Err: err}
	}

	var res Result
	if p.Curve != nil {
		if p.Sweep == nil {
			return Result{}, fmt.Errorf("%w: missing sweep", ErrPass)
		}
		zs, err := sweep.Generate(p.Curve, p.Sweep)
		if err != nil {
			return Result{}, &StageError{Stage: "curve", Err: err}
		}
		ws := zs
		if p.Map != nil {
			ws, err = sweep.Map(zs, p.Map)
			if err != nil {
				return Result{}, &StageError{Stage: "map", Err: err}
			}
		}
		res = Result{Z: zs, W: ws}
	}

	style := p.Style
	if style == (Style{}) {
		style = DefaultStyle()
	}
	p.draw(p.Z, res.Z, style)
	p.draw(p.W, res.W, style)
	return res, nil
}

func (p *Pass) draw(pl Plane, samples []cnum.Complex, style Style) {
	s := pl.Surface
	s.Clear()
	if !p.SkipGrid {
		Grid(s)
	}
	if len(samples) == 0 {
		return
	}
	setStyle(s, style.Color, style.Width)
	Curve(s, Project(samples, pl.View, s.Width(), s.Height()))
}
