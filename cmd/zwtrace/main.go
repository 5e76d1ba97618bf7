// Command zwtrace prints the drawing primitives of one render pass, one per
// line, prefixed by the plane they go to.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"zwplot/expr"
	"zwplot/render"
	"zwplot/sweep"
	"zwplot/view"
)

type options struct {
	curve, zfunc, mapping string
	zview, wview          string
	sweep                 sweep.Parametric
	width, height         int
	grid                  bool
}

func main() {
	var o options
	def := sweep.DefaultParametric()
	flag.StringVar(&o.curve, "curve", "", "Parametric curve in t.")
	flag.StringVar(&o.zfunc, "zfunc", "", "Function of z sampled along the real axis (overrides -curve).")
	flag.StringVar(&o.mapping, "map", "z", "Mapping w = f(z).")
	flag.StringVar(&o.zview, "zview", "-10,10,-10,10", "z-plane bounds: minX,maxX,minY,maxY.")
	flag.StringVar(&o.wview, "wview", "-10,10,-10,10", "w-plane bounds: minX,maxX,minY,maxY.")
	flag.Float64Var(&o.sweep.TMin, "tmin", def.TMin, "Parametric sweep start.")
	flag.Float64Var(&o.sweep.TMax, "tmax", def.TMax, "Parametric sweep end.")
	flag.Float64Var(&o.sweep.Step, "step", def.Step, "Parametric sweep step.")
	flag.IntVar(&o.width, "width", 400, "Surface width in pixels.")
	flag.IntVar(&o.height, "height", 400, "Surface height in pixels.")
	flag.BoolVar(&o.grid, "grid", false, "Include the grid decoration.")
	flag.Parse()

	if o.curve == "" && o.zfunc == "" {
		fatalf("usage: zwtrace -curve EXPR_IN_T | -zfunc EXPR_IN_Z [-map EXPR_IN_Z] [-zview a,b,c,d] [-wview a,b,c,d] [-grid]")
	}
	if o.width <= 0 || o.height <= 0 {
		fatalf("invalid size %dx%d", o.width, o.height)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := trace(out, o); err != nil {
		out.Flush()
		fatalf("zwtrace: %v", err)
	}
	if err := out.Flush(); err != nil {
		fatalf("zwtrace: %v", err)
	}
}

func trace(w io.Writer, o options) error {
	zv, err := view.Parse(o.zview)
	if err != nil {
		return fmt.Errorf("zview: %w", err)
	}
	wv, err := view.Parse(o.wview)
	if err != nil {
		return fmt.Errorf("wview: %w", err)
	}
	m, err := expr.Compile(o.mapping, "z")
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}

	zr := render.NewRecorder(o.width, o.height)
	wr := render.NewRecorder(o.width, o.height)
	pass := render.Pass{
		Z:        render.Plane{Surface: zr, View: zv},
		W:        render.Plane{Surface: wr, View: wv},
		Map:      m,
		SkipGrid: !o.grid,
	}
	if src := strings.TrimSpace(o.zfunc); src != "" {
		if pass.Curve, err = expr.Compile(src, "z"); err != nil {
			return fmt.Errorf("zfunc: %w", err)
		}
		pass.Sweep = sweep.PixelAligned{View: zv, Width: o.width}
	} else {
		if pass.Curve, err = expr.Compile(o.curve, "t"); err != nil {
			return fmt.Errorf("curve: %w", err)
		}
		pass.Sweep = o.sweep
	}

	if _, err := pass.Run(); err != nil {
		return err
	}
	for _, p := range []struct {
		name string
		r    *render.Recorder
	}{{"z", zr}, {"w", wr}} {
		for _, op := range p.r.Ops {
			if _, err := fmt.Fprintf(w, "%s %s\n", p.name, op); err != nil {
				return err
			}
		}
	}
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
