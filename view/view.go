// Package view maps complex points onto a pixel surface through an affine window.
package view

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"zwplot/cnum"
	"zwplot/expr"
)

var (
	ErrConfig = errors.New("config error")
	// ErrParse is shared with expr so a single errors.Is check covers bad input text.
	ErrParse = expr.ErrParse
)

// Config is the visible rectangle of one plane in mathematical coordinates.
type Config struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Default returns the [-10, 10] x [-10, 10] window.
func Default() Config {
	return Config{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}
}

func (c Config) Validate() error {
	for _, v := range [...]float64{c.MinX, c.MaxX, c.MinY, c.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %s", ErrConfig, c)
		}
	}
	if c.MaxX <= c.MinX {
		return fmt.Errorf("%w: maxX %g <= minX %g", ErrConfig, c.MaxX, c.MinX)
	}
	if c.MaxY <= c.MinY {
		return fmt.Errorf("%w: maxY %g <= minY %g", ErrConfig, c.MaxY, c.MinY)
	}
	if math.IsInf(c.MaxX-c.MinX, 0) || math.IsInf(c.MaxY-c.MinY, 0) {
		return fmt.Errorf("%w: span overflows in %s", ErrConfig, c)
	}
	return nil
}

// String formats c in the form accepted by Parse.
func (c Config) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return f(c.MinX) + "," + f(c.MaxX) + "," + f(c.MinY) + "," + f(c.MaxY)
}

// ToScreen projects p onto a w x h surface. Points outside the window land
// outside the surface; clipping is left to the surface.
func ToScreen(p cnum.Complex, c Config, w, h int) (x, y float64) {
	x = (p.Re - c.MinX) / (c.MaxX - c.MinX) * float64(w)
	y = (1 - (p.Im-c.MinY)/(c.MaxY-c.MinY)) * float64(h)
	return x, y
}

// FromScreen is the inverse of ToScreen.
func FromScreen(x, y float64, c Config, w, h int) cnum.Complex {
	re := c.MinX + x/float64(w)*(c.MaxX-c.MinX)
	im := c.MinY + (1-y/float64(h))*(c.MaxY-c.MinY)
	return cnum.New(re, im)
}

// Parse reads "minX,maxX,minY,maxY" and validates the result.
func Parse(s string) (Config, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Config{}, fmt.Errorf("%w: view %q: want minX,maxX,minY,maxY", ErrParse, s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: view %q: bound %d: %q is not a number", ErrParse, s, i+1, strings.TrimSpace(p))
		}
		vals[i] = v
	}
	c := Config{MinX: vals[0], MaxX: vals[1], MinY: vals[2], MaxY: vals[3]}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
