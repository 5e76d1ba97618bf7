package render

import (
	"zwplot/cnum"
	"zwplot/view"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Project maps every sample through cfg onto a w x h surface.
func Project(samples []cnum.Complex, cfg view.Config, w, h int) []Point {
	pts := make([]Point, len(samples))
	for i, z := range samples {
		pts[i].X, pts[i].Y = view.ToScreen(z, cfg, w, h)
	}
	return pts
}

// Curve strokes pts as one path: MoveTo for the first point, LineTo for the
// rest. An empty sequence draws nothing.
func Curve(s Surface, pts []Point) {
	if len(pts) == 0 {
		return
	}
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
}

// Grid draws GridDivisions light lines in each direction, then the two axes
// through the centre of s.
func Grid(s Surface) {
	w := float64(s.Width())
	h := float64(s.Height())
	if w <= 0 || h <= 0 {
		return
	}

	setStyle(s, ColorGrid, 1)
	for i := 0; i <= GridDivisions; i++ {
		x := w * float64(i) / GridDivisions
		s.MoveTo(x, 0)
		s.LineTo(x, h)
	}
	for i := 0; i <= GridDivisions; i++ {
		y := h * float64(i) / GridDivisions
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	s.Stroke()

	setStyle(s, ColorAxis, 1)
	s.MoveTo(0, h/2)
	s.LineTo(w, h/2)
	s.MoveTo(w/2, 0)
	s.LineTo(w/2, h)
	s.Stroke()
}
