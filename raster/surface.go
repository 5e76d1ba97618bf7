package raster

import (
	"image"
	"image/color"
)

type point struct{ x, y float64 }

// Surface is a path surface over a rectangle of a Display. Coordinates are
// relative to the rectangle's top-left corner and everything drawn is clipped
// to it.
type Surface struct {
	d    *Display
	r    image.Rectangle
	bg   color.RGBA
	fg   color.RGBA
	lw   int
	path [][]point
}

// NewSurface returns a surface over r, cleared to bg on Clear.
func NewSurface(d *Display, r image.Rectangle, bg color.RGBA) *Surface {
	return &Surface{
		d:  d,
		r:  r.Intersect(d.Bounds()),
		bg: bg,
		fg: color.RGBA{A: 0xFF},
		lw: 1,
	}
}

func (s *Surface) Rect() image.Rectangle { return s.r }
func (s *Surface) Width() int            { return s.r.Dx() }
func (s *Surface) Height() int           { return s.r.Dy() }

func (s *Surface) SetStrokeColor(c color.RGBA) { s.fg = c }

func (s *Surface) SetLineWidth(w int) {
	if w < 1 {
		w = 1
	}
	s.lw = w
}

// Clear fills the rectangle with the background colour and drops any pending
// path.
func (s *Surface) Clear() {
	s.d.fill(s.r, s.bg)
	s.path = s.path[:0]
}

func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, []point{{x, y}})
}

// LineTo extends the current subpath. Without one it starts a subpath at (x, y).
func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], point{x, y})
}

// Stroke draws every pending subpath and starts a new path.
func (s *Surface) Stroke() {
	xmax := float64(s.r.Dx() - 1)
	ymax := float64(s.r.Dy() - 1)
	for _, sub := range s.path {
		if len(sub) == 1 {
			p := sub[0]
			if finite(p.x) && finite(p.y) && p.x >= 0 && p.y >= 0 && p.x <= xmax && p.y <= ymax {
				s.dot(roundInt(p.x), roundInt(p.y))
			}
			continue
		}
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			if !finite(a.x) || !finite(a.y) || !finite(b.x) || !finite(b.y) {
				continue
			}
			x0, y0, x1, y1, ok := clipLineToRect(a.x, a.y, b.x, b.y, 0, 0, xmax, ymax)
			if !ok {
				continue
			}
			bresenham(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), s.dot)
		}
	}
	s.path = s.path[:0]
}

// dot paints a lw x lw square brush centred on the local pixel (x, y).
func (s *Surface) dot(x, y int) {
	px := s.r.Min.X + x - s.lw/2
	py := s.r.Min.Y + y - s.lw/2
	if s.lw == 1 {
		if image.Pt(px, py).In(s.r) {
			s.d.SetPixel(int16(px), int16(py), s.fg)
		}
		return
	}
	s.d.fill(image.Rect(px, py, px+s.lw, py+s.lw).Intersect(s.r), s.fg)
}
