// Package render draws sample sequences onto path-based surfaces.
package render

import "image/color"

// Surface is a path sink in pixel coordinates.
type Surface interface {
	Clear()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	Width() int
	Height() int
}

// Styler is implemented by surfaces that support stroke colour and width.
type Styler interface {
	SetStrokeColor(c color.RGBA)
	SetLineWidth(w int)
}

var (
	ColorGrid  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	ColorAxis  = color.RGBA{A: 0xFF}
	ColorCurve = color.RGBA{R: 0xFF, A: 0xFF}
)

const (
	GridDivisions = 20
	CurveWidth    = 2
)

// Style is the stroke applied to curves.
type Style struct {
	Color color.RGBA
	Width int
}

// DefaultStyle is a red stroke two pixels wide.
func DefaultStyle() Style { return Style{Color: ColorCurve, Width: CurveWidth} }

func setStyle(s Surface, c color.RGBA, w int) {
	if st, ok := s.(Styler); ok {
		st.SetStrokeColor(c)
		st.SetLineWidth(w)
	}
}
