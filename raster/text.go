package raster

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is a tinyfont face together with its fixed cell metrics.
type Font struct {
	Face   *tinyfont.Font
	Width  int16
	Height int16
	// Offset is the distance from the top of a cell to the baseline.
	Offset int16
}

// DefaultFont returns the Proggy TinySZ 8pt face.
func DefaultFont() Font {
	f := Font{Face: &proggy.TinySZ8pt7b, Height: 10, Offset: 6}
	_, outboxWidth := tinyfont.LineWidth(f.Face, "0")
	f.Width = int16(outboxWidth)
	return f
}

// Cols returns how many cells fit in px pixels.
func (f Font) Cols(px int) int {
	if f.Width <= 0 {
		return 0
	}
	return px / int(f.Width)
}

// DrawText draws s with its cell's top-left corner at (x, y), clipped to clip
// and to at most cols cells. It returns the number of cells drawn.
func (d *Display) DrawText(f Font, x, y int, s string, fg color.RGBA, clip image.Rectangle, cols int) int {
	clip = clip.Intersect(d.Bounds())
	sub := d.Sub(clip)
	x -= clip.Min.X
	y -= clip.Min.Y
	n := 0
	for _, r := range s {
		if cols >= 0 && n >= cols {
			break
		}
		tinyfont.DrawChar(sub, f.Face, int16(x+n*int(f.Width)), int16(y)+f.Offset, r, fg)
		n++
	}
	return n
}

// Label draws s at the local position (x, y) of the surface, clipped to it.
func (s *Surface) Label(f Font, x, y int, text string, fg color.RGBA) {
	s.d.DrawText(f, s.r.Min.X+x, s.r.Min.Y+y, text, fg, s.r, -1)
}
