package app

import (
	"image"
	"image/color"
	"strings"

	"zwplot/raster"

	"tinygo.org/x/tinyterm"
)

// Console is a status log strip. It keeps its own history and redraws the
// newest lines through a fresh terminal, so it never depends on display scroll.
type Console struct {
	d     *raster.Display
	r     image.Rectangle
	font  raster.Font
	rows  int
	cols  int
	lines []string
}

func NewConsole(d *raster.Display, r image.Rectangle, font raster.Font) *Console {
	c := &Console{d: d, r: r, font: font}
	if font.Height > 0 {
		c.rows = r.Dy() / int(font.Height)
	}
	c.cols = font.Cols(r.Dx())
	return c
}

// Println appends s, one entry per line, and redraws.
func (c *Console) Println(s string) {
	for _, line := range strings.Split(s, "\n") {
		c.lines = append(c.lines, line)
	}
	if limit := 4 * c.rows; limit > 0 && len(c.lines) > limit {
		c.lines = append(c.lines[:0], c.lines[len(c.lines)-c.rows:]...)
	}
	c.Redraw()
}

// Lines returns the lines currently on screen, oldest first.
func (c *Console) Lines() []string {
	if c.rows <= 0 {
		return nil
	}
	start := 0
	if len(c.lines) > c.rows {
		start = len(c.lines) - c.rows
	}
	out := make([]string, 0, len(c.lines)-start)
	for _, l := range c.lines[start:] {
		out = append(out, clip(l, c.cols-1))
	}
	return out
}

func (c *Console) Redraw() {
	c.d.FillRectangle(int16(c.r.Min.X), int16(c.r.Min.Y), int16(c.r.Dx()), int16(c.r.Dy()), color.RGBA{A: 0xFF})
	if c.rows <= 0 || c.cols <= 1 {
		return
	}
	term := tinyterm.NewTerminal(c.d.Sub(c.r))
	term.Configure(&tinyterm.Config{
		Font:       c.font.Face,
		FontHeight: c.font.Height,
		FontOffset: c.font.Offset,
	})
	term.Write([]byte(strings.Join(c.Lines(), "\n")))
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
