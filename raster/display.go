// Package raster draws paths and text into an RGB565 framebuffer.
package raster

import (
	"image"
	"image/color"

	"zwplot/hal"

	"tinygo.org/x/drivers"
)

// Display adapts a hal.Framebuffer to drivers.Displayer so tinyfont and tinyterm
// can draw into it.
type Display struct {
	fb hal.Framebuffer
}

func NewDisplay(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Framebuffer() hal.Framebuffer { return d.fb }

func (d *Display) Bounds() image.Rectangle {
	if d.fb == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, d.fb.Width(), d.fb.Height())
}

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// At returns the colour stored at (x, y), expanded from RGB565.
func (d *Display) At(x, y int) color.RGBA {
	if d.fb == nil || x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return color.RGBA{}
	}
	buf := d.fb.Buffer()
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return color.RGBA{}
	}
	p := uint16(buf[off]) | uint16(buf[off+1])<<8
	return color.RGBA{
		R: uint8(((p >> 11) & 0x1F) * 255 / 31),
		G: uint8(((p >> 5) & 0x3F) * 255 / 63),
		B: uint8((p & 0x1F) * 255 / 31),
		A: 0xFF,
	}
}

func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fill(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), c)
	return nil
}

func (d *Display) fill(r image.Rectangle, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return
	}
	if rf, ok := d.fb.(hal.RectFiller); ok {
		rf.FillRectRGB(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), c.R, c.G, c.B)
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// SetScroll is a no-op: the framebuffer has no hardware scroll.
func (d *Display) SetScroll(line int16) {
	_ = line
}

// subDisplay is a window onto r. Its origin is r's top-left corner and pixels
// outside r are dropped.
type subDisplay struct {
	base *Display
	r    image.Rectangle
}

func (d subDisplay) Size() (x, y int16) { return int16(d.r.Dx()), int16(d.r.Dy()) }

func (d subDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= d.r.Dx() || int(y) >= d.r.Dy() {
		return
	}
	d.base.SetPixel(int16(d.r.Min.X)+x, int16(d.r.Min.Y)+y, c)
}

func (d subDisplay) Display() error { return d.base.Display() }

func (d subDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Add(d.r.Min)
	d.base.fill(r.Intersect(d.r), c)
	return nil
}

func (d subDisplay) SetRotation(rotation drivers.Rotation) error {
	return d.base.SetRotation(rotation)
}

func (d subDisplay) SetScroll(line int16) { d.base.SetScroll(line) }

// Sub returns a displayer whose coordinates start at r's top-left corner and
// which only draws inside r.
func (d *Display) Sub(r image.Rectangle) Displayer {
	return subDisplay{base: d, r: r.Intersect(d.Bounds())}
}

// Displayer is a drivers.Displayer that can also fill, scroll and rotate, as
// tinyterm requires.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}
