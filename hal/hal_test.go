package hal

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"
)

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0},
		{0, 0xFF, 0},
		{0, 0, 0xFF},
		{0xCC, 0xCC, 0xCC},
	}
	for _, tt := range tests {
		r, g, b := rgb888From565(rgb565(tt.r, tt.g, tt.b))
		if absDiff(r, tt.r) > 8 || absDiff(g, tt.g) > 4 || absDiff(b, tt.b) > 8 {
			t.Fatalf("(%d,%d,%d) -> (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestClearAndSnapshot(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.ClearRGB(0xFF, 0, 0)
	img, err := Snapshot(fb)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	c := img.RGBAAt(3, 2)
	if c.R != 0xFF || c.G != 0 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("pixel=%v", c)
	}
}

func TestEncodePNGScale(t *testing.T) {
	fb := NewFramebuffer(5, 2)
	fb.ClearRGB(0, 0xFF, 0)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, fb, 3); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 15 || img.Bounds().Dy() != 6 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	_, g, _, _ := img.At(14, 5).RGBA()
	if g>>8 != 0xFF {
		t.Fatalf("g=%x", g>>8)
	}

	if err := EncodePNG(&buf, fb, 0); err == nil {
		t.Fatalf("scale 0 accepted")
	}
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)
	l.WriteLineString("zwplot: a")
	l.WriteLineBytes([]byte("zwplot: b"))
	if got := buf.String(); got != "zwplot: a\nzwplot: b\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	steps := 0
	var size [2]int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3, Width: 32, Height: 16, Done: func(h HAL) error {
		fb := h.Display().Framebuffer()
		size = [2]int{fb.Width(), fb.Height()}
		return nil
	}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d", steps)
	}
	if size != [2]int{32, 16} {
		t.Fatalf("size=%v", size)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 10})
	if err == nil || !strings.Contains(err.Error(), "canceled") {
		t.Fatalf("err=%v", err)
	}
}

func TestHostTimeKeepsNewest(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.advance()
	now = base.Add(250 * time.Millisecond)
	ht.advance()
	now = base.Add(1200 * time.Millisecond)
	ht.advance()

	if got := <-ht.Ticks(); got != 1200 {
		t.Fatalf("ms=%d", got)
	}
	select {
	case v := <-ht.Ticks():
		t.Fatalf("stale value %d", v)
	default:
	}
}

func TestFillRectClipsAndCountsFrames(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	fb.ClearRGB(0, 0, 0)
	fb.FillRectRGB(2, -1, 5, 2, 0xFF, 0xFF, 0xFF)

	white := rgb565(0xFF, 0xFF, 0xFF)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			off := y*fb.StrideBytes() + x*2
			got := uint16(fb.buf[off]) | uint16(fb.buf[off+1])<<8
			want := uint16(0)
			if x >= 2 && y == 0 {
				want = white
			}
			if got != want {
				t.Fatalf("pixel (%d,%d)=%#04x, want %#04x", x, y, got, want)
			}
		}
	}

	fb.FillRectRGB(10, 10, 2, 2, 0xFF, 0, 0)
	if fb.Frames() != 0 {
		t.Fatalf("frames=%d", fb.Frames())
	}
	_ = fb.Present()
	_ = fb.Present()
	if fb.Frames() != 2 {
		t.Fatalf("frames=%d", fb.Frames())
	}
}
