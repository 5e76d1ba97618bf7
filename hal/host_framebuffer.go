package hal

import (
	"sync"
	"sync/atomic"
)

// hostFramebuffer is the plotter's single RGB565 canvas. The app lays out the
// two planes, the input line and the console as regions of it; the window
// backend reads it only through snapshotRGB565.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	frames atomic.Uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

// NewFramebuffer returns an in-memory RGB565 framebuffer for tests and tools
// that draw without a host.
func NewFramebuffer(width, height int) Framebuffer {
	return newHostFramebuffer(width, height)
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present marks the current contents as a finished frame.
func (f *hostFramebuffer) Present() error {
	f.frames.Add(1)
	return nil
}

// Frames returns how many frames have been presented.
func (f *hostFramebuffer) Frames() uint64 { return f.frames.Load() }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.FillRectRGB(0, 0, f.width, f.height, r, g, b)
}

// FillRectRGB fills the w x h rectangle at (x, y), clipped to the buffer.
func (f *hostFramebuffer) FillRectRGB(x, y, w, h int, r, g, b uint8) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.width), min(y+h, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	f.mu.Lock()
	defer f.mu.Unlock()
	for py := y0; py < y1; py++ {
		row := f.buf[py*f.stride+x0*2 : py*f.stride+x1*2]
		for i := 0; i < len(row); i += 2 {
			row[i] = lo
			row[i+1] = hi
		}
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
