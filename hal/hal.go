package hal

import "errors"

// Logger writes newline-delimited log lines. The app formats every line as
// "zwplot: <event> k=v ..." and mirrors it to the on-screen console.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is the pixel buffer the plotter draws into: the z-plane and
// w-plane side by side, their titles, the input line and the status console.
// Present marks the end of one frame; a host may skip redrawing until it is
// called again.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// RectFiller is implemented by framebuffers that can fill a clipped
// rectangle themselves. Plane clears use it when available.
type RectFiller interface {
	FillRectRGB(x, y, w, h int, r, g, b uint8)
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and a
// non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (nil when the host has none).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a millisecond clock. Each value is the time elapsed since the
// host started stepping the app.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the only contact point between the plotter and the host: the window
// runner, the headless runner and tests each provide one.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
