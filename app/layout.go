package app

import "image"

const (
	pad         = 4
	consoleRows = 4
	// DefaultPlaneSize is the side of each square plane in pixels.
	DefaultPlaneSize = 240
)

// layout splits the framebuffer into the two planes, their title rows, the
// input line and the status console.
type layout struct {
	ZTitle, WTitle image.Rectangle
	Z, W           image.Rectangle
	Input          image.Rectangle
	Console        image.Rectangle
}

// FramebufferSize returns the framebuffer size that fits two planes of size
// plane pixels each.
func FramebufferSize(plane int, fontHeight int) (w, h int) {
	if plane <= 0 {
		plane = DefaultPlaneSize
	}
	w = 3*pad + 2*plane
	h = pad + fontHeight + 2 + plane + pad + fontHeight + 2 + consoleRows*fontHeight + pad
	return w, h
}

func computeLayout(w, h, fontHeight int) layout {
	var l layout
	top := pad + fontHeight + 2
	bottom := pad + fontHeight + 2 + consoleRows*fontHeight + pad
	size := (w - 3*pad) / 2
	if avail := h - top - bottom; avail < size {
		size = avail
	}
	if size < 1 {
		size = 1
	}

	l.ZTitle = image.Rect(pad, pad, pad+size, pad+fontHeight)
	l.WTitle = image.Rect(2*pad+size, pad, 2*pad+2*size, pad+fontHeight)
	l.Z = image.Rect(pad, top, pad+size, top+size)
	l.W = image.Rect(2*pad+size, top, 2*pad+2*size, top+size)

	y := top + size + pad
	l.Input = image.Rect(pad, y, w-pad, y+fontHeight)
	y += fontHeight + 2
	l.Console = image.Rect(pad, y, w-pad, y+consoleRows*fontHeight)
	return l
}
