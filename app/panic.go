package app

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"
)

// panicked logs the panic with its stack, paints it over the whole framebuffer
// and halts the app. The window stays open on the panic screen.
func (a *App) panicked(value any, stack []byte) {
	a.halted = true

	lines := []string{
		"zwplot panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf("zwplot: panic value=%q", fmt.Sprint(value)))
		for _, line := range lines[2:] {
			a.log.WriteLineString(line)
		}
	}

	fb := a.fb
	fb.ClearRGB(255, 255, 255)

	fontWidth := int(a.font.Width)
	fontHeight := int(a.font.Height)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	bounds := image.Rect(0, 0, fb.Width(), fb.Height())
	cols := fb.Width() / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			a.d.DrawText(a.font, 0, y, chunk, fg, bounds, cols)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
