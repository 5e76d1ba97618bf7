//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	Zoom   int
}

// RunWindow reports ErrNotImplemented: the ebiten backend needs cgo. Use
// -headless instead.
func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return fmt.Errorf("%w: window mode requires cgo (build with CGO_ENABLED=1)", ErrNotImplemented)
}
