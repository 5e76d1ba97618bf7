//go:build !cgo

package hal

// hostKeyboard never produces events without the window backend. Headless runs
// drive the app through its configuration only.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
