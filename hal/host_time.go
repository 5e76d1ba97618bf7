package hal

import "time"

// hostTime publishes the milliseconds elapsed since the first step. The
// channel holds only the newest reading; a slow reader skips stale ones.
type hostTime struct {
	ch    chan uint64
	start time.Time
	now   func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) advance() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	ms := uint64(now.Sub(t.start) / time.Millisecond)
	for {
		select {
		case t.ch <- ms:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
