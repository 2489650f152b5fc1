package source

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of file events into a single reload signal.
type debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fire  chan struct{}
}

func newDebouncer(delay time.Duration) *debouncer {
	if delay < 0 {
		delay = 0
	}
	return &debouncer{delay: delay, fire: make(chan struct{}, 1)}
}

// trigger restarts the quiet period; the signal fires once it elapses.
func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.delay == 0 {
		d.signal()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.signal)
}

func (d *debouncer) signal() {
	select {
	case d.fire <- struct{}{}:
	default:
	}
}

// C delivers one value per settled burst.
func (d *debouncer) C() <-chan struct{} {
	return d.fire
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
