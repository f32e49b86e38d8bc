package tonemix

import (
	"sync"
	"time"
)

// Debouncer coalesces a rapid burst of writes into a single call: the
// last value set wins, delivered once no new value has arrived for the
// quiet period. Used to persist the share string without writing on
// every slider tick.
type Debouncer struct {
	mu     sync.Mutex
	quiet  time.Duration
	fn     func(string)
	timer  *time.Timer
	value  string
	armed  bool
	closed bool
}

// NewDebouncer creates a debouncer delivering values to fn after quiet.
func NewDebouncer(quiet time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{quiet: quiet, fn: fn}
}

// Set records a value and restarts the quiet period.
func (b *Debouncer) Set(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.value = value
	b.armed = true
	if b.timer == nil {
		b.timer = time.AfterFunc(b.quiet, b.fire)
		return
	}
	b.timer.Stop()
	b.timer.Reset(b.quiet)
}

func (b *Debouncer) fire() {
	b.mu.Lock()
	if b.closed || !b.armed {
		b.mu.Unlock()
		return
	}
	value := b.value
	b.armed = false
	b.mu.Unlock()

	b.fn(value)
}

// Flush delivers a pending value immediately instead of waiting out the
// quiet period.
func (b *Debouncer) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.mu.Unlock()
	b.fire()
}

// Close drops any pending value and stops the timer. No delivery happens
// after Close returns.
func (b *Debouncer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.armed = false
	if b.timer != nil {
		b.timer.Stop()
	}
}
