// Package debounce runs a function once a key has been quiet for a delay.
package debounce

import (
	"sync"
	"time"

	"github.com/uber/projectd/src/projectd/internal/clock"
)

// Debouncer schedules at most one pending call per key.
// Triggering a key again cancels the pending call and restarts its delay.
type Debouncer struct {
	clock clock.Clock

	mu      sync.Mutex
	pending map[string]*entry
	seq     uint64
	stopped bool
}

type entry struct {
	timer clock.Timer
	seq   uint64
}

// New creates a Debouncer using the given clock.
func New(c clock.Clock) *Debouncer {
	return &Debouncer{
		clock:   c,
		pending: make(map[string]*entry),
	}
}

// Trigger schedules fn to run after delay, replacing any call pending for key.
// fn runs on a timer goroutine.
func (d *Debouncer) Trigger(key string, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if existing, ok := d.pending[key]; ok {
		existing.timer.Stop()
	}

	d.seq++
	seq := d.seq
	e := &entry{seq: seq}
	d.pending[key] = e
	e.timer = d.clock.AfterFunc(delay, func() {
		d.mu.Lock()
		current, ok := d.pending[key]
		if !ok || current.seq != seq {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()

		fn()
	})
}

// Cancel drops the call pending for key. It reports whether one was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(d.pending, key)
	return true
}

// Pending reports whether a call is scheduled for key.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Stop cancels every pending call. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, e := range d.pending {
		e.timer.Stop()
		delete(d.pending, key)
	}
	d.stopped = true
}
