// Package debounce provides the single-slot deferred-action timer used by UI
// collaborators: the search box re-queries only after a quiet period, and a
// visible notification auto-dismisses unless superseded.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending action. Trigger arms the slot,
// cancelling whatever was pending; there is never a queue of timers.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period. A pending action from
// an earlier Trigger is cancelled first.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending action, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
