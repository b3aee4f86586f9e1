package core

import (
	"sort"
	"time"
)

// Scheduler defers fn until at least delay has elapsed.
type Scheduler interface {
	Schedule(fn func(), delay time.Duration)
}

type timerEntry struct {
	due time.Time
	seq uint64
	fn  func()
}

// Timer is a deferred-callback queue polled by the host loop. Callbacks run
// on the goroutine that calls Advance.
type Timer struct {
	now     func() time.Time
	pending []timerEntry
	seq     uint64
}

// NewTimer constructs a Timer reading the current time from now. A nil now
// uses time.Now.
func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

// Schedule queues fn to run on the first Advance at or after now+delay.
func (t *Timer) Schedule(fn func(), delay time.Duration) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	t.seq++
	t.pending = append(t.pending, timerEntry{due: t.now().Add(delay), seq: t.seq, fn: fn})
}

// Advance runs every callback that is due, in due order, and returns how
// many ran. Callbacks queued while Advance runs wait for the next call.
func (t *Timer) Advance() int {
	if len(t.pending) == 0 {
		return 0
	}
	now := t.now()
	var due, later []timerEntry
	for _, e := range t.pending {
		if e.due.After(now) {
			later = append(later, e)
			continue
		}
		due = append(due, e)
	}
	if len(due) == 0 {
		return 0
	}
	t.pending = later
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, e := range due {
		e.fn()
	}
	return len(due)
}

// Pending returns the number of queued callbacks.
func (t *Timer) Pending() int { return len(t.pending) }
