package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time      { return c.t }
func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }
func newFakeClock() *fakeClock           { return &fakeClock{t: time.Unix(1000, 0)} }

func TestTimerRunsDueCallbacksInOrder(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.now)

	var order []string
	timer.Schedule(func() { order = append(order, "late") }, 300*time.Millisecond)
	timer.Schedule(func() { order = append(order, "early") }, 100*time.Millisecond)
	timer.Schedule(func() { order = append(order, "early-2") }, 100*time.Millisecond)

	if n := timer.Advance(); n != 0 {
		t.Fatalf("advance before due ran %d callbacks", n)
	}
	clock.add(150 * time.Millisecond)
	if n := timer.Advance(); n != 2 {
		t.Fatalf("advance ran %d callbacks, want 2", n)
	}
	clock.add(time.Second)
	timer.Advance()

	want := []string{"early", "early-2", "late"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if timer.Pending() != 0 {
		t.Fatalf("pending = %d after all callbacks ran", timer.Pending())
	}
}

func TestTimerDefersCallbacksScheduledDuringAdvance(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock.now)

	runs := 0
	var tick func()
	tick = func() {
		runs++
		timer.Schedule(tick, 0)
	}
	timer.Schedule(tick, 0)

	if n := timer.Advance(); n != 1 {
		t.Fatalf("advance ran %d callbacks, want 1", n)
	}
	if runs != 1 || timer.Pending() != 1 {
		t.Fatalf("runs=%d pending=%d, want 1 and 1", runs, timer.Pending())
	}
	timer.Advance()
	if runs != 2 {
		t.Fatalf("runs = %d, want 2", runs)
	}
}

func TestTimerIgnoresNilCallback(t *testing.T) {
	timer := NewTimer(nil)
	timer.Schedule(nil, 0)
	if timer.Pending() != 0 {
		t.Fatalf("nil callback was queued")
	}
}
