package board

import (
	"testing"
	"time"

	"lifegrid/internal/core"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestBoard() (*Board, *core.Timer, *clock) {
	c := &clock{t: time.Unix(0, 0)}
	timer := core.NewTimer(c.now)
	b := New(timer, Options{Rows: 10, Cols: 10, Delay: 500 * time.Millisecond, Density: 0.3, Seed: 1})
	return b, timer, c
}

// blinker places a period-2 oscillator so every generation changes the grid.
func blinker(b *Board) {
	b.Toggle(4, 3)
	b.Toggle(4, 4)
	b.Toggle(4, 5)
}

func TestNewBoardIsStoppedAndEmpty(t *testing.T) {
	b, timer, _ := newTestBoard()
	if b.State() != Stopped || b.Running() {
		t.Fatalf("new board state = %v, want stopped", b.State())
	}
	if b.Population() != 0 {
		t.Fatalf("new board population = %d", b.Population())
	}
	if b.Size() != (core.Size{Rows: 10, Cols: 10}) {
		t.Fatalf("size = %+v", b.Size())
	}
	if timer.Pending() != 0 {
		t.Fatalf("new board scheduled work")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	b := New(core.NewTimer(nil), Options{Density: 5})
	if b.Size() != (core.Size{Rows: 50, Cols: 50}) {
		t.Fatalf("default size = %+v, want 50x50", b.Size())
	}
	if b.delay != 500*time.Millisecond || b.density != 0.3 {
		t.Fatalf("defaults delay=%v density=%v", b.delay, b.density)
	}
}

func TestToggleReplacesGrid(t *testing.T) {
	b, _, _ := newTestBoard()
	before := b.Grid()
	b.Toggle(2, 3)
	if b.Grid() == before {
		t.Fatalf("toggle kept the same grid pointer")
	}
	if before.Alive(2, 3) || !b.Grid().Alive(2, 3) {
		t.Fatalf("toggle did not copy-on-write")
	}
}

func TestStartStepsImmediatelyAndSchedules(t *testing.T) {
	b, timer, c := newTestBoard()
	blinker(b)
	start := b.Grid()

	b.Start()
	if b.State() != Running {
		t.Fatalf("state = %v after start", b.State())
	}
	if b.Generation() != 1 || b.Grid() == start {
		t.Fatalf("start did not apply the first generation")
	}
	if timer.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", timer.Pending())
	}

	c.t = c.t.Add(499 * time.Millisecond)
	timer.Advance()
	if b.Generation() != 1 {
		t.Fatalf("generation advanced before the delay elapsed")
	}
	c.t = c.t.Add(time.Millisecond)
	timer.Advance()
	if b.Generation() != 2 {
		t.Fatalf("generation = %d after delay, want 2", b.Generation())
	}
	if !b.Grid().Equal(start) {
		t.Fatalf("blinker should return to its start after two generations")
	}
	if timer.Pending() != 1 {
		t.Fatalf("loop did not reschedule itself")
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	b, timer, _ := newTestBoard()
	b.Start()
	b.Start()
	if b.Generation() != 1 || timer.Pending() != 1 {
		t.Fatalf("second start: generation=%d pending=%d", b.Generation(), timer.Pending())
	}
}

func TestStopEndsChainOnNextWake(t *testing.T) {
	b, timer, c := newTestBoard()
	blinker(b)
	b.Start()
	b.Stop()
	if b.State() != Stopped {
		t.Fatalf("state = %v after stop", b.State())
	}
	if timer.Pending() != 1 {
		t.Fatalf("stop should leave the pending callback in place")
	}

	c.t = c.t.Add(time.Second)
	timer.Advance()
	if b.Generation() != 1 {
		t.Fatalf("generation = %d, stopped loop kept stepping", b.Generation())
	}
	if timer.Pending() != 0 {
		t.Fatalf("stopped loop rescheduled itself")
	}
}

func TestRestartBeforePendingWakeKeepsOneChain(t *testing.T) {
	b, timer, c := newTestBoard()
	blinker(b)
	b.Start()
	b.Stop()
	b.Start()
	if b.Generation() != 2 {
		t.Fatalf("generation = %d after restart, want 2", b.Generation())
	}

	for i := 0; i < 5; i++ {
		c.t = c.t.Add(500 * time.Millisecond)
		timer.Advance()
		if timer.Pending() != 1 {
			t.Fatalf("iteration %d: pending = %d, want a single live chain", i, timer.Pending())
		}
	}
	if b.Generation() != 7 {
		t.Fatalf("generation = %d, want 7", b.Generation())
	}
}

func TestToggleRunning(t *testing.T) {
	b, _, _ := newTestBoard()
	b.ToggleRunning()
	if !b.Running() {
		t.Fatalf("toggle from stopped should start")
	}
	b.ToggleRunning()
	if b.Running() {
		t.Fatalf("toggle from running should stop")
	}
}

func TestStepOnceOnlyWhenStopped(t *testing.T) {
	b, timer, _ := newTestBoard()
	blinker(b)
	b.StepOnce()
	if b.Generation() != 1 || timer.Pending() != 0 {
		t.Fatalf("step once: generation=%d pending=%d", b.Generation(), timer.Pending())
	}
	b.Start()
	b.StepOnce()
	if b.Generation() != 2 {
		t.Fatalf("step once while running changed generation to %d", b.Generation())
	}
}

func TestRandomizeAndClearResetGeneration(t *testing.T) {
	b, _, _ := newTestBoard()
	b.Randomize()
	first := b.Grid()
	if b.Population() == 0 {
		t.Fatalf("randomize produced an empty grid")
	}
	b.StepOnce()
	b.Randomize()
	if b.Generation() != 0 {
		t.Fatalf("randomize kept generation %d", b.Generation())
	}
	if b.Grid() == first {
		t.Fatalf("randomize reused the previous grid")
	}

	b.StepOnce()
	b.Clear()
	if b.Population() != 0 || b.Generation() != 0 {
		t.Fatalf("clear left population=%d generation=%d", b.Population(), b.Generation())
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Stopped.String() != "stopped" {
		t.Fatalf("unexpected state names %q %q", Running, Stopped)
	}
}
