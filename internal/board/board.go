// Package board owns the grid shown on screen and the timed simulation loop
// that advances it.
//
// A Board is not safe for concurrent use. Front-ends call it, and drive its
// scheduler, from a single loop goroutine.
package board

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// State is the simulation loop state.
type State int

const (
	// Stopped means no generation is pending.
	Stopped State = iota
	// Running means the loop reschedules itself after each generation.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configures a Board.
type Options struct {
	Rows    int
	Cols    int
	Delay   time.Duration
	Density float64
	Seed    int64
}

// DefaultOptions returns the standard 50x50 board settings.
func DefaultOptions() Options {
	return Options{
		Rows:    life.Rows,
		Cols:    life.Cols,
		Delay:   life.Speed,
		Density: life.Density,
		Seed:    time.Now().UnixNano(),
	}
}

// Board holds the current grid snapshot and the running flag.
type Board struct {
	rows, cols int
	delay      time.Duration
	density    float64

	sched core.Scheduler
	rng   *core.RNG

	grid       *core.Grid
	generation int

	running bool
	epoch   uint64
}

// New constructs a stopped Board with an empty grid.
func New(sched core.Scheduler, opts Options) *Board {
	def := DefaultOptions()
	if opts.Rows <= 0 {
		opts.Rows = def.Rows
	}
	if opts.Cols <= 0 {
		opts.Cols = def.Cols
	}
	if opts.Delay <= 0 {
		opts.Delay = def.Delay
	}
	if opts.Density < 0 || opts.Density > 1 {
		opts.Density = def.Density
	}
	return &Board{
		rows:    opts.Rows,
		cols:    opts.Cols,
		delay:   opts.Delay,
		density: opts.Density,
		sched:   sched,
		rng:     core.NewRNG(opts.Seed),
		grid:    life.Empty(opts.Rows, opts.Cols),
	}
}

// Grid returns the current snapshot. Callers must not modify it.
func (b *Board) Grid() *core.Grid { return b.grid }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{Rows: b.rows, Cols: b.cols} }

// Running reports whether the loop is active.
func (b *Board) Running() bool { return b.running }

// State returns the loop state.
func (b *Board) State() State {
	if b.running {
		return Running
	}
	return Stopped
}

// Generation returns the number of steps since the last reseed or clear.
func (b *Board) Generation() int { return b.generation }

// Population returns the number of live cells.
func (b *Board) Population() int { return b.grid.Population() }

// Toggle flips a single cell.
func (b *Board) Toggle(row, col int) {
	b.grid = life.Toggle(b.grid, row, col)
}

// Randomize replaces the grid with a random one.
func (b *Board) Randomize() {
	b.grid = life.Random(b.rng, b.rows, b.cols, b.density)
	b.generation = 0
}

// Clear replaces the grid with an empty one.
func (b *Board) Clear() {
	b.grid = life.Empty(b.rows, b.cols)
	b.generation = 0
}

// StepOnce applies one generation. It does nothing while running.
func (b *Board) StepOnce() {
	if b.running {
		return
	}
	b.advance()
}

// ToggleRunning starts a stopped board and stops a running one.
func (b *Board) ToggleRunning() {
	if b.running {
		b.Stop()
		return
	}
	b.Start()
}

// Start switches to Running and applies the first generation immediately.
func (b *Board) Start() {
	if b.running {
		return
	}
	b.running = true
	b.epoch++
	b.tick(b.epoch)
}

// Stop switches to Stopped. A pending generation sees the cleared flag when
// it wakes and ends the chain.
func (b *Board) Stop() {
	b.running = false
}

// tick runs one loop iteration for the chain started under epoch.
func (b *Board) tick(epoch uint64) {
	if !b.running || epoch != b.epoch {
		return
	}
	b.advance()
	b.sched.Schedule(func() { b.tick(epoch) }, b.delay)
}

func (b *Board) advance() {
	b.grid = life.Step(b.grid)
	b.generation++
}
