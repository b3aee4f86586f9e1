package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Grid stores a 2D grid of binary cells in row-major order. A Grid handed
// out by this package is never modified afterwards; updates build a new one.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Build allocates a grid and fills each cell from fn, one row after another.
func Build(rows, cols int, fn func(row, col int) uint8) *Grid {
	g := NewGrid(rows, cols)
	g.fillRows(0, g.Rows, fn)
	return g
}

// BuildParallel is Build with rows split into bands that are filled
// concurrently. fn must be safe for concurrent use.
func BuildParallel(rows, cols int, fn func(row, col int) uint8) *Grid {
	g := NewGrid(rows, cols)

	var (
		eg      errgroup.Group
		workers = min(runtime.NumCPU(), g.Rows)
		band    = (g.Rows + workers - 1) / workers
	)
	for start := 0; start < g.Rows; start += band {
		end := min(start+band, g.Rows)
		eg.Go(func() error {
			g.fillRows(start, end, fn)
			return nil
		})
	}
	// workers never fail
	_ = eg.Wait()
	return g
}

func (g *Grid) fillRows(start, end int, fn func(row, col int) uint8) {
	for row := start; row < end; row++ {
		base := row * g.Cols
		for col := 0; col < g.Cols; col++ {
			if fn(row, col) != 0 {
				g.data[base+col] = 1
			}
		}
	}
}

// Cells exposes the backing slice for read-only use by renderers.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col) after wrapping.
func (g *Grid) Index(row, col int) int {
	row, col = g.Wrap(row, col)
	return row*g.Cols + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the cell value at (row, col), wrapping out-of-range coordinates.
func (g *Grid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.At(row, col) == 1 }

// With returns a copy of g with the cell at (row, col) set to v (0 or 1).
func (g *Grid) With(row, col int, v uint8) *Grid {
	next := g.Clone()
	var cell uint8
	if v != 0 {
		cell = 1
	}
	next.data[g.Index(row, col)] = cell
	return next
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: data}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil || g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}
