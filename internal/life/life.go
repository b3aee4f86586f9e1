// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"time"

	"lifegrid/internal/core"
)

const (
	// Rows is the default grid height.
	Rows = 50
	// Cols is the default grid width.
	Cols = 50
	// Density is the default probability that a random cell starts alive.
	Density = 0.3
	// Speed is the default delay between generations while running.
	Speed = 500 * time.Millisecond
)

var offsets = [8][2]int{
	{0, 1},
	{0, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{-1, -1},
	{1, 0},
	{-1, 0},
}

// Empty returns an all-dead grid.
func Empty(rows, cols int) *core.Grid {
	return core.NewGrid(rows, cols)
}

// Random returns a grid where each cell is alive with probability density.
func Random(rng *core.RNG, rows, cols int, density float64) *core.Grid {
	return core.Build(rows, cols, func(int, int) uint8 {
		if rng.Chance(density) {
			return 1
		}
		return 0
	})
}

// Toggle returns a copy of g with the cell at (row, col) flipped.
func Toggle(g *core.Grid, row, col int) *core.Grid {
	return g.With(row, col, 1-g.At(row, col))
}

// Neighbors counts live cells among the eight toroidal neighbors of (row, col).
func Neighbors(g *core.Grid, row, col int) int {
	n := 0
	for _, off := range offsets {
		r := (row + off[0] + g.Rows) % g.Rows
		c := (col + off[1] + g.Cols) % g.Cols
		n += int(g.At(r, c))
	}
	return n
}

// Next returns the state of a cell in the following generation.
func Next(cell uint8, neighbors int) uint8 {
	switch {
	case neighbors < 2 || neighbors > 3:
		return 0
	case cell == 0 && neighbors == 3:
		return 1
	}
	return cell
}

// Step advances g by one generation and returns the result. g is not modified.
func Step(g *core.Grid) *core.Grid {
	return core.BuildParallel(g.Rows, g.Cols, func(row, col int) uint8 {
		return Next(g.At(row, col), Neighbors(g, row, col))
	})
}
