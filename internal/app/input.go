package app

import (
	"fmt"

	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/ui"
)

const (
	buttonW = 80
	buttonH = 24
	padding = 4
)

// NewLayout returns the windowed layout for a grid with cells scale pixels wide.
func NewLayout(size core.Size, scale int) ui.Layout {
	return ui.NewLayout(ui.LayoutOptions{
		Rows:    size.Rows,
		Cols:    size.Cols,
		CellW:   scale,
		CellH:   scale,
		ButtonW: buttonW,
		ButtonH: buttonH,
		Padding: padding,
	})
}

// Press applies a toolbar button to the board.
func Press(b *board.Board, btn ui.Button) {
	switch btn {
	case ui.ButtonRun:
		b.ToggleRunning()
	case ui.ButtonRandom:
		b.Randomize()
	case ui.ButtonClear:
		b.Clear()
	}
}

// Click routes a click at (x, y) to a button or a cell. It reports whether
// the click hit anything.
func Click(b *board.Board, layout ui.Layout, x, y int) bool {
	if btn := layout.ButtonAt(x, y); btn != ui.ButtonNone {
		Press(b, btn)
		return true
	}
	if row, col, ok := layout.CellAt(x, y); ok {
		b.Toggle(row, col)
		return true
	}
	return false
}

// Status formats the status line shown next to the buttons.
func Status(b *board.Board) string {
	return fmt.Sprintf("gen %d  pop %d", b.Generation(), b.Population())
}
