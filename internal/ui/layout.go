// Package ui lays out the button bar and grid shared by the front-ends.
package ui

// Button identifies a toolbar button.
type Button int

const (
	// ButtonNone means no button was hit.
	ButtonNone Button = iota
	// ButtonRun is the start/stop button.
	ButtonRun
	// ButtonRandom reseeds the grid.
	ButtonRandom
	// ButtonClear empties the grid.
	ButtonClear
)

var buttonOrder = []Button{ButtonRun, ButtonRandom, ButtonClear}

// Label returns the caption for b given the current running state.
func Label(b Button, running bool) string {
	switch b {
	case ButtonRun:
		if running {
			return "stop"
		}
		return "start"
	case ButtonRandom:
		return "random"
	case ButtonClear:
		return "clear"
	}
	return ""
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// LayoutOptions describes the geometry in screen units (pixels or terminal
// columns/rows).
type LayoutOptions struct {
	Rows, Cols int

	CellW, CellH int

	ButtonW, ButtonH int
	Padding          int
}

// Layout places the toolbar above the grid.
type Layout struct {
	opts    LayoutOptions
	bar     int
	buttons []Rect
}

// NewLayout computes button and grid placement.
func NewLayout(opts LayoutOptions) Layout {
	if opts.CellW <= 0 {
		opts.CellW = 1
	}
	if opts.CellH <= 0 {
		opts.CellH = 1
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	l := Layout{opts: opts, bar: opts.ButtonH + 2*opts.Padding}
	x := opts.Padding
	for range buttonOrder {
		l.buttons = append(l.buttons, Rect{X: x, Y: opts.Padding, W: opts.ButtonW, H: opts.ButtonH})
		x += opts.ButtonW + opts.Padding
	}
	return l
}

// Size returns the total width and height needed.
func (l Layout) Size() (int, int) {
	w := l.opts.Cols * l.opts.CellW
	if bw := l.buttonsRight(); bw > w {
		w = bw
	}
	return w, l.bar + l.opts.Rows*l.opts.CellH
}

func (l Layout) buttonsRight() int {
	if len(l.buttons) == 0 {
		return 0
	}
	last := l.buttons[len(l.buttons)-1]
	return last.X + last.W + l.opts.Padding
}

// BarHeight returns the toolbar height; the grid starts below it.
func (l Layout) BarHeight() int { return l.bar }

// StatusX returns the x offset where the status text starts.
func (l Layout) StatusX() int { return l.buttonsRight() }

// ButtonRect returns the rectangle of b.
func (l Layout) ButtonRect(b Button) Rect {
	for i, o := range buttonOrder {
		if o == b {
			return l.buttons[i]
		}
	}
	return Rect{}
}

// Order returns the buttons in display order.
func (l Layout) Order() []Button { return buttonOrder }

// ButtonAt returns the button under (x, y), or ButtonNone.
func (l Layout) ButtonAt(x, y int) Button {
	for i, r := range l.buttons {
		if r.Contains(x, y) {
			return buttonOrder[i]
		}
	}
	return ButtonNone
}

// CellAt maps (x, y) to a grid coordinate.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	y -= l.bar
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/l.opts.CellH, x/l.opts.CellW
	if row >= l.opts.Rows || col >= l.opts.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect returns the screen rectangle of (row, col).
func (l Layout) CellRect(row, col int) Rect {
	return Rect{
		X: col * l.opts.CellW,
		Y: l.bar + row*l.opts.CellH,
		W: l.opts.CellW,
		H: l.opts.CellH,
	}
}
