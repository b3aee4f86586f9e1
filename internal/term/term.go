// Package term runs the board in a terminal using tcell. Each cell is two
// columns wide so the grid looks square.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/ui"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.NewHexColor(0x4455ee))
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	buttonStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	runStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewHexColor(0x4455ee))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// NewLayout returns the terminal layout for a grid of the given size.
func NewLayout(size core.Size) ui.Layout {
	return ui.NewLayout(ui.LayoutOptions{
		Rows:    size.Rows,
		Cols:    size.Cols,
		CellW:   2,
		CellH:   1,
		ButtonW: 8,
		ButtonH: 1,
		Padding: 1,
	})
}

// View binds a board to a tcell screen.
type View struct {
	screen tcell.Screen
	board  *board.Board
	layout ui.Layout

	buttons tcell.ButtonMask
}

// NewView constructs a View. The screen must already be initialized.
func NewView(screen tcell.Screen, b *board.Board) *View {
	return &View{screen: screen, board: b, layout: NewLayout(b.Size())}
}

// Draw paints the toolbar and grid and shows the result.
func (v *View) Draw() {
	v.screen.Clear()
	running := v.board.Running()
	for _, btn := range v.layout.Order() {
		style := buttonStyle
		if btn == ui.ButtonRun && running {
			style = runStyle
		}
		r := v.layout.ButtonRect(btn)
		v.fill(r, style)
		label := ui.Label(btn, running)
		v.text(r.X+(r.W-len(label))/2, r.Y, label, style)
	}
	v.text(v.layout.StatusX()+1, v.layout.ButtonRect(ui.ButtonRun).Y, app.Status(v.board), statusStyle)

	g := v.board.Grid()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			style := deadStyle
			if g.Alive(row, col) {
				style = aliveStyle
			}
			v.fill(v.layout.CellRect(row, col), style)
		}
	}
	v.screen.Show()
}

func (v *View) fill(r ui.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			v.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Handle applies a terminal event to the board and reports whether the user
// asked to quit.
func (v *View) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.board.ToggleRunning()
		case 'r':
			v.board.Randomize()
		case 'c':
			v.board.Clear()
		case 'n':
			v.board.StepOnce()
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
		v.buttons = ev.Buttons()
		if pressed {
			x, y := ev.Position()
			app.Click(v.board, v.layout, x, y)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

// Run drives the view until ctx is cancelled or the user quits. Every event
// and every scheduled generation is handled on the calling goroutine.
func Run(ctx context.Context, screen tcell.Screen, b *board.Board, timer *core.Timer, tick time.Duration) error {
	v := NewView(screen, b)
	screen.EnableMouse()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			timer.Advance()
		}
		v.Draw()
	}
}
