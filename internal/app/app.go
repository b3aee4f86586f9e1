//go:build ebiten

package app

import (
	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	board   *board.Board
	timer   *core.Timer
	layout  ui.Layout
	painter *render.GridPainter
	toolbar *ui.Toolbar

	scale int
}

// New constructs a Game for the provided board. timer must be the scheduler
// the board was built with; Update drives it.
func New(b *board.Board, timer *core.Timer, scale int) *Game {
	size := b.Size()
	layout := NewLayout(size, scale)
	return &Game{
		board:   b,
		timer:   timer,
		layout:  layout,
		painter: render.NewGridPainter(size.Rows, size.Cols, render.AliveColor, render.DeadColor),
		toolbar: ui.NewToolbar(layout),
		scale:   scale,
	}
}

// Update handles input and runs any due simulation callbacks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.board.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.board.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		Click(g.board, g.layout, mx, my)
	}

	g.timer.Advance()
	return nil
}

// Draw renders the toolbar and the current grid.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Grid(), g.scale, g.layout.BarHeight())
	if g.scale >= 4 {
		g.toolbar.DrawGridLines(screen)
	}
	g.toolbar.Draw(screen, g.board.Running(), Status(g.board))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Size()
}
