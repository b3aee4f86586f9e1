//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	barColor      = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	runningColor  = color.RGBA{R: 0x44, G: 0x55, B: 0xee, A: 255}
	labelColor    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	statusColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	gridLineColor = color.RGBA{R: 220, G: 220, B: 226, A: 255}
)

// Toolbar renders the start/stop, random and clear buttons plus a status line.
type Toolbar struct {
	layout Layout
}

// NewToolbar constructs a Toolbar for the provided layout.
func NewToolbar(layout Layout) *Toolbar {
	return &Toolbar{layout: layout}
}

// Draw paints the bar along the top edge of screen.
func (t *Toolbar) Draw(screen *ebiten.Image, running bool, status string) {
	w, _ := t.layout.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(t.layout.BarHeight()), barColor, false)

	for _, b := range t.layout.Order() {
		bg := buttonColor
		if b == ButtonRun && running {
			bg = runningColor
		}
		t.drawButton(screen, t.layout.ButtonRect(b), Label(b, running), bg)
	}

	face := basicfont.Face7x13
	bounds := text.BoundString(face, status)
	y := (t.layout.BarHeight()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, status, face, t.layout.StatusX()+4, y, statusColor)
}

// DrawGridLines outlines every cell so dead cells stay distinguishable.
func (t *Toolbar) DrawGridLines(screen *ebiten.Image) {
	_, h := t.layout.Size()
	w := t.layout.opts.Cols * t.layout.opts.CellW
	top := t.layout.BarHeight()
	for col := 0; col <= t.layout.opts.Cols; col++ {
		x := float32(col * t.layout.opts.CellW)
		vector.StrokeLine(screen, x, float32(top), x, float32(h), 1, gridLineColor, false)
	}
	for row := 0; row <= t.layout.opts.Rows; row++ {
		y := float32(top + row*t.layout.opts.CellH)
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, gridLineColor, false)
	}
}

func (t *Toolbar) drawButton(screen *ebiten.Image, rect Rect, label string, bg color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.X + (rect.W-bounds.Dx())/2
	y := rect.Y + (rect.H-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, labelColor)
}
