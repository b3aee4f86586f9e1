//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one image per grid and re-uploads it only when the
// board hands over a different grid snapshot.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	last       *core.Grid

	on, off color.Color
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int, on, off color.Color) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
		on:   on,
		off:  off,
	}
}

// Blit draws g scaled by scale with its top edge at offsetY.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, scale, offsetY int) {
	if g == nil || g.Rows != gp.rows || g.Cols != gp.cols {
		return
	}
	if g != gp.last {
		fillBinaryRGBA(gp.buf, g.Cells(), gp.on, gp.off)
		gp.img.WritePixels(gp.buf)
		gp.last = g
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(0, float64(offsetY))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.rows, gp.cols }
