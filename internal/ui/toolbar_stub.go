//go:build !ebiten

package ui

// Toolbar is a no-op placeholder for headless builds.
type Toolbar struct{}

// NewToolbar returns nil in the headless build.
func NewToolbar(Layout) *Toolbar { return nil }

// Draw is a no-op in the headless build.
func (t *Toolbar) Draw(any, bool, string) {}

// DrawGridLines is a no-op in the headless build.
func (t *Toolbar) DrawGridLines(any) {}
