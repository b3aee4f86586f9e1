package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	Rows int
	Cols int
}

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}
