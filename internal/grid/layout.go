package grid

import "github.com/dilmatt/rangegrid/internal/hand"

// Layout describes the on-screen geometry of the 13x13 grid so that
// pointer coordinates can be hit-tested back to hand cells. Cells are
// laid out in a dense block starting at the origin.
type Layout struct {
	OriginX    int
	OriginY    int
	CellWidth  int
	CellHeight int
}

// CellAt resolves the hand under the given viewport coordinates.
// Coordinates outside the grid, or a degenerate layout, miss.
func (l Layout) CellAt(x, y int) (hand.Label, bool) {
	if l.CellWidth < 1 || l.CellHeight < 1 {
		return "", false
	}
	col := (x - l.OriginX) / l.CellWidth
	row := (y - l.OriginY) / l.CellHeight
	if x < l.OriginX || y < l.OriginY || row >= hand.GridSize || col >= hand.GridSize {
		return "", false
	}
	return hand.Grid()[row][col], true
}

// CellOrigin returns the top-left coordinate of the cell at row, col.
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return l.OriginX + col*l.CellWidth, l.OriginY + row*l.CellHeight
}
