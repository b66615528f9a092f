package hand

// GridSize is the edge length of the canonical preflop grid.
const GridSize = 13

// grid holds the canonical 13x13 layout, built once at init. Row and
// column both run A..2; the diagonal holds pairs, cells above the
// diagonal are suited, cells below are offsuit.
var grid [GridSize][GridSize]Label

func init() {
	for row := range GridSize {
		for col := range GridSize {
			grid[row][col] = cellLabel(row, col)
		}
	}
}

func cellLabel(row, col int) Label {
	switch {
	case row == col:
		return Label([]byte{Ranks[row], Ranks[col]})
	case row < col:
		return Label([]byte{Ranks[row], Ranks[col], 's'})
	default:
		return Label([]byte{Ranks[col], Ranks[row], 'o'})
	}
}

// Grid returns the canonical 13x13 layout of all 169 starting hands.
func Grid() [GridSize][GridSize]Label {
	return grid
}

// All returns the 169 canonical labels in row-major grid order.
func All() []Label {
	labels := make([]Label, 0, GridSize*GridSize)
	for row := range GridSize {
		for col := range GridSize {
			labels = append(labels, grid[row][col])
		}
	}
	return labels
}
