package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilmatt/rangegrid/internal/hand"
)

func TestCellAtInvertsCellOrigin(t *testing.T) {
	layout := Layout{OriginX: 3, OriginY: 2, CellWidth: 5, CellHeight: 2}

	g := hand.Grid()
	for row := range hand.GridSize {
		for col := range hand.GridSize {
			x, y := layout.CellOrigin(row, col)

			// Every coordinate inside the cell resolves to it.
			for dx := range layout.CellWidth {
				for dy := range layout.CellHeight {
					l, ok := layout.CellAt(x+dx, y+dy)
					require.True(t, ok, "row %d col %d", row, col)
					require.Equal(t, g[row][col], l)
				}
			}
		}
	}
}

func TestCellAtMisses(t *testing.T) {
	layout := Layout{OriginX: 3, OriginY: 2, CellWidth: 5, CellHeight: 2}

	tests := []struct {
		name string
		x, y int
	}{
		{"left of grid", 2, 2},
		{"above grid", 3, 1},
		{"right of grid", 3 + 13*5, 2},
		{"below grid", 3, 2 + 13*2},
		{"origin corner miss", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := layout.CellAt(tt.x, tt.y)
			assert.False(t, ok)
		})
	}
}

func TestCellAtDegenerateLayout(t *testing.T) {
	_, ok := Layout{}.CellAt(0, 0)
	assert.False(t, ok)
}
