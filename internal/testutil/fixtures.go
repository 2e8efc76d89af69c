package testutil

import (
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// FlatLandGrid creates an all-land grid of the given dimensions
func FlatLandGrid(width, height int) *core.Grid {
	grid := core.NewGrid(width, height)
	for i := range grid.T {
		grid.T[i] = core.Land
	}
	return grid
}

// IslandGrid creates an ocean grid with a single rectangular island. The
// island spans [x0, x1) × [y0, y1).
func IslandGrid(width, height, x0, y0, x1, y1 int) *core.Grid {
	grid := core.NewGrid(width, height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if grid.InBounds(x, y) {
				grid.T[grid.Idx(x, y)] = core.Land
			}
		}
	}
	return grid
}
