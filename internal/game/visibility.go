package game

// This file holds the per-player fog-of-war model. Each player has two
// parallel grids: "explored" (ever seen, only ever set) and "visible"
// (currently in sight, rebuilt on every recompute). The invariant
// visible ⊆ explored holds at all times because marking visible always marks
// explored too.

import "github.com/mitchelldurbincs/EmpireHotseat/internal/common"

// FogOfWar tracks explored/visible tiles per player
type FogOfWar struct {
	W, H     int
	Explored [][]bool // [player][row-major tile index]
	Visible  [][]bool
}

// NewFogOfWar allocates all-false grids for the given player count
func NewFogOfWar(players, w, h int) *FogOfWar {
	f := &FogOfWar{
		W:        w,
		H:        h,
		Explored: make([][]bool, players),
		Visible:  make([][]bool, players),
	}
	for p := 0; p < players; p++ {
		f.Explored[p] = make([]bool, w*h)
		f.Visible[p] = make([]bool, w*h)
	}
	return f
}

func (f *FogOfWar) idx(x, y int) int { return y*f.W + x }

func (f *FogOfWar) validPlayer(player int) bool {
	return player >= 0 && player < len(f.Visible)
}

// ClearVisible zeroes one player's visible grid; explored is untouched
func (f *FogOfWar) ClearVisible(player int) {
	if !f.validPlayer(player) {
		return
	}
	vis := f.Visible[player]
	for i := range vis {
		vis[i] = false
	}
}

// MarkVisibleCircle marks every tile within Euclidean distance radius of
// (cx, cy) as visible and explored, using the squared-distance test.
func (f *FogOfWar) MarkVisibleCircle(player, cx, cy, radius int) {
	if !f.validPlayer(player) {
		return
	}
	r2 := radius * radius
	for y := common.Max(0, cy-radius); y < common.Min(f.H, cy+radius+1); y++ {
		for x := common.Max(0, cx-radius); x < common.Min(f.W, cx+radius+1); x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				i := f.idx(x, y)
				f.Visible[player][i] = true
				f.Explored[player][i] = true
			}
		}
	}
}

// IsExplored reports whether the player has ever seen (x, y)
func (f *FogOfWar) IsExplored(player, x, y int) bool {
	if !f.validPlayer(player) || x < 0 || x >= f.W || y < 0 || y >= f.H {
		return false
	}
	return f.Explored[player][f.idx(x, y)]
}

// IsVisible reports whether (x, y) is currently in the player's sight
func (f *FogOfWar) IsVisible(player, x, y int) bool {
	if !f.validPlayer(player) || x < 0 || x >= f.W || y < 0 || y >= f.H {
		return false
	}
	return f.Visible[player][f.idx(x, y)]
}

// RecomputeVisibility rebuilds one player's visible grid from scratch:
// clear, then mark circles around every owned city and alive unit.
func (gs *GameState) RecomputeVisibility(playerID int, rules Rules) {
	gs.Fog.ClearVisible(playerID)

	for _, c := range gs.Cities {
		if c.Owner == playerID {
			gs.Fog.MarkVisibleCircle(playerID, c.Pos.X, c.Pos.Y, rules.Sight.City)
		}
	}
	for _, u := range gs.Units {
		if u.IsAlive() && u.Owner == playerID {
			gs.Fog.MarkVisibleCircle(playerID, u.Pos.X, u.Pos.Y, rules.SightFor(u.Type))
		}
	}
}
