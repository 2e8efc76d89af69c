package game

import (
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// GameState is the complete mutable state of one hot-seat game. It is owned
// by the engine's calling goroutine; nothing here is safe for concurrent use.
type GameState struct {
	Grid    *core.Grid
	Cities  []*City
	Units   []*Unit
	Players []Player
	Fog     *FogOfWar

	Turn          int
	CurrentPlayer int
}

// Opponent returns the other player's ID in the two-player game
func (gs *GameState) Opponent(playerID int) int {
	return 1 - playerID
}

// UnitAt returns the alive unit standing on (x, y), or nil
func (gs *GameState) UnitAt(x, y int) *Unit {
	for _, u := range gs.Units {
		if u.IsAlive() && u.Pos.X == x && u.Pos.Y == y {
			return u
		}
	}
	return nil
}

// CityAt returns the city on (x, y), or nil
func (gs *GameState) CityAt(x, y int) *City {
	for _, c := range gs.Cities {
		if c.Pos.X == x && c.Pos.Y == y {
			return c
		}
	}
	return nil
}

// UnitsOwnedBy returns the alive units belonging to a player
func (gs *GameState) UnitsOwnedBy(playerID int) []*Unit {
	var out []*Unit
	for _, u := range gs.Units {
		if u.IsAlive() && u.Owner == playerID {
			out = append(out, u)
		}
	}
	return out
}

// CityCount computes a player's city ownership by scanning the city list.
// There is deliberately no cached owned-cities set; City.Owner is the single
// source of truth.
func (gs *GameState) CityCount(playerID int) int {
	n := 0
	for _, c := range gs.Cities {
		if c.Owner == playerID {
			n++
		}
	}
	return n
}

// CityOwners returns the owner of every city, in city-list order
func (gs *GameState) CityOwners() []int {
	owners := make([]int, len(gs.Cities))
	for i, c := range gs.Cities {
		owners[i] = c.Owner
	}
	return owners
}

// SupportCount counts the alive armies whose recorded home city is the city
// at the given position.
func (gs *GameState) SupportCount(cityPos core.Coordinate) int {
	n := 0
	for _, u := range gs.Units {
		if u.IsAlive() && u.Type == UnitArmy && u.HasHome && u.HomeCity.Equal(cityPos) {
			n++
		}
	}
	return n
}

// PruneDeadUnits drops dead units from the unit list, preserving order
func (gs *GameState) PruneDeadUnits() {
	alive := gs.Units[:0]
	for _, u := range gs.Units {
		if u.IsAlive() {
			alive = append(alive, u)
		}
	}
	// Clear trailing slots so pruned units can be collected.
	for i := len(alive); i < len(gs.Units); i++ {
		gs.Units[i] = nil
	}
	gs.Units = alive
}

// ResetMovesFor restores the movement allowance of a player's alive units
func (gs *GameState) ResetMovesFor(playerID int) {
	for _, u := range gs.Units {
		if u.IsAlive() && u.Owner == playerID {
			u.ResetMoves()
		}
	}
}

// SelectNextUnit rotates through a player's alive units, preferring the next
// one that still has moves. Front ends use this for unit cycling.
func (gs *GameState) SelectNextUnit(playerID int, current *Unit) *Unit {
	own := gs.UnitsOwnedBy(playerID)
	if len(own) == 0 {
		return nil
	}

	idx := -1
	for i, u := range own {
		if u == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		for _, u := range own {
			if u.CanMove() {
				return u
			}
		}
		return own[0]
	}

	for i := 1; i <= len(own); i++ {
		cand := own[(idx+i)%len(own)]
		if cand.CanMove() {
			return cand
		}
	}
	return own[(idx+1)%len(own)]
}
