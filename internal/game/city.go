package game

import (
	"fmt"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// NeutralID marks unowned cities. Player IDs are 0 and 1.
const NeutralID = -1

// City is a production site on the map. Cities are created during placement
// or by FoundCity and persist for the lifetime of the game; capture and
// detonation only change the owner.
type City struct {
	Pos   core.Coordinate
	Owner int

	// Production state. Progress counts up toward Cost; it resets to 0 on a
	// successful spawn and is clamped to Cost when spawning fails so the city
	// retries next turn without double-charging.
	Production    UnitType
	HasProduction bool
	Progress      int
	Cost          int

	// SupportCap limits how many armies may name this city as home.
	SupportCap int
}

// IsNeutral reports whether the city is unowned
func (c *City) IsNeutral() bool { return c.Owner == NeutralID }

// Glyph returns the map character for the city: 'O' for player 1, 'X' for
// player 2, 'o' for neutral (and for unknown ownership under fog).
func (c *City) Glyph() byte {
	switch c.Owner {
	case 0:
		return 'O'
	case 1:
		return 'X'
	default:
		return 'o'
	}
}

// SetProduction points the city at a catalog entry. Accumulated progress is
// kept; only the cost threshold changes.
func (c *City) SetProduction(t UnitType, cost int) {
	c.Production = t
	c.HasProduction = true
	c.Cost = cost
}

// ClearProduction stops production without touching progress
func (c *City) ClearProduction() {
	c.HasProduction = false
	c.Cost = 0
}

func (c *City) String() string {
	owner := "neutral"
	if !c.IsNeutral() {
		owner = fmt.Sprintf("P%d", c.Owner+1)
	}
	return fmt.Sprintf("city @%s (%s)", c.Pos, owner)
}
