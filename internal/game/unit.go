package game

import (
	"fmt"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// UnitType is the closed set of unit variants. All units share the same
// record; type-specific behavior is table dispatch on this tag.
type UnitType int

const (
	UnitArmy UnitType = iota
	UnitFighter
	UnitCarrier
	UnitMissile
)

// ProductionOrder is the fixed catalog enumeration used by production
// cycling and serialization.
var ProductionOrder = []UnitType{UnitArmy, UnitFighter, UnitCarrier, UnitMissile}

// String returns the catalog tag for the unit type
func (t UnitType) String() string {
	switch t {
	case UnitArmy:
		return "Army"
	case UnitFighter:
		return "Fighter"
	case UnitCarrier:
		return "Carrier"
	case UnitMissile:
		return "NuclearMissile"
	default:
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
}

// ParseUnitType resolves a catalog tag back to a UnitType
func ParseUnitType(tag string) (UnitType, error) {
	for _, t := range ProductionOrder {
		if t.String() == tag {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnknownUnitType, tag)
}

// Glyph returns the map character for a unit owned by the given player.
// Player 0 units render uppercase, player 1 lowercase.
func (t UnitType) Glyph(owner int) byte {
	var g byte
	switch t {
	case UnitArmy:
		g = 'A'
	case UnitFighter:
		g = 'F'
	case UnitCarrier:
		g = 'C'
	case UnitMissile:
		g = 'M'
	default:
		g = '?'
	}
	if owner == 1 {
		g += 'a' - 'A'
	}
	return g
}

// Unit is a single military asset on the map. Ownership never changes;
// capture flips cities, not units.
type Unit struct {
	Pos       core.Coordinate
	Owner     int
	Type      UnitType
	HP        int
	MaxHP     int
	Moves     int // allowance per turn
	MovesLeft int

	// HomeCity is a weak back-reference (coordinate value, not a pointer)
	// used only for support-cap accounting on armies.
	HomeCity core.Coordinate
	HasHome  bool

	// Missile-only flight state: the heading locks on the first move and
	// Traveled accumulates tiles flown.
	Heading  core.Direction
	Locked   bool
	Traveled int
}

// NewUnit creates a unit of the given type at full strength
func NewUnit(t UnitType, pos core.Coordinate, owner int, stats UnitStats) *Unit {
	return &Unit{
		Pos:       pos,
		Owner:     owner,
		Type:      t,
		HP:        stats.HP,
		MaxHP:     stats.HP,
		Moves:     stats.Moves,
		MovesLeft: stats.Moves,
	}
}

// IsAlive reports whether the unit is still in play. Dead units are inert
// until pruned at end of turn.
func (u *Unit) IsAlive() bool { return u.HP > 0 }

// CanMove reports whether the unit is alive with moves remaining this turn
func (u *Unit) CanMove() bool { return u.IsAlive() && u.MovesLeft > 0 }

// ResetMoves restores the per-turn movement allowance
func (u *Unit) ResetMoves() { u.MovesLeft = u.Moves }

// SetHome records the supporting city for an army
func (u *Unit) SetHome(c core.Coordinate) {
	u.HomeCity = c
	u.HasHome = true
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s P%d @%s hp:%d/%d mv:%d/%d",
		u.Type, u.Owner+1, u.Pos, u.HP, u.MaxHP, u.MovesLeft, u.Moves)
}
