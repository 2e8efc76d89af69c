package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
)

// ProductionManager advances city production and places finished units on
// the map. Spawning is best effort: a city that cannot place its unit stays
// at full progress and retries every following turn.
type ProductionManager struct {
	rules    Rules
	eventBus *events.EventBus
	gameID   string
	logger   zerolog.Logger
}

// NewProductionManager creates a new production manager
func NewProductionManager(rules Rules, eventBus *events.EventBus, gameID string, logger zerolog.Logger) *ProductionManager {
	return &ProductionManager{
		rules:    rules,
		eventBus: eventBus,
		gameID:   gameID,
		logger:   logger.With().Str("component", "ProductionManager").Logger(),
	}
}

// SetProduction points a city at a new unit type. Accumulated progress is
// kept so switching production never wastes completed work.
func (pm *ProductionManager) SetProduction(c *City, t UnitType) error {
	stats, ok := pm.rules.StatsFor(t)
	if !ok {
		return core.ErrUnknownUnitType
	}
	c.SetProduction(t, stats.Cost)

	pm.logger.Debug().
		Str("city", c.Pos.String()).
		Str("unit_type", t.String()).
		Int("cost", stats.Cost).
		Int("progress", c.Progress).
		Msg("Production set")
	return nil
}

// CycleProduction advances a city to the next unit type in the catalog
func (pm *ProductionManager) CycleProduction(c *City) error {
	if !c.HasProduction {
		return pm.SetProduction(c, ProductionOrder[0])
	}
	for i, t := range ProductionOrder {
		if t == c.Production {
			return pm.SetProduction(c, ProductionOrder[(i+1)%len(ProductionOrder)])
		}
	}
	return core.ErrUnknownUnitType
}

// AdvanceProduction ticks every owned, producing city on the map, both
// players alike. Finished units spawn immediately; progress is clamped at
// cost when the spawn site is blocked.
func (pm *ProductionManager) AdvanceProduction(gs *GameState) {
	for _, c := range gs.Cities {
		if c.Owner == NeutralID || !c.HasProduction || c.Cost <= 0 {
			continue
		}

		c.Progress++
		if c.Progress < c.Cost {
			continue
		}

		if u := pm.spawnUnit(gs, c); u != nil {
			c.Progress = 0
			pm.eventBus.Publish(events.NewUnitSpawnedEvent(
				pm.gameID, u.Type.String(), u.Pos, u.Owner, gs.Turn))
			pm.logger.Info().
				Str("city", c.Pos.String()).
				Str("unit_type", u.Type.String()).
				Str("location", u.Pos.String()).
				Msg("Unit produced")
		} else {
			c.Progress = c.Cost
			pm.logger.Debug().
				Str("city", c.Pos.String()).
				Str("unit_type", c.Production.String()).
				Msg("Production complete but no spawn site, holding")
		}
	}
}

// spawnUnit places a finished unit around its city, or returns nil when no
// legal site exists.
func (pm *ProductionManager) spawnUnit(gs *GameState, c *City) *Unit {
	stats, ok := pm.rules.StatsFor(c.Production)
	if !ok {
		return nil
	}

	var pos core.Coordinate
	found := false

	switch c.Production {
	case UnitArmy:
		// Armies are capped by city support. The city tile is preferred,
		// then the compass neighbors in fixed priority order.
		limit := c.SupportCap
		if limit <= 0 {
			limit = pm.rules.SupportCap
		}
		if gs.SupportCount(c.Pos) >= limit {
			return nil
		}
		if gs.UnitAt(c.Pos.X, c.Pos.Y) == nil {
			pos, found = c.Pos, true
		} else {
			for _, step := range core.CompassSteps {
				n := c.Pos.Step(step)
				if gs.Grid.IsLand(n.X, n.Y) && gs.UnitAt(n.X, n.Y) == nil {
					pos, found = n, true
					break
				}
			}
		}

	case UnitFighter, UnitMissile:
		// Air units launch from the city tile itself.
		if gs.UnitAt(c.Pos.X, c.Pos.Y) == nil {
			pos, found = c.Pos, true
		}

	case UnitCarrier:
		// Carriers slide into adjacent water, never onto the city tile.
		for _, step := range core.CompassSteps {
			n := c.Pos.Step(step)
			if gs.Grid.IsOcean(n.X, n.Y) && gs.UnitAt(n.X, n.Y) == nil {
				pos, found = n, true
				break
			}
		}
	}

	if !found {
		return nil
	}

	u := NewUnit(c.Production, pos, c.Owner, stats)
	// Freshly produced units act on the owner's next turn, not this one.
	u.MovesLeft = 0
	if u.Type == UnitArmy {
		u.SetHome(c.Pos)
	}
	gs.Units = append(gs.Units, u)
	return u
}

// ApplyHealing repairs every unit garrisoned in a city its owner holds
func (pm *ProductionManager) ApplyHealing(gs *GameState) {
	for _, u := range gs.Units {
		if !u.IsAlive() || u.HP >= u.MaxHP {
			continue
		}
		c := gs.CityAt(u.Pos.X, u.Pos.Y)
		if c == nil || c.Owner != u.Owner {
			continue
		}
		u.HP += pm.rules.HealPerTurn
		if u.HP > u.MaxHP {
			u.HP = u.MaxHP
		}
	}
}
