package game

import (
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
)

// MoveResult reports what a single movement command did
type MoveResult struct {
	Moved        bool
	Combat       *CombatOutcome
	CapturedCity bool
	Detonated    bool
	Victory      bool
}

// AttemptMove moves one of the current player's units a single step. dx and
// dy must each be in {-1, 0, 1}. A rejected move returns an error and leaves
// the state untouched; the unit keeps its movement allowance.
func (e *Engine) AttemptMove(u *Unit, dx, dy int) (*MoveResult, error) {
	if e.IsGameOver() {
		return nil, core.ErrGameOver
	}
	if u == nil || !u.IsAlive() {
		return nil, core.ErrUnitDead
	}
	if u.Owner != e.state.CurrentPlayer {
		return nil, core.ErrNotYourUnit
	}

	dir := core.Direction{DX: dx, DY: dy}
	if !dir.IsUnitStep() {
		return nil, core.ErrInvalidDirection
	}
	if !u.CanMove() {
		return nil, core.ErrNoMovesLeft
	}

	if u.Type == UnitMissile {
		return e.moveMissile(u, dir)
	}

	gs := e.state
	dest := u.Pos.Step(dir)
	if !gs.Grid.InBounds(dest.X, dest.Y) {
		return nil, core.ErrOutOfBounds
	}
	if err := e.checkTerrain(u.Type, dest); err != nil {
		return nil, err
	}

	occupant := gs.UnitAt(dest.X, dest.Y)
	switch {
	case occupant == nil:
		return e.relocate(u, dest)
	case occupant.Owner == u.Owner:
		return e.flyOver(u, dir, dest)
	default:
		return e.attack(u, occupant, dest)
	}
}

// checkTerrain enforces the terrain rules for surface units. Fighters fly
// over anything.
func (e *Engine) checkTerrain(t UnitType, dest core.Coordinate) error {
	switch t {
	case UnitArmy:
		if !e.state.Grid.IsLand(dest.X, dest.Y) {
			return core.ErrWrongTerrain
		}
	case UnitCarrier:
		if !e.state.Grid.IsOcean(dest.X, dest.Y) {
			return core.ErrWrongTerrain
		}
	}
	return nil
}

// relocate moves a unit onto an empty tile
func (e *Engine) relocate(u *Unit, dest core.Coordinate) (*MoveResult, error) {
	gs := e.state
	from := u.Pos

	u.Pos = dest
	u.MovesLeft--
	gs.RecomputeVisibility(u.Owner, e.rules)
	e.eventBus.Publish(events.NewMoveExecutedEvent(
		e.gameID, u.Owner, u.Type.String(), from, dest, gs.Turn))

	result := &MoveResult{Moved: true}
	e.resolveCapture(u, result)
	return result, nil
}

// flyOver lets a fighter pass over a friendly unit, landing one tile beyond
// for two movement points. Every other unit type is blocked.
func (e *Engine) flyOver(u *Unit, dir core.Direction, blocked core.Coordinate) (*MoveResult, error) {
	if u.Type != UnitFighter || u.MovesLeft < 2 {
		return nil, core.ErrTileOccupied
	}

	gs := e.state
	beyond := blocked.Step(dir)
	if !gs.Grid.InBounds(beyond.X, beyond.Y) {
		return nil, core.ErrOutOfBounds
	}
	if gs.UnitAt(beyond.X, beyond.Y) != nil {
		return nil, core.ErrTileOccupied
	}

	from := u.Pos
	u.Pos = beyond
	u.MovesLeft -= 2
	gs.RecomputeVisibility(u.Owner, e.rules)
	e.eventBus.Publish(events.NewMoveExecutedEvent(
		e.gameID, u.Owner, u.Type.String(), from, beyond, gs.Turn))

	return &MoveResult{Moved: true}, nil
}

// attack resolves combat against the enemy occupant of the destination tile.
// The winner holds the tile; a winning attacker advances into it.
func (e *Engine) attack(attacker, defender *Unit, dest core.Coordinate) (*MoveResult, error) {
	gs := e.state

	city := gs.CityAt(dest.X, dest.Y)
	defenderInCity := city != nil && city.Owner == defender.Owner

	outcome := e.combat.Resolve(attacker, defender, defenderInCity)
	attacker.MovesLeft--

	if !outcome.DefenderAlive {
		e.telemetry.RecordKill(attacker.Owner, defender.Type)
		e.telemetry.RecordLoss(defender.Owner, defender.Type)
	}
	if !outcome.AttackerAlive {
		e.telemetry.RecordKill(defender.Owner, attacker.Type)
		e.telemetry.RecordLoss(attacker.Owner, attacker.Type)
	}
	e.telemetry.AddReport(BattleReport{
		Turn:          gs.Turn,
		Attacker:      attacker.Type,
		AttackerOwner: attacker.Owner,
		Defender:      defender.Type,
		DefenderOwner: defender.Owner,
		Location:      dest,
		AttackerHit:   outcome.AttackerHit,
		DefenderHit:   outcome.DefenderHit,
		Outcome:       outcome.OutcomeTag(),
	})
	e.eventBus.Publish(events.NewCombatResolvedEvent(
		e.gameID, attacker.Owner, defender.Owner,
		attacker.Type.String(), defender.Type.String(),
		dest, outcome.AttackerAlive, outcome.DefenderAlive, gs.Turn))

	result := &MoveResult{Combat: &outcome}
	if outcome.AttackerAlive && !outcome.DefenderAlive {
		from := attacker.Pos
		attacker.Pos = dest
		result.Moved = true
		e.eventBus.Publish(events.NewMoveExecutedEvent(
			e.gameID, attacker.Owner, attacker.Type.String(), from, dest, gs.Turn))
		e.resolveCapture(attacker, result)
	}

	gs.PruneDeadUnits()
	gs.RecomputeVisibility(attacker.Owner, e.rules)
	gs.RecomputeVisibility(defender.Owner, e.rules)

	return result, nil
}

// resolveCapture flips the city under a ground unit to its owner. Fighters
// overfly cities without capturing them.
func (e *Engine) resolveCapture(u *Unit, result *MoveResult) {
	if u.Type == UnitFighter {
		return
	}

	gs := e.state
	c := gs.CityAt(u.Pos.X, u.Pos.Y)
	if c == nil || c.Owner == u.Owner {
		return
	}

	previous := c.Owner
	c.Owner = u.Owner
	// Captured cities restart on default production; whatever the previous
	// owner was building is abandoned.
	if stats, ok := e.rules.StatsFor(UnitArmy); ok {
		c.SetProduction(UnitArmy, stats.Cost)
		c.Progress = 0
	}

	result.CapturedCity = true
	// The city's sight now serves the new owner; the dispossessed player
	// loses it immediately, not at their next handoff.
	gs.RecomputeVisibility(u.Owner, e.rules)
	if previous != NeutralID {
		gs.RecomputeVisibility(previous, e.rules)
	}
	e.eventBus.Publish(events.NewCityCapturedEvent(e.gameID, c.Pos, c.Owner, previous, gs.Turn))
	e.logger.Info().
		Str("location", c.Pos.String()).
		Int("new_owner", c.Owner).
		Int("previous_owner", previous).
		Msg("City captured")

	if e.checkVictoryFor(u.Owner) {
		result.Victory = true
	}
}

// moveMissile advances a missile one step. The first successful step locks
// the heading for the missile's whole life. A missile hops over an occupied
// tile for two movement points, and detonates on its own once its range or
// movement is spent.
func (e *Engine) moveMissile(u *Unit, dir core.Direction) (*MoveResult, error) {
	if u.Locked && !dir.Equal(u.Heading) {
		return nil, core.ErrDirectionLocked
	}

	gs := e.state
	dest := u.Pos.Step(dir)
	if !gs.Grid.InBounds(dest.X, dest.Y) {
		return nil, core.ErrOutOfBounds
	}

	from := u.Pos
	if gs.UnitAt(dest.X, dest.Y) != nil {
		if u.MovesLeft < 2 {
			return nil, core.ErrTileOccupied
		}
		beyond := dest.Step(dir)
		if !gs.Grid.InBounds(beyond.X, beyond.Y) {
			return nil, core.ErrOutOfBounds
		}
		if gs.UnitAt(beyond.X, beyond.Y) != nil {
			return nil, core.ErrTileOccupied
		}
		u.Pos = beyond
		u.MovesLeft -= 2
		u.Traveled += 2
	} else {
		u.Pos = dest
		u.MovesLeft--
		u.Traveled++
	}

	if !u.Locked {
		u.Locked = true
		u.Heading = dir
	}

	gs.RecomputeVisibility(u.Owner, e.rules)
	e.eventBus.Publish(events.NewMoveExecutedEvent(
		e.gameID, u.Owner, u.Type.String(), from, u.Pos, gs.Turn))

	result := &MoveResult{Moved: true}
	if u.Traveled >= e.rules.MissileMaxRange || u.MovesLeft == 0 {
		if _, err := e.DetonateMissile(u); err == nil {
			result.Detonated = true
			result.Victory = e.IsGameOver()
		}
	}
	return result, nil
}
