package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/states"
)

// TurnProcessor runs the fixed end-of-turn sequence: production and healing,
// missile safety detonation, fighter basing enforcement, victory check, then
// handoff to the other player.
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a turn processor bound to one engine
func NewTurnProcessor(engine *Engine, logger zerolog.Logger) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// EndTurnResult reports the outcome of ending a turn
type EndTurnResult struct {
	GameOver        bool
	Winner          int
	NextPlayer      int
	TurnNumber      int
	MissilesFired   int
	FightersCrashed int
}

// EndTurn processes the end of the current player's turn. The sequence is
// order sensitive: production may spawn a missile that the safety rule then
// detonates, and basing losses count toward the victory check.
func (tp *TurnProcessor) EndTurn() (*EndTurnResult, error) {
	e := tp.engine
	gs := e.state

	if e.IsGameOver() {
		return nil, core.ErrGameOver
	}
	if err := e.machine.TransitionTo(states.PhaseEndTurnProcessing, "end turn requested"); err != nil {
		return nil, err
	}

	endingPlayer := gs.CurrentPlayer
	result := &EndTurnResult{Winner: -1}

	e.production.AdvanceProduction(gs)
	e.production.ApplyHealing(gs)

	result.MissilesFired = tp.detonateLeftoverMissiles(endingPlayer)
	result.FightersCrashed = tp.enforceFighterBasing(endingPlayer)
	gs.PruneDeadUnits()

	e.eventBus.Publish(events.NewTurnEndedEvent(e.gameID, gs.Turn, endingPlayer))

	// A detonation may already have ended the game inside this sequence.
	if e.IsGameOver() || e.checkVictoryFor(endingPlayer) {
		result.GameOver = true
		result.Winner = e.winner
		result.TurnNumber = gs.Turn
		result.NextPlayer = endingPlayer
		return result, nil
	}

	if err := e.machine.TransitionTo(states.PhaseHandoff, "turn processing complete"); err != nil {
		return nil, err
	}

	gs.CurrentPlayer = gs.Opponent(endingPlayer)
	gs.Turn++
	gs.ResetMovesFor(gs.CurrentPlayer)
	gs.RecomputeVisibility(gs.CurrentPlayer, e.rules)

	if err := e.machine.TransitionTo(states.PhaseTurnActive, "handoff complete"); err != nil {
		return nil, err
	}
	e.eventBus.Publish(events.NewTurnStartedEvent(e.gameID, gs.Turn, gs.CurrentPlayer))

	result.NextPlayer = gs.CurrentPlayer
	result.TurnNumber = gs.Turn

	tp.logger.Debug().
		Int("turn", gs.Turn).
		Int("next_player", gs.CurrentPlayer).
		Int("missiles_fired", result.MissilesFired).
		Int("fighters_crashed", result.FightersCrashed).
		Msg("Turn ended")

	return result, nil
}

// detonateLeftoverMissiles fires every still-alive missile the ending player
// owns. A missile never survives into another turn.
func (tp *TurnProcessor) detonateLeftoverMissiles(playerID int) int {
	e := tp.engine
	fired := 0

	// Detonations mutate the unit list, so collect targets first.
	var missiles []*Unit
	for _, u := range e.state.Units {
		if u.IsAlive() && u.Owner == playerID && u.Type == UnitMissile {
			missiles = append(missiles, u)
		}
	}
	for _, m := range missiles {
		if !m.IsAlive() {
			continue // caught in an earlier blast
		}
		if _, err := e.DetonateMissile(m); err == nil {
			fired++
		}
	}
	return fired
}

// enforceFighterBasing destroys the ending player's fighters that are
// neither on a friendly city nor adjacent to a friendly carrier.
func (tp *TurnProcessor) enforceFighterBasing(playerID int) int {
	e := tp.engine
	gs := e.state
	crashed := 0

	for _, u := range gs.Units {
		if !u.IsAlive() || u.Owner != playerID || u.Type != UnitFighter {
			continue
		}
		if tp.fighterIsBased(u) {
			continue
		}

		u.HP = 0
		crashed++
		e.telemetry.RecordLoss(u.Owner, u.Type)
		e.eventBus.Publish(events.NewUnitDestroyedEvent(
			e.gameID, u.Type.String(), u.Pos, u.Owner, "no friendly base in range", gs.Turn))
		tp.logger.Info().
			Str("location", u.Pos.String()).
			Int("owner", u.Owner).
			Msg("Fighter lost, no base in range")
	}
	if crashed > 0 {
		gs.RecomputeVisibility(playerID, e.rules)
	}
	return crashed
}

// fighterIsBased reports whether a fighter ends the turn on a friendly city
// or next to a friendly carrier (orthogonal or diagonal adjacency).
func (tp *TurnProcessor) fighterIsBased(u *Unit) bool {
	gs := tp.engine.state

	if c := gs.CityAt(u.Pos.X, u.Pos.Y); c != nil && c.Owner == u.Owner {
		return true
	}
	for _, step := range core.CompassSteps {
		n := u.Pos.Step(step)
		if other := gs.UnitAt(n.X, n.Y); other != nil &&
			other.Owner == u.Owner && other.Type == UnitCarrier {
			return true
		}
	}
	return false
}
