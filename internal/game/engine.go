package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/mapgen"
	gamerules "github.com/mitchelldurbincs/EmpireHotseat/internal/game/rules"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/states"
)

// GameConfig holds the parameters for starting a new game
type GameConfig struct {
	Width         int
	Height        int
	LandFraction  float64
	Cities        int
	MinSeparation int
	PlayerNames   []string

	// Rules overrides the configured rules table when non-nil.
	Rules *Rules
	// Rng drives every random decision; nil means time-seeded.
	Rng      *rand.Rand
	Logger   zerolog.Logger
	GameID   string
	EventBus *events.EventBus
}

// Engine owns one hot-seat game: the state, the rules, and the component
// pipeline that mutates it. All methods must be called from a single
// goroutine; the engine does no internal locking.
type Engine struct {
	gameID string
	state  *GameState
	rules  Rules

	rng      *rand.Rand
	logger   zerolog.Logger
	eventBus *events.EventBus
	machine  *states.StateMachine

	combat     *CombatResolver
	production *ProductionManager
	victory    *gamerules.VictoryChecker
	processor  *TurnProcessor
	telemetry  *Telemetry

	winner int
}

// NewEngine generates a map, places cities, seeds both players and returns a
// ready-to-play engine with player 0 active on turn 1.
func NewEngine(cfg GameConfig) (*Engine, error) {
	e, err := newEngineShell(cfg)
	if err != nil {
		return nil, err
	}

	mapCfg := mapgen.DefaultMapConfig(cfg.Width, cfg.Height)
	if cfg.LandFraction > 0 {
		mapCfg.LandFraction = cfg.LandFraction
	}
	if cfg.Cities > 0 {
		mapCfg.Cities = cfg.Cities
	}
	if cfg.MinSeparation > 0 {
		mapCfg.MinSeparation = cfg.MinSeparation
	}

	gen := mapgen.NewGenerator(mapCfg, e.rng)
	grid := gen.GenerateTerrain()
	sites := gen.PlaceCitySites(grid)
	if len(sites) < 2 {
		return nil, fmt.Errorf("map generation produced %d city sites, need at least 2", len(sites))
	}

	names := cfg.PlayerNames
	for len(names) < 2 {
		names = append(names, fmt.Sprintf("Player %d", len(names)+1))
	}

	gs := &GameState{
		Grid: grid,
		Players: []Player{
			{ID: 0, Name: names[0]},
			{ID: 1, Name: names[1]},
		},
		Fog:           NewFogOfWar(2, grid.W, grid.H),
		Turn:          1,
		CurrentPlayer: 0,
	}
	for _, site := range sites {
		gs.Cities = append(gs.Cities, &City{Pos: site, Owner: NeutralID, SupportCap: e.rules.SupportCap})
	}

	// The first and last placed sites become the player capitals. Placement
	// shuffles land tiles, so the pairing is arbitrary but well separated.
	e.state = gs
	e.assignStartingCity(gs.Cities[0], 0)
	e.assignStartingCity(gs.Cities[len(gs.Cities)-1], 1)

	gs.RecomputeVisibility(0, e.rules)
	gs.RecomputeVisibility(1, e.rules)

	if err := e.machine.TransitionTo(states.PhaseTurnActive, "game initialized"); err != nil {
		return nil, err
	}
	e.eventBus.Publish(events.NewGameStartedEvent(e.gameID, len(gs.Players), grid.W, grid.H))
	e.eventBus.Publish(events.NewTurnStartedEvent(e.gameID, gs.Turn, gs.CurrentPlayer))

	e.logger.Info().
		Int("width", grid.W).
		Int("height", grid.H).
		Int("cities", len(gs.Cities)).
		Msg("Game initialized")

	return e, nil
}

// NewEngineFromState rebuilds an engine around restored state, for example
// after loading a save. Visibility is recomputed rather than trusted.
func NewEngineFromState(gs *GameState, cfg GameConfig) (*Engine, error) {
	e, err := newEngineShell(cfg)
	if err != nil {
		return nil, err
	}

	e.state = gs
	for p := range gs.Players {
		gs.RecomputeVisibility(p, e.rules)
	}

	if err := e.machine.TransitionTo(states.PhaseTurnActive, "state restored"); err != nil {
		return nil, err
	}

	e.logger.Info().
		Int("turn", gs.Turn).
		Int("current_player", gs.CurrentPlayer).
		Msg("Game restored")

	return e, nil
}

// newEngineShell builds the component pipeline without any game state
func newEngineShell(cfg GameConfig) (*Engine, error) {
	rules := DefaultRules()
	if cfg.Rules != nil {
		rules = *cfg.Rules
	}

	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gameID := cfg.GameID
	if gameID == "" {
		gameID = uuid.NewString()
	}

	eventBus := cfg.EventBus
	if eventBus == nil {
		eventBus = events.NewEventBus()
	}

	logger := cfg.Logger.With().Str("game_id", gameID).Logger()

	e := &Engine{
		gameID:    gameID,
		rules:     rules,
		rng:       rng,
		logger:    logger,
		eventBus:  eventBus,
		machine:   states.NewStateMachine(gameID, eventBus, logger),
		victory:   gamerules.NewVictoryChecker(logger),
		telemetry: NewTelemetry(2, rules.ReportCapacity),
		winner:    -1,
	}
	e.combat = NewCombatResolver(rules.Combat, rng, logger)
	e.production = NewProductionManager(rules, eventBus, gameID, logger)
	e.processor = NewTurnProcessor(e, logger)
	return e, nil
}

// assignStartingCity hands a city to a player with default production and a
// garrison army supported by it.
func (e *Engine) assignStartingCity(c *City, playerID int) {
	c.Owner = playerID
	if stats, ok := e.rules.StatsFor(UnitArmy); ok {
		c.SetProduction(UnitArmy, stats.Cost)

		army := NewUnit(UnitArmy, c.Pos, playerID, stats)
		army.SetHome(c.Pos)
		e.state.Units = append(e.state.Units, army)
	}
}

// GameState exposes the mutable state for front ends and persistence
func (e *Engine) GameState() *GameState { return e.state }

// Rules returns the active rules table
func (e *Engine) Rules() Rules { return e.rules }

// GameID returns the engine's unique game identifier
func (e *Engine) GameID() string { return e.gameID }

// EventBus returns the engine's event bus for subscribing
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// Telemetry returns the engine's combat statistics
func (e *Engine) Telemetry() *Telemetry { return e.telemetry }

// CurrentPhase returns the lifecycle phase
func (e *Engine) CurrentPhase() states.GamePhase { return e.machine.CurrentPhase() }

// IsGameOver reports whether a winner has been declared
func (e *Engine) IsGameOver() bool { return e.machine.CurrentPhase().IsTerminal() }

// Winner returns the winning player's ID, or -1 while the game runs
func (e *Engine) Winner() int { return e.winner }

// SetCityProduction delegates to the production manager
func (e *Engine) SetCityProduction(c *City, t UnitType) error {
	if e.IsGameOver() {
		return core.ErrGameOver
	}
	return e.production.SetProduction(c, t)
}

// CycleCityProduction advances a city to the next unit type in the catalog
func (e *Engine) CycleCityProduction(c *City) error {
	if e.IsGameOver() {
		return core.ErrGameOver
	}
	return e.production.CycleProduction(c)
}

// EndTurn runs end-of-turn processing and hands control to the other player
func (e *Engine) EndTurn() (*EndTurnResult, error) {
	return e.processor.EndTurn()
}

// declareVictory moves the machine into its terminal phase and publishes the
// winner exactly once.
func (e *Engine) declareVictory(winner int) {
	if e.IsGameOver() {
		return
	}
	e.winner = winner
	if err := e.machine.TransitionTo(states.PhaseGameOver, "victory"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to enter game over phase")
		return
	}
	e.eventBus.Publish(events.NewPlayerWonEvent(e.gameID, winner, e.state.Turn))
	e.logger.Info().
		Int("winner", winner).
		Int("final_turn", e.state.Turn).
		Msg("Game over")
}

// checkVictoryFor runs the territorial victory rule for a player and declares
// the win when it holds. Returns true when the game just ended.
func (e *Engine) checkVictoryFor(playerID int) bool {
	if e.IsGameOver() {
		return false
	}
	over, winner := e.victory.CheckVictory(e.state.CityOwners(), playerID)
	if over {
		e.declareVictory(winner)
		return true
	}
	return false
}

// DetonationResult summarizes a nuclear detonation
type DetonationResult struct {
	Location          core.Coordinate
	UnitsDestroyed    int
	CitiesNeutralized int
}

// DetonateMissile detonates one of the current player's missiles in place.
// Everything within the blast radius dies, the missile included, and hit
// cities revert to neutral with their production intact.
func (e *Engine) DetonateMissile(u *Unit) (*DetonationResult, error) {
	if e.IsGameOver() {
		return nil, core.ErrGameOver
	}
	if u == nil || !u.IsAlive() {
		return nil, core.ErrUnitDead
	}
	if u.Owner != e.state.CurrentPlayer {
		return nil, core.ErrNotYourUnit
	}
	if u.Type != UnitMissile {
		return nil, core.ErrNotAMissile
	}

	gs := e.state
	owner := u.Owner
	center := u.Pos
	r2 := e.rules.MissileBlastRadius * e.rules.MissileBlastRadius

	result := &DetonationResult{Location: center}
	for _, victim := range gs.Units {
		if !victim.IsAlive() {
			continue
		}
		d := victim.Pos.SquaredDistanceTo(center)
		if d > r2 {
			continue
		}
		victim.HP = 0
		result.UnitsDestroyed++
		e.telemetry.RecordLoss(victim.Owner, victim.Type)
		if victim.Owner != owner {
			e.telemetry.RecordKill(owner, victim.Type)
		}
	}

	for _, c := range gs.Cities {
		if c.Owner == NeutralID {
			continue
		}
		if c.Pos.SquaredDistanceTo(center) <= r2 {
			c.Owner = NeutralID
			result.CitiesNeutralized++
		}
	}

	gs.PruneDeadUnits()
	for p := range gs.Players {
		gs.RecomputeVisibility(p, e.rules)
	}

	e.eventBus.Publish(events.NewMissileDetonatedEvent(
		e.gameID, center, owner, result.UnitsDestroyed, result.CitiesNeutralized, gs.Turn))

	e.logger.Info().
		Str("location", center.String()).
		Int("owner", owner).
		Int("units_destroyed", result.UnitsDestroyed).
		Int("cities_neutralized", result.CitiesNeutralized).
		Msg("Missile detonated")

	// Nuking the opponent's last city ends the game on the spot.
	e.checkVictoryFor(owner)

	return result, nil
}

// FoundCity consumes one of the current player's armies to found a city on
// its tile. The army is spent; the city starts on default production.
func (e *Engine) FoundCity(u *Unit) (*City, error) {
	if e.IsGameOver() {
		return nil, core.ErrGameOver
	}
	if u == nil || !u.IsAlive() {
		return nil, core.ErrUnitDead
	}
	if u.Owner != e.state.CurrentPlayer {
		return nil, core.ErrNotYourUnit
	}
	if u.Type != UnitArmy {
		return nil, core.ErrNotAnArmy
	}

	gs := e.state
	if !gs.Grid.IsLand(u.Pos.X, u.Pos.Y) {
		return nil, core.ErrWrongTerrain
	}
	if gs.CityAt(u.Pos.X, u.Pos.Y) != nil {
		return nil, core.ErrCityExists
	}
	for _, other := range gs.Units {
		if other != u && other.IsAlive() && other.Pos.Equal(u.Pos) && other.Owner != u.Owner {
			return nil, core.ErrEnemyPresent
		}
	}

	c := &City{Pos: u.Pos, Owner: u.Owner, SupportCap: e.rules.SupportCap}
	if stats, ok := e.rules.StatsFor(UnitArmy); ok {
		c.SetProduction(UnitArmy, stats.Cost)
	}
	gs.Cities = append(gs.Cities, c)

	u.HP = 0
	gs.PruneDeadUnits()
	gs.RecomputeVisibility(c.Owner, e.rules)

	e.eventBus.Publish(events.NewCityFoundedEvent(e.gameID, c.Pos, c.Owner, gs.Turn))
	e.logger.Info().
		Str("location", c.Pos.String()).
		Int("owner", c.Owner).
		Msg("City founded")

	return c, nil
}
