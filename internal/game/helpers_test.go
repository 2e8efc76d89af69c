package game

import (
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
	gamerules "github.com/mitchelldurbincs/EmpireHotseat/internal/game/rules"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/states"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/testutil"
)

// testRules returns a fixed rules table so tests never touch configuration
func testRules() Rules {
	return Rules{
		Stats: map[UnitType]UnitStats{
			UnitArmy:    {HP: 10, Moves: 1, Cost: 6},
			UnitFighter: {HP: 8, Moves: 6, Cost: 12},
			UnitCarrier: {HP: 12, Moves: 3, Cost: 18},
			UnitMissile: {HP: 6, Moves: 4, Cost: 24},
		},
		Sight: SightRadii{City: 3, Army: 2, Fighter: 4, Carrier: 2, Missile: 2},
		Combat: CombatTable{
			BaseAttackerHit:           0.55,
			BaseDefenderHit:           0.50,
			FighterVsArmyAttackerHit:  0.65,
			FighterVsArmyDefenderHit:  0.35,
			FighterVsOtherAttackerHit: 0.50,
			FighterVsOtherDefenderHit: 0.40,
			CityDefenseBonus:          0.10,
			AttackerDamage:            3,
			DefenderDamage:            2,
		},
		MissileMaxRange:    10,
		MissileBlastRadius: 2,
		SupportCap:         2,
		HealPerTurn:        1,
		ReportCapacity:     8,
	}
}

// newTestEngine wires an engine around a prepared grid with an empty board
// and two players, skipping map generation entirely.
func newTestEngine(grid *core.Grid, seed int64) *Engine {
	r := testRules()
	logger := testutil.NopLogger()
	bus := events.NewEventBus()

	e := &Engine{
		gameID:    "test-game",
		rules:     r,
		rng:       testutil.NewTestRNG(seed),
		logger:    logger,
		eventBus:  bus,
		machine:   states.NewStateMachine("test-game", bus, logger),
		victory:   gamerules.NewVictoryChecker(logger),
		telemetry: NewTelemetry(2, r.ReportCapacity),
		winner:    -1,
	}
	e.combat = NewCombatResolver(r.Combat, e.rng, logger)
	e.production = NewProductionManager(r, bus, e.gameID, logger)
	e.processor = NewTurnProcessor(e, logger)
	e.state = &GameState{
		Grid: grid,
		Players: []Player{
			{ID: 0, Name: "Player 1"},
			{ID: 1, Name: "Player 2"},
		},
		Fog:  NewFogOfWar(2, grid.W, grid.H),
		Turn: 1,
	}
	if err := e.machine.TransitionTo(states.PhaseTurnActive, "test setup"); err != nil {
		panic(err)
	}
	return e
}

func addUnit(e *Engine, t UnitType, x, y, owner int) *Unit {
	stats := e.rules.Stats[t]
	u := NewUnit(t, core.NewCoordinate(x, y), owner, stats)
	e.state.Units = append(e.state.Units, u)
	return u
}

func addCity(e *Engine, x, y, owner int) *City {
	c := &City{
		Pos:        core.NewCoordinate(x, y),
		Owner:      owner,
		SupportCap: e.rules.SupportCap,
	}
	e.state.Cities = append(e.state.Cities, c)
	return c
}
