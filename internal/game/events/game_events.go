package events

import (
	"time"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypeTurnStarted      = "turn.started"
	TypeTurnEnded        = "turn.ended"
	TypeMoveExecuted     = "move.executed"
	TypeCombatResolved   = "combat.resolved"
	TypeCityCaptured     = "city.captured"
	TypeCityFounded      = "city.founded"
	TypeUnitSpawned      = "unit.spawned"
	TypeUnitDestroyed    = "unit.destroyed"
	TypeMissileDetonated = "missile.detonated"
	TypePlayerWon        = "player.won"
	TypeStateTransition  = "state.transition"
)

// Unit types cross the event boundary as strings so this package stays
// independent of the game package.

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	NumPlayers int
	MapWidth   int
	MapHeight  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, width, height int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		NumPlayers: numPlayers,
		MapWidth:   width,
		MapHeight:  height,
	}
}

// TurnStartedEvent is published when control passes to a player
type TurnStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	TurnNumber int
	PlayerID   int
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(gameID string, turn, playerID int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		TurnNumber: turn,
		PlayerID:   playerID,
	}
}

// TurnEndedEvent is published when a player finishes their turn
type TurnEndedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	TurnNumber int
	PlayerID   int
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, turn, playerID int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		TurnNumber: turn,
		PlayerID:   playerID,
	}
}

// MoveExecutedEvent is published when a unit relocates to a new tile
type MoveExecutedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	UnitType string
	From     core.Coordinate
	To       core.Coordinate
}

// NewMoveExecutedEvent creates a new MoveExecutedEvent
func NewMoveExecutedEvent(gameID string, playerID int, unitType string, from, to core.Coordinate, turn int) *MoveExecutedEvent {
	return &MoveExecutedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveExecuted,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
		UnitType: unitType,
		From:     from,
		To:       to,
	}
}

// CombatResolvedEvent is published when a battle finishes
type CombatResolvedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	AttackerID    int
	DefenderID    int
	AttackerType  string
	DefenderType  string
	Location      core.Coordinate
	AttackerAlive bool
	DefenderAlive bool
}

// NewCombatResolvedEvent creates a new CombatResolvedEvent
func NewCombatResolvedEvent(gameID string, attacker, defender int, attackerType, defenderType string,
	location core.Coordinate, attackerAlive, defenderAlive bool, turn int) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeCombatResolved,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: attacker,
			Turn:     turn,
		},
		AttackerID:    attacker,
		DefenderID:    defender,
		AttackerType:  attackerType,
		DefenderType:  defenderType,
		Location:      location,
		AttackerAlive: attackerAlive,
		DefenderAlive: defenderAlive,
	}
}

// CityCapturedEvent is published when a city changes hands
type CityCapturedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	Location      core.Coordinate
	NewOwner      int
	PreviousOwner int
}

// NewCityCapturedEvent creates a new CityCapturedEvent
func NewCityCapturedEvent(gameID string, location core.Coordinate, newOwner, previousOwner, turn int) *CityCapturedEvent {
	return &CityCapturedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeCityCaptured,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: newOwner,
			Turn:     turn,
		},
		Location:      location,
		NewOwner:      newOwner,
		PreviousOwner: previousOwner,
	}
}

// CityFoundedEvent is published when an army founds a new city
type CityFoundedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Location core.Coordinate
	Owner    int
}

// NewCityFoundedEvent creates a new CityFoundedEvent
func NewCityFoundedEvent(gameID string, location core.Coordinate, owner, turn int) *CityFoundedEvent {
	return &CityFoundedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeCityFounded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: owner,
			Turn:     turn,
		},
		Location: location,
		Owner:    owner,
	}
}

// UnitSpawnedEvent is published when a city completes production
type UnitSpawnedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitType string
	Location core.Coordinate
	Owner    int
}

// NewUnitSpawnedEvent creates a new UnitSpawnedEvent
func NewUnitSpawnedEvent(gameID string, unitType string, location core.Coordinate, owner, turn int) *UnitSpawnedEvent {
	return &UnitSpawnedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeUnitSpawned,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: owner,
			Turn:     turn,
		},
		UnitType: unitType,
		Location: location,
		Owner:    owner,
	}
}

// UnitDestroyedEvent is published when a unit dies outside of direct combat
type UnitDestroyedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitType string
	Location core.Coordinate
	Owner    int
	Reason   string
}

// NewUnitDestroyedEvent creates a new UnitDestroyedEvent
func NewUnitDestroyedEvent(gameID string, unitType string, location core.Coordinate, owner int, reason string, turn int) *UnitDestroyedEvent {
	return &UnitDestroyedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeUnitDestroyed,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: owner,
			Turn:     turn,
		},
		UnitType: unitType,
		Location: location,
		Owner:    owner,
		Reason:   reason,
	}
}

// MissileDetonatedEvent is published when a nuclear missile detonates
type MissileDetonatedEvent struct {
	BaseEvent
	Metadata          EventMetadata
	Location          core.Coordinate
	Owner             int
	UnitsDestroyed    int
	CitiesNeutralized int
}

// NewMissileDetonatedEvent creates a new MissileDetonatedEvent
func NewMissileDetonatedEvent(gameID string, location core.Coordinate, owner, unitsDestroyed, citiesNeutralized, turn int) *MissileDetonatedEvent {
	return &MissileDetonatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMissileDetonated,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: owner,
			Turn:     turn,
		},
		Location:          location,
		Owner:             owner,
		UnitsDestroyed:    unitsDestroyed,
		CitiesNeutralized: citiesNeutralized,
	}
}

// PlayerWonEvent is published once when the game reaches a winner
type PlayerWonEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Winner    int
	FinalTurn int
}

// NewPlayerWonEvent creates a new PlayerWonEvent
func NewPlayerWonEvent(gameID string, winner, finalTurn int) *PlayerWonEvent {
	return &PlayerWonEvent{
		BaseEvent: BaseEvent{
			EventType: TypePlayerWon,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: winner,
			Turn:     finalTurn,
		},
		Winner:    winner,
		FinalTurn: finalTurn,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: BaseEvent{
			EventType: TypeStateTransition,
			Time:      time.Now(),
			Game:      gameID,
		},
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
