package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent = logEvent.
			Int("num_players", e.NumPlayers).
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight)
	case *events.TurnStartedEvent:
		logEvent = logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID)
	case *events.TurnEndedEvent:
		logEvent = logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID)
	case *events.MoveExecutedEvent:
		logEvent = logEvent.
			Int("player_id", e.PlayerID).
			Str("unit_type", e.UnitType).
			Str("from", e.From.String()).
			Str("to", e.To.String())
	case *events.CombatResolvedEvent:
		logEvent = logEvent.
			Int("attacker_id", e.AttackerID).
			Int("defender_id", e.DefenderID).
			Str("attacker_type", e.AttackerType).
			Str("defender_type", e.DefenderType).
			Str("location", e.Location.String()).
			Bool("attacker_alive", e.AttackerAlive).
			Bool("defender_alive", e.DefenderAlive)
	case *events.CityCapturedEvent:
		logEvent = logEvent.
			Str("location", e.Location.String()).
			Int("new_owner", e.NewOwner).
			Int("previous_owner", e.PreviousOwner)
	case *events.CityFoundedEvent:
		logEvent = logEvent.
			Str("location", e.Location.String()).
			Int("owner", e.Owner)
	case *events.UnitSpawnedEvent:
		logEvent = logEvent.
			Str("unit_type", e.UnitType).
			Str("location", e.Location.String()).
			Int("owner", e.Owner)
	case *events.UnitDestroyedEvent:
		logEvent = logEvent.
			Str("unit_type", e.UnitType).
			Str("location", e.Location.String()).
			Int("owner", e.Owner).
			Str("reason", e.Reason)
	case *events.MissileDetonatedEvent:
		logEvent = logEvent.
			Str("location", e.Location.String()).
			Int("owner", e.Owner).
			Int("units_destroyed", e.UnitsDestroyed).
			Int("cities_neutralized", e.CitiesNeutralized)
	case *events.PlayerWonEvent:
		logEvent = logEvent.
			Int("winner", e.Winner).
			Int("final_turn", e.FinalTurn)
	case *events.StateTransitionEvent:
		logEvent = logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	logEvent.Msg("Game event")
}
