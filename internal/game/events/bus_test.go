package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

type recordingSubscriber struct {
	id       string
	types    map[string]bool
	received []Event
}

func (rs *recordingSubscriber) ID() string { return rs.id }
func (rs *recordingSubscriber) HandleEvent(e Event) {
	rs.received = append(rs.received, e)
}
func (rs *recordingSubscriber) InterestedIn(eventType string) bool {
	if rs.types == nil {
		return true
	}
	return rs.types[eventType]
}

func TestEventBusDeliversToSubscribers(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "rec"}
	bus.Subscribe(sub)

	bus.Publish(NewGameStartedEvent("g1", 2, 60, 24))
	bus.Publish(NewTurnStartedEvent("g1", 1, 0))

	require.Len(t, sub.received, 2)
	assert.Equal(t, TypeGameStarted, sub.received[0].Type())
	assert.Equal(t, TypeTurnStarted, sub.received[1].Type())
	assert.Equal(t, "g1", sub.received[0].GameID())
}

func TestEventBusFiltersByInterest(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{
		id:    "filtered",
		types: map[string]bool{TypeCombatResolved: true},
	}
	bus.Subscribe(sub)

	bus.Publish(NewTurnStartedEvent("g1", 1, 0))
	bus.Publish(NewCombatResolvedEvent("g1", 0, 1, "Army", "Army",
		core.NewCoordinate(3, 3), true, false, 1))

	require.Len(t, sub.received, 1)
	assert.Equal(t, TypeCombatResolved, sub.received[0].Type())
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "gone"}
	bus.Subscribe(sub)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Unsubscribe("gone")
	assert.Equal(t, 0, bus.GetSubscriberCount())

	bus.Publish(NewTurnStartedEvent("g1", 1, 0))
	assert.Empty(t, sub.received)
}

func TestEventBusFuncHandlers(t *testing.T) {
	bus := NewEventBus()

	var got []Event
	bus.SubscribeFunc(TypePlayerWon, func(e Event) {
		got = append(got, e)
	})
	assert.Equal(t, 1, bus.GetFuncHandlerCount(TypePlayerWon))

	bus.Publish(NewPlayerWonEvent("g1", 0, 12))
	bus.Publish(NewTurnStartedEvent("g1", 13, 1))

	require.Len(t, got, 1)
	won, ok := got[0].(*PlayerWonEvent)
	require.True(t, ok)
	assert.Equal(t, 0, won.Winner)
	assert.Equal(t, 12, won.FinalTurn)
}

func TestEventBusRecoversFromPanickingHandler(t *testing.T) {
	bus := NewEventBus()
	bus.SubscribeFunc(TypeTurnStarted, func(Event) {
		panic("broken handler")
	})
	calls := 0
	bus.SubscribeFunc(TypeTurnStarted, func(Event) {
		calls++
	})

	assert.NotPanics(t, func() {
		bus.Publish(NewTurnStartedEvent("g1", 1, 0))
	})
	assert.Equal(t, 1, calls, "a panicking handler does not block the rest")
}
