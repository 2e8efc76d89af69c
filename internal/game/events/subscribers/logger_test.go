package subscribers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/events"
)

func newCaptureSubscriber() (*LoggerSubscriber, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	return NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLoggerSubscriberLogsEventFields(t *testing.T) {
	ls, buf := newCaptureSubscriber()

	ls.HandleEvent(events.NewCombatResolvedEvent("g1", 0, 1, "Fighter", "Army",
		core.NewCoordinate(4, 2), true, false, 3))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, events.TypeCombatResolved, line["event_type"])
	assert.Equal(t, "g1", line["game_id"])
	assert.Equal(t, "Fighter", line["attacker_type"])
	assert.Equal(t, "(4,2)", line["location"])
	assert.Equal(t, true, line["attacker_alive"])
	assert.Equal(t, false, line["defender_alive"])
	assert.Equal(t, "Game event", line["message"])
}

func TestLoggerSubscriberEventFilter(t *testing.T) {
	ls, _ := newCaptureSubscriber()

	assert.True(t, ls.InterestedIn(events.TypeTurnStarted), "no filter means everything")

	ls.SetEventFilter([]string{events.TypePlayerWon})
	assert.True(t, ls.InterestedIn(events.TypePlayerWon))
	assert.False(t, ls.InterestedIn(events.TypeTurnStarted))

	ls.SetEventFilter(nil)
	assert.True(t, ls.InterestedIn(events.TypeTurnStarted))
}

func TestLoggerSubscriberRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.InfoLevel)
	ls := NewLoggerSubscriber("quiet", logger, zerolog.DebugLevel)

	ls.HandleEvent(events.NewTurnStartedEvent("g1", 1, 0))
	assert.Zero(t, buf.Len(), "debug events are dropped at info level")
}

func TestLoggerSubscriberID(t *testing.T) {
	ls, _ := newCaptureSubscriber()
	assert.Equal(t, "test-logger", ls.ID())
}
