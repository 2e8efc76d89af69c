package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

func TestTelemetryCounters(t *testing.T) {
	tel := NewTelemetry(2, 8)

	tel.RecordKill(0, UnitArmy)
	tel.RecordKill(0, UnitArmy)
	tel.RecordKill(0, UnitFighter)
	tel.RecordLoss(1, UnitArmy)

	assert.Equal(t, 2, tel.Kills(0, UnitArmy))
	assert.Equal(t, 1, tel.Kills(0, UnitFighter))
	assert.Equal(t, 3, tel.TotalKills(0))
	assert.Equal(t, 1, tel.Losses(1, UnitArmy))
	assert.Equal(t, 0, tel.Kills(1, UnitArmy))
}

func TestTelemetryIgnoresUnknownPlayers(t *testing.T) {
	tel := NewTelemetry(2, 8)
	tel.RecordKill(7, UnitArmy)
	tel.RecordLoss(-1, UnitArmy)

	assert.Equal(t, 0, tel.TotalKills(0))
	assert.Equal(t, 0, tel.Kills(7, UnitArmy))
}

func TestReportRingEvictsOldest(t *testing.T) {
	tel := NewTelemetry(2, 3)
	for i := 1; i <= 5; i++ {
		tel.AddReport(BattleReport{Turn: i, Location: core.NewCoordinate(i, 0)})
	}

	reports := tel.Reports()
	require.Len(t, reports, 3)
	assert.Equal(t, 3, reports[0].Turn, "oldest retained report comes first")
	assert.Equal(t, 4, reports[1].Turn)
	assert.Equal(t, 5, reports[2].Turn)
}

func TestReportRingBelowCapacity(t *testing.T) {
	tel := NewTelemetry(2, 8)
	tel.AddReport(BattleReport{Turn: 1})
	tel.AddReport(BattleReport{Turn: 2})

	reports := tel.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, 1, reports[0].Turn)
	assert.Equal(t, 2, reports[1].Turn)
}

func TestBattleReportString(t *testing.T) {
	r := BattleReport{
		Turn:          3,
		Attacker:      UnitFighter,
		AttackerOwner: 0,
		Defender:      UnitArmy,
		DefenderOwner: 1,
		Location:      core.NewCoordinate(4, 7),
		AttackerHit:   0.65,
		DefenderHit:   0.35,
		Outcome:       "attacker won",
	}
	s := r.String()
	assert.Contains(t, s, "T3")
	assert.Contains(t, s, "Fighter(P1)")
	assert.Contains(t, s, "Army(P2)")
	assert.Contains(t, s, fmt.Sprintf("@%s", core.NewCoordinate(4, 7)))
	assert.Contains(t, s, "attacker won")
}
