package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/testutil"
)

func newTestResolver(seed int64) *CombatResolver {
	return NewCombatResolver(testRules().Combat, testutil.NewTestRNG(seed), testutil.NopLogger())
}

func testUnit(t UnitType, owner int) *Unit {
	r := testRules()
	return NewUnit(t, core.NewCoordinate(0, 0), owner, r.Stats[t])
}

func TestResolveKillsExactlyOneSide(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cr := newTestResolver(seed)
		attacker := testUnit(UnitArmy, 0)
		defender := testUnit(UnitArmy, 1)

		outcome := cr.Resolve(attacker, defender, false)

		require.NotEqual(t, outcome.AttackerAlive, outcome.DefenderAlive,
			"seed %d: one side must die", seed)
		if outcome.AttackerAlive {
			assert.Equal(t, 0, defender.HP)
			assert.Positive(t, attacker.HP)
		} else {
			assert.Equal(t, 0, attacker.HP)
			assert.Positive(t, defender.HP)
		}
		assert.Positive(t, outcome.Rounds)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	run := func() (CombatOutcome, int, int) {
		cr := newTestResolver(99)
		attacker := testUnit(UnitArmy, 0)
		defender := testUnit(UnitArmy, 1)
		outcome := cr.Resolve(attacker, defender, false)
		return outcome, attacker.HP, defender.HP
	}

	o1, a1, d1 := run()
	o2, a2, d2 := run()
	assert.Equal(t, o1, o2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, d1, d2)
}

func TestMatchupTableSelection(t *testing.T) {
	cr := newTestResolver(1)

	tests := []struct {
		name     string
		attacker UnitType
		defender UnitType
		atkHit   float64
		defHit   float64
	}{
		{"fighter strafes army", UnitFighter, UnitArmy, 0.65, 0.35},
		{"fighter vs carrier", UnitFighter, UnitCarrier, 0.50, 0.40},
		{"fighter vs fighter", UnitFighter, UnitFighter, 0.50, 0.40},
		{"army vs army", UnitArmy, UnitArmy, 0.55, 0.50},
		{"army vs fighter", UnitArmy, UnitFighter, 0.55, 0.50},
		{"carrier vs carrier", UnitCarrier, UnitCarrier, 0.55, 0.50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			atk, def := cr.hitChances(testUnit(tc.attacker, 0), testUnit(tc.defender, 1))
			assert.InDelta(t, tc.atkHit, atk, 1e-9)
			assert.InDelta(t, tc.defHit, def, 1e-9)
		})
	}
}

func TestCityDefenseSwingAppearsInOutcome(t *testing.T) {
	cr := newTestResolver(5)
	outcome := cr.Resolve(testUnit(UnitArmy, 0), testUnit(UnitArmy, 1), true)

	assert.InDelta(t, 0.45, outcome.AttackerHit, 1e-9)
	assert.InDelta(t, 0.60, outcome.DefenderHit, 1e-9)
}

func TestOutcomeTag(t *testing.T) {
	assert.Equal(t, "attacker won", CombatOutcome{AttackerAlive: true}.OutcomeTag())
	assert.Equal(t, "defender held", CombatOutcome{DefenderAlive: true}.OutcomeTag())
	assert.Equal(t, "mutual destruction", CombatOutcome{}.OutcomeTag())
}
