package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/testutil"
)

func TestUnitAtSkipsDeadUnits(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(10, 10), 1)
	dead := addUnit(e, UnitArmy, 5, 5, 0)
	dead.HP = 0
	alive := addUnit(e, UnitArmy, 5, 5, 1)

	assert.Same(t, alive, e.state.UnitAt(5, 5))
	assert.Nil(t, e.state.UnitAt(0, 0))
}

func TestSupportCountMatchesHomeCity(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(10, 10), 1)
	city := addCity(e, 5, 5, 0)

	homed := addUnit(e, UnitArmy, 1, 1, 0)
	homed.SetHome(city.Pos)
	other := addUnit(e, UnitArmy, 2, 2, 0)
	other.SetHome(core.NewCoordinate(9, 9))
	addUnit(e, UnitArmy, 3, 3, 0) // no home
	fighter := addUnit(e, UnitFighter, 4, 4, 0)
	fighter.SetHome(city.Pos) // only armies count

	deadHomed := addUnit(e, UnitArmy, 6, 6, 0)
	deadHomed.SetHome(city.Pos)
	deadHomed.HP = 0

	assert.Equal(t, 1, e.state.SupportCount(city.Pos))
}

func TestPruneDeadUnitsPreservesOrder(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(10, 10), 1)
	a := addUnit(e, UnitArmy, 1, 1, 0)
	b := addUnit(e, UnitArmy, 2, 2, 0)
	b.HP = 0
	c := addUnit(e, UnitArmy, 3, 3, 1)

	e.state.PruneDeadUnits()
	require.Len(t, e.state.Units, 2)
	assert.Same(t, a, e.state.Units[0])
	assert.Same(t, c, e.state.Units[1])
}

func TestCityOwnersAndCounts(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(10, 10), 1)
	addCity(e, 1, 1, 0)
	addCity(e, 2, 2, 1)
	addCity(e, 3, 3, 1)
	addCity(e, 4, 4, NeutralID)

	assert.Equal(t, []int{0, 1, 1, NeutralID}, e.state.CityOwners())
	assert.Equal(t, 1, e.state.CityCount(0))
	assert.Equal(t, 2, e.state.CityCount(1))
	assert.Equal(t, 1, e.state.Opponent(0))
	assert.Equal(t, 0, e.state.Opponent(1))
}

func TestSelectNextUnitCyclesWithMoves(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(10, 10), 1)
	first := addUnit(e, UnitArmy, 1, 1, 0)
	second := addUnit(e, UnitArmy, 2, 2, 0)
	third := addUnit(e, UnitArmy, 3, 3, 0)
	theirs := addUnit(e, UnitArmy, 4, 4, 1)

	assert.Same(t, second, e.state.SelectNextUnit(0, first))
	assert.Same(t, third, e.state.SelectNextUnit(0, second))
	assert.Same(t, first, e.state.SelectNextUnit(0, third), "selection wraps")

	// Exhausted units are skipped.
	second.MovesLeft = 0
	assert.Same(t, third, e.state.SelectNextUnit(0, first))

	// With no current unit, the first movable unit is chosen.
	assert.Same(t, first, e.state.SelectNextUnit(0, nil))

	// Ownership is respected.
	assert.Same(t, theirs, e.state.SelectNextUnit(1, nil))
}

func TestSelectNextUnitNoUnits(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(10, 10), 1)
	assert.Nil(t, e.state.SelectNextUnit(0, nil))
}
