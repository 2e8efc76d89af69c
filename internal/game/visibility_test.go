package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/testutil"
)

func TestMarkVisibleCircleUsesSquaredDistance(t *testing.T) {
	fog := NewFogOfWar(2, 10, 10)
	fog.MarkVisibleCircle(0, 5, 5, 2)

	assert.True(t, fog.IsVisible(0, 5, 5))
	assert.True(t, fog.IsVisible(0, 7, 5))
	assert.True(t, fog.IsVisible(0, 6, 6), "distance sqrt(2) is inside radius 2")
	assert.False(t, fog.IsVisible(0, 7, 7), "distance sqrt(8) is outside radius 2")
	assert.False(t, fog.IsVisible(0, 8, 5))

	// The other player's fog is untouched.
	assert.False(t, fog.IsVisible(1, 5, 5))
	assert.False(t, fog.IsExplored(1, 5, 5))
}

func TestExploredOutlivesVisibility(t *testing.T) {
	fog := NewFogOfWar(2, 10, 10)
	fog.MarkVisibleCircle(0, 5, 5, 2)
	fog.ClearVisible(0)

	assert.False(t, fog.IsVisible(0, 5, 5))
	assert.True(t, fog.IsExplored(0, 5, 5), "explored is never cleared")
}

func TestFogQueriesOutOfBounds(t *testing.T) {
	fog := NewFogOfWar(2, 10, 10)
	assert.False(t, fog.IsVisible(0, -1, 0))
	assert.False(t, fog.IsExplored(0, 0, 10))
	assert.False(t, fog.IsVisible(5, 0, 0), "unknown player is never visible")
}

func TestRecomputeVisibilityCoversCitiesAndUnits(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(20, 20), 1)
	addCity(e, 3, 3, 0)
	addUnit(e, UnitFighter, 15, 15, 0)
	addCity(e, 10, 3, 1)

	e.state.RecomputeVisibility(0, e.rules)

	fog := e.state.Fog
	assert.True(t, fog.IsVisible(0, 3, 3))
	assert.True(t, fog.IsVisible(0, 3, 6), "city sight radius is 3")
	assert.True(t, fog.IsVisible(0, 15, 19), "fighter sight radius is 4")
	assert.False(t, fog.IsVisible(0, 10, 3), "enemy cities grant no sight")
}

func TestVisibleIsSubsetOfExplored(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(20, 20), 3)
	addCity(e, 3, 3, 0)
	u := addUnit(e, UnitArmy, 10, 10, 0)
	e.state.RecomputeVisibility(0, e.rules)

	// Move the army around and recompute a few times.
	for i := 0; i < 5; i++ {
		u.Pos.X++
		e.state.RecomputeVisibility(0, e.rules)
	}

	fog := e.state.Fog
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if fog.IsVisible(0, x, y) {
				require.True(t, fog.IsExplored(0, x, y),
					"visible tile (%d,%d) must be explored", x, y)
			}
		}
	}
	assert.True(t, fog.IsExplored(0, 12, 10), "old positions stay explored")
	assert.False(t, fog.IsVisible(0, 8, 10), "old positions fall out of sight")
}

func TestDeadUnitsGrantNoSight(t *testing.T) {
	e := newTestEngine(testutil.FlatLandGrid(20, 20), 1)
	u := addUnit(e, UnitArmy, 10, 10, 0)
	e.state.RecomputeVisibility(0, e.rules)
	assert.True(t, e.state.Fog.IsVisible(0, 10, 10))

	u.HP = 0
	e.state.RecomputeVisibility(0, e.rules)
	assert.False(t, e.state.Fog.IsVisible(0, 10, 10))
}
