package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

func TestCityOwnershipAndGlyphs(t *testing.T) {
	c := &City{Pos: core.NewCoordinate(2, 3), Owner: NeutralID}
	assert.True(t, c.IsNeutral())
	assert.Equal(t, byte('o'), c.Glyph())

	c.Owner = 0
	assert.False(t, c.IsNeutral())
	assert.Equal(t, byte('O'), c.Glyph())

	c.Owner = 1
	assert.Equal(t, byte('X'), c.Glyph())
}

func TestCityProductionLifecycle(t *testing.T) {
	c := &City{Pos: core.NewCoordinate(0, 0), Owner: 0}
	assert.False(t, c.HasProduction)

	c.SetProduction(UnitCarrier, 18)
	assert.True(t, c.HasProduction)
	assert.Equal(t, UnitCarrier, c.Production)
	assert.Equal(t, 18, c.Cost)

	c.Progress = 9
	c.SetProduction(UnitArmy, 6)
	assert.Equal(t, 9, c.Progress, "switching production keeps accumulated progress")
	assert.Equal(t, 6, c.Cost)

	c.ClearProduction()
	assert.False(t, c.HasProduction)
	assert.Equal(t, 0, c.Cost)
	assert.Equal(t, 9, c.Progress)
}

func TestCityString(t *testing.T) {
	c := &City{Pos: core.NewCoordinate(4, 1), Owner: 1}
	assert.Contains(t, c.String(), "P2")

	c.Owner = NeutralID
	assert.Contains(t, c.String(), "neutral")
}
