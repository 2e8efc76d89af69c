package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateRoundTripIndex(t *testing.T) {
	c := NewCoordinate(7, 3)
	idx := c.ToIndex(10)
	assert.Equal(t, 37, idx)
	assert.Equal(t, c, FromIndex(idx, 10))
}

func TestCoordinateDistances(t *testing.T) {
	a := NewCoordinate(2, 3)
	b := NewCoordinate(5, 7)

	assert.Equal(t, 7, a.DistanceTo(b))
	assert.Equal(t, 7, b.DistanceTo(a))
	assert.Equal(t, 25, a.SquaredDistanceTo(b))
	assert.Equal(t, 0, a.DistanceTo(a))
}

func TestCoordinateStepAndAdd(t *testing.T) {
	c := NewCoordinate(4, 4)
	assert.Equal(t, NewCoordinate(5, 3), c.Step(Direction{DX: 1, DY: -1}))
	assert.Equal(t, NewCoordinate(6, 9), c.Add(NewCoordinate(2, 5)))
	assert.True(t, c.Equal(NewCoordinate(4, 4)))
	assert.False(t, c.Equal(NewCoordinate(4, 5)))
}

func TestCoordinateIsValid(t *testing.T) {
	assert.True(t, NewCoordinate(0, 0).IsValid(5, 5))
	assert.True(t, NewCoordinate(4, 4).IsValid(5, 5))
	assert.False(t, NewCoordinate(5, 4).IsValid(5, 5))
	assert.False(t, NewCoordinate(-1, 0).IsValid(5, 5))
}

func TestNewDirectionNormalizes(t *testing.T) {
	assert.Equal(t, Direction{DX: 1, DY: -1}, NewDirection(7, -3))
	assert.Equal(t, Direction{}, NewDirection(0, 0))
	assert.True(t, NewDirection(0, 0).IsZero())
}

func TestDirectionIsUnitStep(t *testing.T) {
	assert.True(t, Direction{DX: 1, DY: 0}.IsUnitStep())
	assert.True(t, Direction{DX: -1, DY: -1}.IsUnitStep())
	assert.False(t, Direction{}.IsUnitStep(), "the null step is not a move")
	assert.False(t, Direction{DX: 2, DY: 0}.IsUnitStep())
}

func TestCompassStepsCoverAllNeighbors(t *testing.T) {
	assert.Len(t, CompassSteps, 8)

	seen := make(map[Direction]bool)
	for _, d := range CompassSteps {
		assert.True(t, d.IsUnitStep())
		seen[d] = true
	}
	assert.Len(t, seen, 8, "all eight neighbors, no duplicates")

	// Orthogonal steps come first so spawn searches prefer them.
	for _, d := range CompassSteps[:4] {
		assert.True(t, d.DX == 0 || d.DY == 0)
	}
}
