package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridIsAllOcean(t *testing.T) {
	g := NewGrid(4, 3)
	assert.Len(t, g.T, 12)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Ocean, g.At(x, y))
		}
	}
}

func TestGridBoundsAndQueries(t *testing.T) {
	g := NewGrid(4, 3)
	g.T[g.Idx(2, 1)] = Land

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(3, 2))
	assert.False(t, g.InBounds(4, 0))
	assert.False(t, g.InBounds(0, -1))

	assert.True(t, g.IsLand(2, 1))
	assert.True(t, g.IsOcean(0, 0))
	assert.False(t, g.IsLand(10, 10))
	assert.False(t, g.IsOcean(10, 10), "out of bounds is neither")
	assert.Equal(t, Ocean, g.At(-1, -1), "out-of-bounds reads count as ocean")
}

func TestGridLandTilesRowMajor(t *testing.T) {
	g := NewGrid(3, 3)
	g.T[g.Idx(2, 0)] = Land
	g.T[g.Idx(0, 1)] = Land

	tiles := g.LandTiles()
	assert.Equal(t, []Coordinate{{X: 2, Y: 0}, {X: 0, Y: 1}}, tiles)
}

func TestGridClone(t *testing.T) {
	g := NewGrid(3, 3)
	g.T[0] = Land

	c := g.Clone()
	c.T[0] = Ocean
	assert.Equal(t, Land, g.T[0], "clone does not alias the original")
}

func TestTerrainGlyphs(t *testing.T) {
	assert.Equal(t, byte('+'), Land.Glyph())
	assert.Equal(t, byte('.'), Ocean.Glyph())
	assert.Equal(t, "land", Land.String())
	assert.Equal(t, "ocean", Ocean.String())
}
