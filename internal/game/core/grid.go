package core

// Terrain is the type of a single map tile. Terrain is fixed after
// generation; there is no terraforming.
type Terrain uint8

const (
	Ocean Terrain = iota
	Land
)

func (t Terrain) String() string {
	if t == Land {
		return "land"
	}
	return "ocean"
}

// Glyph returns the map character for the terrain: '+' for land, '.' for ocean.
func (t Terrain) Glyph() byte {
	if t == Land {
		return '+'
	}
	return '.'
}

// Grid is the width×height terrain field, stored row-major.
type Grid struct {
	W, H int
	T    []Terrain // length = W*H
}

// NewGrid creates an all-ocean grid of the given dimensions
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, T: make([]Terrain, w*h)}
}

func (g *Grid) Idx(x, y int) int      { return y*g.W + x }
func (g *Grid) XY(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds checks if coordinates are within grid boundaries
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the terrain at (x, y). Out-of-bounds reads count as ocean so
// edge scans never need their own bounds checks.
func (g *Grid) At(x, y int) Terrain {
	if !g.InBounds(x, y) {
		return Ocean
	}
	return g.T[g.Idx(x, y)]
}

// IsLand reports whether (x, y) is in bounds and land
func (g *Grid) IsLand(x, y int) bool {
	return g.InBounds(x, y) && g.T[g.Idx(x, y)] == Land
}

// IsOcean reports whether (x, y) is in bounds and ocean
func (g *Grid) IsOcean(x, y int) bool {
	return g.InBounds(x, y) && g.T[g.Idx(x, y)] == Ocean
}

// LandTiles returns the coordinates of every land tile in row-major order
func (g *Grid) LandTiles() []Coordinate {
	var out []Coordinate
	for idx, t := range g.T {
		if t == Land {
			out = append(out, FromIndex(idx, g.W))
		}
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, T: make([]Terrain, len(g.T))}
	copy(c.T, g.T)
	return c
}
