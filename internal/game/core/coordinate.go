package core

import "fmt"

// Coordinate represents a position on the game map
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a grid array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a grid array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// SquaredDistanceTo returns the squared Euclidean distance to another
// coordinate. Sight and blast circles compare against radius² so no floating
// point is involved.
func (c Coordinate) SquaredDistanceTo(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Step returns the coordinate one step away in the given direction
func (c Coordinate) Step(d Direction) Coordinate {
	return Coordinate{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a single-tile step. Empire units move to any of the 8
// neighboring tiles, so both components range over {-1, 0, 1}.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// NewDirection normalizes an arbitrary delta to a unit step by taking the
// sign of each component.
func NewDirection(dx, dy int) Direction {
	return Direction{DX: sign(dx), DY: sign(dy)}
}

// IsZero reports whether the direction is the null step
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// IsUnitStep reports whether both components are in {-1, 0, 1} and the
// direction is not the null step.
func (d Direction) IsUnitStep() bool {
	return !d.IsZero() &&
		d.DX >= -1 && d.DX <= 1 &&
		d.DY >= -1 && d.DY <= 1
}

// Equal checks if two directions are equal
func (d Direction) Equal(other Direction) bool {
	return d.DX == other.DX && d.DY == other.DY
}

func (d Direction) String() string {
	return fmt.Sprintf("(%+d,%+d)", d.DX, d.DY)
}

// CompassSteps lists the 8 neighbor offsets in the fixed priority order used
// by spawn searches: the four orthogonal steps first, then the diagonals.
var CompassSteps = []Direction{
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
	{DX: 0, DY: 1},
	{DX: 0, DY: -1},
	{DX: 1, DY: 1},
	{DX: 1, DY: -1},
	{DX: -1, DY: 1},
	{DX: -1, DY: -1},
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
