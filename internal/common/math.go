package common

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the inclusive range [low, high]
func Clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// ManhattanDistance calculates the Manhattan distance between two points
func ManhattanDistance(x1, y1, x2, y2 int) int {
	return Abs(x1-x2) + Abs(y1-y2)
}

// WithinRadius reports whether (x2, y2) lies inside the Euclidean circle of
// the given radius around (x1, y1), using the squared-distance comparison.
func WithinRadius(x1, y1, x2, y2, radius int) bool {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx+dy*dy <= radius*radius
}
