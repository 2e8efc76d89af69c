package mapgen

import (
	"math/rand"
	"sort"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/config"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width           int
	Height          int
	LandFraction    float64
	SmoothingPasses int
	Cities          int
	MinSeparation   int
}

// DefaultMapConfig returns the configured map generation settings.
// Non-positive dimensions fall back to the configured defaults.
func DefaultMapConfig(w, h int) MapConfig {
	mc := config.Get().Game.Map
	if w <= 0 {
		w = mc.Width
	}
	if h <= 0 {
		h = mc.Height
	}
	return MapConfig{
		Width:           w,
		Height:          h,
		LandFraction:    mc.LandFraction,
		SmoothingPasses: mc.SmoothingPasses,
		Cities:          mc.Cities,
		MinSeparation:   mc.MinSeparation,
	}
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(cfg MapConfig, rng *rand.Rand) *Generator {
	return &Generator{config: cfg, rng: rng}
}

// GenerateTerrain produces the land/ocean grid: random noise, cellular
// automaton smoothing, a percentile threshold hitting the requested land
// fraction, two cleanup passes, and finally corridor carving so all land
// forms a single 4-connected region.
func (g *Generator) GenerateTerrain() *core.Grid {
	w, h := g.config.Width, g.config.Height

	noise := make([]float64, w*h)
	for i := range noise {
		noise[i] = g.rng.Float64()
	}

	for pass := 0; pass < g.config.SmoothingPasses; pass++ {
		noise = g.smoothNoise(noise, w, h)
	}

	threshold := percentileThreshold(noise, g.config.LandFraction)

	grid := core.NewGrid(w, h)
	for i, v := range noise {
		if v >= threshold {
			grid.T[i] = core.Land
		}
	}

	// Two extra passes remove tiny lakes and peninsulas left by thresholding.
	for pass := 0; pass < 2; pass++ {
		smoothTerrain(grid)
	}

	ensureConnectedLand(grid)
	return grid
}

// smoothNoise nudges each cell toward its neighborhood majority: cells with
// at least 5 land-leaning neighbors (value > 0.5) gain 0.2, cells with at
// most 3 lose 0.2.
func (g *Generator) smoothNoise(noise []float64, w, h int) []float64 {
	out := make([]float64, len(noise))
	copy(out, noise)

	landish := func(x, y int) int {
		n := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx >= 0 && nx < w && ny >= 0 && ny < h && noise[ny*w+nx] > 0.5 {
					n++
				}
			}
		}
		return n
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch n := landish(x, y); {
			case n >= 5:
				v := noise[y*w+x] + 0.2
				if v > 1.0 {
					v = 1.0
				}
				out[y*w+x] = v
			case n <= 3:
				v := noise[y*w+x] - 0.2
				if v < 0.0 {
					v = 0.0
				}
				out[y*w+x] = v
			}
		}
	}
	return out
}

// percentileThreshold picks the noise value at the (1 - landFraction)
// percentile so roughly landFraction of cells end up at or above it.
func percentileThreshold(noise []float64, landFraction float64) float64 {
	sorted := make([]float64, len(noise))
	copy(sorted, noise)
	sort.Float64s(sorted)

	idx := int((1.0 - landFraction) * float64(len(sorted)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// smoothTerrain flips each tile toward its 8-neighborhood majority in place:
// 5+ land neighbors make land, 5+ ocean neighbors make ocean.
func smoothTerrain(grid *core.Grid) {
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			land, ocean := 0, 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !grid.InBounds(nx, ny) {
						continue
					}
					if grid.T[grid.Idx(nx, ny)] == core.Land {
						land++
					} else {
						ocean++
					}
				}
			}
			if land >= 5 {
				grid.T[grid.Idx(x, y)] = core.Land
			} else if ocean >= 5 {
				grid.T[grid.Idx(x, y)] = core.Ocean
			}
		}
	}
}

// ensureConnectedLand finds 4-connected land components and carves a
// Manhattan corridor from every minor component to the largest one, so the
// final map has exactly one landmass.
func ensureConnectedLand(grid *core.Grid) {
	components := landComponents(grid)
	if len(components) <= 1 {
		return
	}

	sort.Slice(components, func(i, j int) bool {
		return len(components[i]) > len(components[j])
	})

	main := components[0][0]
	for _, comp := range components[1:] {
		carveCorridor(grid, comp[0], main)
	}
}

// landComponents returns the 4-connected land components, each as a list of
// coordinates with the BFS start first.
func landComponents(grid *core.Grid) [][]core.Coordinate {
	visited := make([]bool, len(grid.T))
	var components [][]core.Coordinate

	for start := range grid.T {
		if visited[start] || grid.T[start] != core.Land {
			continue
		}
		comp := []core.Coordinate{core.FromIndex(start, grid.W)}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			x, y := grid.XY(idx)
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if !grid.InBounds(nx, ny) {
					continue
				}
				nidx := grid.Idx(nx, ny)
				if visited[nidx] || grid.T[nidx] != core.Land {
					continue
				}
				visited[nidx] = true
				queue = append(queue, nidx)
				comp = append(comp, core.NewCoordinate(nx, ny))
			}
		}
		components = append(components, comp)
	}
	return components
}

// carveCorridor turns tiles into land along the axis-aligned path from a to
// b, x leg first.
func carveCorridor(grid *core.Grid, from, to core.Coordinate) {
	x, y := from.X, from.Y
	for x != to.X {
		grid.T[grid.Idx(x, y)] = core.Land
		if to.X > x {
			x++
		} else {
			x--
		}
	}
	for y != to.Y {
		grid.T[grid.Idx(x, y)] = core.Land
		if to.Y > y {
			y++
		} else {
			y--
		}
	}
	grid.T[grid.Idx(x, y)] = core.Land
}

// PlaceCitySites scatters city locations on land: shuffle every land tile,
// then greedily accept candidates whose Manhattan distance to all accepted
// sites is at least MinSeparation, stopping at the configured count.
func (g *Generator) PlaceCitySites(grid *core.Grid) []core.Coordinate {
	candidates := grid.LandTiles()
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var placed []core.Coordinate
	for _, c := range candidates {
		if len(placed) >= g.config.Cities {
			break
		}
		ok := true
		for _, p := range placed {
			if p.DistanceTo(c) < g.config.MinSeparation {
				ok = false
				break
			}
		}
		if ok {
			placed = append(placed, c)
		}
	}
	return placed
}
