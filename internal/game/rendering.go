package game

import "github.com/mitchelldurbincs/EmpireHotseat/internal/common"

// Viewport is a rectangular window onto the map, in tile coordinates
type Viewport struct {
	X, Y int
	W, H int
}

// Clip returns the viewport intersected with the map bounds
func (v Viewport) Clip(mapW, mapH int) Viewport {
	x0 := common.Clamp(v.X, 0, mapW)
	y0 := common.Clamp(v.Y, 0, mapH)
	x1 := common.Clamp(v.X+v.W, 0, mapW)
	y1 := common.Clamp(v.Y+v.H, 0, mapH)
	return Viewport{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// RenderSnapshot renders the viewport as rows of glyphs from one player's
// point of view. Unexplored tiles are blank; explored-but-fogged tiles show
// remembered terrain with cities dimmed to neutral; visible tiles show the
// live board with units drawn over cities. A negative forPlayer renders
// omnisciently for debugging and tests.
func (e *Engine) RenderSnapshot(view Viewport, forPlayer int) []string {
	gs := e.state
	v := view.Clip(gs.Grid.W, gs.Grid.H)

	rows := make([]string, 0, v.H)
	for y := v.Y; y < v.Y+v.H; y++ {
		row := make([]byte, 0, v.W)
		for x := v.X; x < v.X+v.W; x++ {
			row = append(row, e.renderTile(x, y, forPlayer))
		}
		rows = append(rows, string(row))
	}
	return rows
}

func (e *Engine) renderTile(x, y, forPlayer int) byte {
	gs := e.state
	omniscient := forPlayer < 0

	if !omniscient && !gs.Fog.IsExplored(forPlayer, x, y) {
		return ' '
	}

	if !omniscient && !gs.Fog.IsVisible(forPlayer, x, y) {
		// Stale memory: the tile as last seen, with ownership hidden.
		if gs.CityAt(x, y) != nil {
			return 'o'
		}
		return gs.Grid.At(x, y).Glyph()
	}

	if u := gs.UnitAt(x, y); u != nil {
		return u.Type.Glyph(u.Owner)
	}
	if c := gs.CityAt(x, y); c != nil {
		return c.Glyph()
	}
	return gs.Grid.At(x, y).Glyph()
}
