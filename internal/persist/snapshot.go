package persist

import (
	"fmt"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game"
	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// Snapshot is the on-disk representation of a whole game. Terrain rows are
// glyph strings so save files stay readable in a text editor.
type Snapshot struct {
	Map           MapRecord      `json:"map"`
	Units         []UnitRecord   `json:"units"`
	Players       []PlayerRecord `json:"players"`
	TurnNumber    int            `json:"turn_number"`
	CurrentPlayer int            `json:"current_player"`
}

// MapRecord holds terrain, cities and per-player exploration
type MapRecord struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Tiles    []string     `json:"tiles"`
	Cities   []CityRecord `json:"cities"`
	Explored [][]bool     `json:"explored"`
}

// CityRecord serializes one city. Production is the catalog tag, empty when
// the city is idle.
type CityRecord struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Owner      int    `json:"owner"`
	Production string `json:"production,omitempty"`
	Progress   int    `json:"progress"`
	Cost       int    `json:"cost"`
	SupportCap int    `json:"support_cap"`
}

// UnitRecord serializes one unit
type UnitRecord struct {
	Type      string `json:"type"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Owner     int    `json:"owner"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
	Moves     int    `json:"moves"`
	MovesLeft int    `json:"moves_left"`

	HomeX   int  `json:"home_x,omitempty"`
	HomeY   int  `json:"home_y,omitempty"`
	HasHome bool `json:"has_home,omitempty"`

	HeadingDX int  `json:"heading_dx,omitempty"`
	HeadingDY int  `json:"heading_dy,omitempty"`
	Locked    bool `json:"locked,omitempty"`
	Traveled  int  `json:"traveled,omitempty"`
}

// PlayerRecord serializes one player
type PlayerRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	IsAI bool   `json:"is_ai,omitempty"`
}

// Capture builds a snapshot from live game state
func Capture(gs *game.GameState) *Snapshot {
	snap := &Snapshot{
		TurnNumber:    gs.Turn,
		CurrentPlayer: gs.CurrentPlayer,
	}

	snap.Map = MapRecord{
		Width:  gs.Grid.W,
		Height: gs.Grid.H,
	}
	for y := 0; y < gs.Grid.H; y++ {
		row := make([]byte, gs.Grid.W)
		for x := 0; x < gs.Grid.W; x++ {
			row[x] = gs.Grid.At(x, y).Glyph()
		}
		snap.Map.Tiles = append(snap.Map.Tiles, string(row))
	}
	for _, c := range gs.Cities {
		rec := CityRecord{
			X:          c.Pos.X,
			Y:          c.Pos.Y,
			Owner:      c.Owner,
			Progress:   c.Progress,
			Cost:       c.Cost,
			SupportCap: c.SupportCap,
		}
		if c.HasProduction {
			rec.Production = c.Production.String()
		}
		snap.Map.Cities = append(snap.Map.Cities, rec)
	}
	if gs.Fog != nil {
		for p := range gs.Players {
			explored := make([]bool, len(gs.Fog.Explored[p]))
			copy(explored, gs.Fog.Explored[p])
			snap.Map.Explored = append(snap.Map.Explored, explored)
		}
	}

	for _, u := range gs.Units {
		if !u.IsAlive() {
			continue
		}
		snap.Units = append(snap.Units, UnitRecord{
			Type:      u.Type.String(),
			X:         u.Pos.X,
			Y:         u.Pos.Y,
			Owner:     u.Owner,
			HP:        u.HP,
			MaxHP:     u.MaxHP,
			Moves:     u.Moves,
			MovesLeft: u.MovesLeft,
			HomeX:     u.HomeCity.X,
			HomeY:     u.HomeCity.Y,
			HasHome:   u.HasHome,
			HeadingDX: u.Heading.DX,
			HeadingDY: u.Heading.DY,
			Locked:    u.Locked,
			Traveled:  u.Traveled,
		})
	}

	for _, p := range gs.Players {
		snap.Players = append(snap.Players, PlayerRecord{ID: p.ID, Name: p.Name, IsAI: p.IsAI})
	}

	return snap
}

// Restore rebuilds game state from a snapshot. Any structural inconsistency
// aborts the whole restore; a partially initialized game is never returned.
func Restore(snap *Snapshot) (*game.GameState, error) {
	if snap.Map.Width <= 0 || snap.Map.Height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions %dx%d", snap.Map.Width, snap.Map.Height)
	}
	if len(snap.Map.Tiles) != snap.Map.Height {
		return nil, fmt.Errorf("map has %d tile rows, expected %d", len(snap.Map.Tiles), snap.Map.Height)
	}

	grid := core.NewGrid(snap.Map.Width, snap.Map.Height)
	for y, row := range snap.Map.Tiles {
		if len(row) != snap.Map.Width {
			return nil, fmt.Errorf("tile row %d has width %d, expected %d", y, len(row), snap.Map.Width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '+':
				grid.T[grid.Idx(x, y)] = core.Land
			case '.':
				grid.T[grid.Idx(x, y)] = core.Ocean
			default:
				return nil, fmt.Errorf("unknown terrain glyph %q at (%d, %d)", row[x], x, y)
			}
		}
	}

	gs := &game.GameState{
		Grid:          grid,
		Turn:          snap.TurnNumber,
		CurrentPlayer: snap.CurrentPlayer,
	}

	players := snap.Players
	if len(players) == 0 {
		players = []PlayerRecord{{ID: 0, Name: "Player 1"}, {ID: 1, Name: "Player 2"}}
	}
	for _, p := range players {
		gs.Players = append(gs.Players, game.Player{ID: p.ID, Name: p.Name, IsAI: p.IsAI})
	}
	if gs.CurrentPlayer < 0 || gs.CurrentPlayer >= len(gs.Players) {
		return nil, fmt.Errorf("current player %d out of range", gs.CurrentPlayer)
	}

	for i, rec := range snap.Map.Cities {
		if !grid.InBounds(rec.X, rec.Y) {
			return nil, fmt.Errorf("city %d at (%d, %d) is out of bounds", i, rec.X, rec.Y)
		}
		c := &game.City{
			Pos:        core.NewCoordinate(rec.X, rec.Y),
			Owner:      rec.Owner,
			Progress:   rec.Progress,
			SupportCap: rec.SupportCap,
		}
		if rec.Production != "" {
			t, err := game.ParseUnitType(rec.Production)
			if err != nil {
				return nil, fmt.Errorf("city %d: %w", i, err)
			}
			c.SetProduction(t, rec.Cost)
		}
		gs.Cities = append(gs.Cities, c)
	}

	for i, rec := range snap.Units {
		t, err := game.ParseUnitType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		if !grid.InBounds(rec.X, rec.Y) {
			return nil, fmt.Errorf("unit %d at (%d, %d) is out of bounds", i, rec.X, rec.Y)
		}
		if rec.HP <= 0 || rec.MaxHP <= 0 {
			return nil, fmt.Errorf("unit %d has invalid hit points %d/%d", i, rec.HP, rec.MaxHP)
		}
		u := &game.Unit{
			Pos:       core.NewCoordinate(rec.X, rec.Y),
			Owner:     rec.Owner,
			Type:      t,
			HP:        rec.HP,
			MaxHP:     rec.MaxHP,
			Moves:     rec.Moves,
			MovesLeft: rec.MovesLeft,
			Heading:   core.Direction{DX: rec.HeadingDX, DY: rec.HeadingDY},
			Locked:    rec.Locked,
			Traveled:  rec.Traveled,
		}
		if rec.HasHome {
			u.SetHome(core.NewCoordinate(rec.HomeX, rec.HomeY))
		}
		gs.Units = append(gs.Units, u)
	}

	gs.Fog = game.NewFogOfWar(len(gs.Players), grid.W, grid.H)
	for p := 0; p < len(gs.Players) && p < len(snap.Map.Explored); p++ {
		if len(snap.Map.Explored[p]) != grid.W*grid.H {
			return nil, fmt.Errorf("explored grid for player %d has %d tiles, expected %d",
				p, len(snap.Map.Explored[p]), grid.W*grid.H)
		}
		copy(gs.Fog.Explored[p], snap.Map.Explored[p])
	}

	return gs, nil
}
