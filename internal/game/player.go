package game

// Player identifies one of the two hot-seat factions. City ownership lives
// on the City records themselves; counts are computed by scanning the city
// list rather than cached here.
type Player struct {
	ID   int
	Name string
	// IsAI is declared for front ends that plug in an AI controller; the
	// engine treats both players identically.
	IsAI bool
}
