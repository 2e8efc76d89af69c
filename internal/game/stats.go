package game

import (
	"fmt"

	"github.com/mitchelldurbincs/EmpireHotseat/internal/game/core"
)

// This file holds the engine-owned battle telemetry: per-player kill/loss
// counters by unit type and a fixed-capacity ring of human-readable battle
// reports. The original design kept these as process-wide globals; owning
// them on the engine keeps multiple engines independent and testable.

// BattleReport is one entry in the rolling combat log
type BattleReport struct {
	Turn          int
	Attacker      UnitType
	AttackerOwner int
	Defender      UnitType
	DefenderOwner int
	Location      core.Coordinate
	AttackerHit   float64
	DefenderHit   float64
	Outcome       string
}

func (r BattleReport) String() string {
	return fmt.Sprintf("T%d %s(P%d) vs %s(P%d) @%s [%.0f%%/%.0f%%] %s",
		r.Turn, r.Attacker, r.AttackerOwner+1, r.Defender, r.DefenderOwner+1,
		r.Location, r.AttackerHit*100, r.DefenderHit*100, r.Outcome)
}

// Telemetry accumulates combat statistics for one game
type Telemetry struct {
	kills  []map[UnitType]int
	losses []map[UnitType]int

	reports  []BattleReport
	capacity int
	next     int
}

// NewTelemetry creates telemetry for the given player count and report ring
// capacity.
func NewTelemetry(players, capacity int) *Telemetry {
	if capacity < 1 {
		capacity = 1
	}
	t := &Telemetry{
		kills:    make([]map[UnitType]int, players),
		losses:   make([]map[UnitType]int, players),
		reports:  make([]BattleReport, 0, capacity),
		capacity: capacity,
	}
	for p := 0; p < players; p++ {
		t.kills[p] = make(map[UnitType]int)
		t.losses[p] = make(map[UnitType]int)
	}
	return t
}

func (t *Telemetry) validPlayer(p int) bool { return p >= 0 && p < len(t.kills) }

// RecordKill credits a player with destroying a unit of the given type
func (t *Telemetry) RecordKill(player int, victim UnitType) {
	if t.validPlayer(player) {
		t.kills[player][victim]++
	}
}

// RecordLoss charges a player with losing a unit of the given type
func (t *Telemetry) RecordLoss(player int, lost UnitType) {
	if t.validPlayer(player) {
		t.losses[player][lost]++
	}
}

// Kills returns how many units of the given type a player has destroyed
func (t *Telemetry) Kills(player int, victim UnitType) int {
	if !t.validPlayer(player) {
		return 0
	}
	return t.kills[player][victim]
}

// Losses returns how many units of the given type a player has lost
func (t *Telemetry) Losses(player int, lost UnitType) int {
	if !t.validPlayer(player) {
		return 0
	}
	return t.losses[player][lost]
}

// TotalKills returns a player's kill count across all unit types
func (t *Telemetry) TotalKills(player int) int {
	if !t.validPlayer(player) {
		return 0
	}
	n := 0
	for _, c := range t.kills[player] {
		n += c
	}
	return n
}

// AddReport appends a battle report, evicting the oldest once the ring is full
func (t *Telemetry) AddReport(r BattleReport) {
	if len(t.reports) < t.capacity {
		t.reports = append(t.reports, r)
		return
	}
	t.reports[t.next] = r
	t.next = (t.next + 1) % t.capacity
}

// Reports returns the retained battle reports, oldest first
func (t *Telemetry) Reports() []BattleReport {
	if len(t.reports) < t.capacity {
		out := make([]BattleReport, len(t.reports))
		copy(out, t.reports)
		return out
	}
	out := make([]BattleReport, 0, t.capacity)
	out = append(out, t.reports[t.next:]...)
	out = append(out, t.reports[:t.next]...)
	return out
}
