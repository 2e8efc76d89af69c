package game

import (
	"github.com/mitchelldurbincs/EmpireHotseat/internal/config"
)

// UnitStats is one row of the unit catalog
type UnitStats struct {
	HP    int
	Moves int
	Cost  int
}

// SightRadii holds the fog-of-war sight radius per asset kind
type SightRadii struct {
	City    int
	Army    int
	Fighter int
	Carrier int
	Missile int
}

// CombatTable holds the hit-chance pairs and damage values used by the
// combat resolver.
type CombatTable struct {
	BaseAttackerHit           float64
	BaseDefenderHit           float64
	FighterVsArmyAttackerHit  float64
	FighterVsArmyDefenderHit  float64
	FighterVsOtherAttackerHit float64
	FighterVsOtherDefenderHit float64
	CityDefenseBonus          float64
	AttackerDamage            int
	DefenderDamage            int
}

// Rules bundles every gameplay tunable. Engines take a Rules value so tests
// can construct one directly; DefaultRules reads the viper config.
type Rules struct {
	Stats              map[UnitType]UnitStats
	Sight              SightRadii
	Combat             CombatTable
	MissileMaxRange    int
	MissileBlastRadius int
	SupportCap         int
	HealPerTurn        int
	ReportCapacity     int
}

// DefaultRules builds the rules table from configuration
func DefaultRules() Rules {
	g := config.Get().Game
	return Rules{
		Stats: map[UnitType]UnitStats{
			UnitArmy:    {HP: g.Units.Army.HP, Moves: g.Units.Army.Moves, Cost: g.Units.Army.Cost},
			UnitFighter: {HP: g.Units.Fighter.HP, Moves: g.Units.Fighter.Moves, Cost: g.Units.Fighter.Cost},
			UnitCarrier: {HP: g.Units.Carrier.HP, Moves: g.Units.Carrier.Moves, Cost: g.Units.Carrier.Cost},
			UnitMissile: {HP: g.Units.Missile.HP, Moves: g.Units.Missile.Moves, Cost: g.Units.Missile.Cost},
		},
		Sight: SightRadii{
			City:    g.Sight.City,
			Army:    g.Sight.Army,
			Fighter: g.Sight.Fighter,
			Carrier: g.Sight.Carrier,
			Missile: g.Sight.Missile,
		},
		Combat: CombatTable{
			BaseAttackerHit:           g.Combat.BaseAttackerHit,
			BaseDefenderHit:           g.Combat.BaseDefenderHit,
			FighterVsArmyAttackerHit:  g.Combat.FighterVsArmyAttackerHit,
			FighterVsArmyDefenderHit:  g.Combat.FighterVsArmyDefenderHit,
			FighterVsOtherAttackerHit: g.Combat.FighterVsOtherAttackerHit,
			FighterVsOtherDefenderHit: g.Combat.FighterVsOtherDefenderHit,
			CityDefenseBonus:          g.Combat.CityDefenseBonus,
			AttackerDamage:            g.Combat.AttackerDamage,
			DefenderDamage:            g.Combat.DefenderDamage,
		},
		MissileMaxRange:    g.Units.MissileMaxRange,
		MissileBlastRadius: g.Units.MissileBlastRadius,
		SupportCap:         g.Units.SupportCap,
		HealPerTurn:        g.Units.HealPerTurn,
		ReportCapacity:     g.Combat.ReportCapacity,
	}
}

// StatsFor returns the catalog row for a unit type
func (r Rules) StatsFor(t UnitType) (UnitStats, bool) {
	s, ok := r.Stats[t]
	return s, ok
}

// SightFor returns the sight radius for a unit type. Flying units see
// farther than surface units.
func (r Rules) SightFor(t UnitType) int {
	switch t {
	case UnitFighter:
		return r.Sight.Fighter
	case UnitCarrier:
		return r.Sight.Carrier
	case UnitMissile:
		return r.Sight.Missile
	default:
		return r.Sight.Army
	}
}
