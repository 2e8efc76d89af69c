package game

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// CombatResolver applies the probabilistic exchange model. The attacker
// rolls first each round and the defender only replies while still alive;
// that first-mover edge is deliberate and load-bearing for balance.
type CombatResolver struct {
	table  CombatTable
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewCombatResolver creates a resolver using the shared game RNG so fixed
// seeds reproduce battles exactly.
func NewCombatResolver(table CombatTable, rng *rand.Rand, logger zerolog.Logger) *CombatResolver {
	return &CombatResolver{
		table:  table,
		rng:    rng,
		logger: logger.With().Str("component", "CombatResolver").Logger(),
	}
}

// CombatOutcome reports the result of one resolved battle
type CombatOutcome struct {
	AttackerAlive bool
	DefenderAlive bool
	// Effective hit chances after matchup and city modifiers, for reporting.
	AttackerHit float64
	DefenderHit float64
	Rounds      int
}

// OutcomeTag returns a short label for battle reports
func (o CombatOutcome) OutcomeTag() string {
	switch {
	case o.AttackerAlive && !o.DefenderAlive:
		return "attacker won"
	case !o.AttackerAlive && o.DefenderAlive:
		return "defender held"
	default:
		return "mutual destruction"
	}
}

// hitChances selects the base pair by matchup: fighters strafing armies get
// one pair, fighters against anything else a second, and every other
// matchup the default pair.
func (cr *CombatResolver) hitChances(attacker, defender *Unit) (float64, float64) {
	if attacker.Type == UnitFighter {
		if defender.Type == UnitArmy {
			return cr.table.FighterVsArmyAttackerHit, cr.table.FighterVsArmyDefenderHit
		}
		return cr.table.FighterVsOtherAttackerHit, cr.table.FighterVsOtherDefenderHit
	}
	return cr.table.BaseAttackerHit, cr.table.BaseDefenderHit
}

// Resolve fights the battle to the death of at least one side and forces
// the loser's hp to 0. defenderInCity applies the symmetric city-defense
// swing when the defender holds a city it owns.
func (cr *CombatResolver) Resolve(attacker, defender *Unit, defenderInCity bool) CombatOutcome {
	atkHit, defHit := cr.hitChances(attacker, defender)
	if defenderInCity {
		atkHit -= cr.table.CityDefenseBonus
		defHit += cr.table.CityDefenseBonus
	}

	rounds := 0
	for attacker.HP > 0 && defender.HP > 0 {
		rounds++
		if cr.rng.Float64() < atkHit {
			defender.HP -= cr.table.AttackerDamage
		}
		if defender.HP <= 0 {
			break
		}
		if cr.rng.Float64() < defHit {
			attacker.HP -= cr.table.DefenderDamage
		}
	}

	// The loser never keeps residual negative hp.
	if defender.HP <= 0 {
		defender.HP = 0
	}
	if attacker.HP <= 0 {
		attacker.HP = 0
	}

	outcome := CombatOutcome{
		AttackerAlive: attacker.HP > 0,
		DefenderAlive: defender.HP > 0,
		AttackerHit:   atkHit,
		DefenderHit:   defHit,
		Rounds:        rounds,
	}

	cr.logger.Debug().
		Str("attacker", attacker.Type.String()).
		Str("defender", defender.Type.String()).
		Bool("defender_in_city", defenderInCity).
		Float64("attacker_hit", atkHit).
		Float64("defender_hit", defHit).
		Int("rounds", rounds).
		Str("outcome", outcome.OutcomeTag()).
		Msg("Combat resolved")

	return outcome
}
