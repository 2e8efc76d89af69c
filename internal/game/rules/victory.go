package rules

import "github.com/rs/zerolog"

// VictoryChecker handles game over detection and winner determination.
// Victory is purely territorial: a player wins the moment their opponent
// holds no cities while they still hold at least one. Neutral cities never
// count for either side.
type VictoryChecker struct {
	logger zerolog.Logger
}

// NewVictoryChecker creates a new victory checker
func NewVictoryChecker(logger zerolog.Logger) *VictoryChecker {
	return &VictoryChecker{
		logger: logger.With().Str("component", "VictoryChecker").Logger(),
	}
}

// CheckVictory determines if the active player has won.
// cityOwners holds the owner ID of every city (negative means neutral).
// Returns (gameOver, winnerID); winnerID is -1 when the game continues.
func (vc *VictoryChecker) CheckVictory(cityOwners []int, activePlayer int) (bool, int) {
	opponent := 1 - activePlayer

	activeCities := 0
	opponentCities := 0
	for _, owner := range cityOwners {
		switch owner {
		case activePlayer:
			activeCities++
		case opponent:
			opponentCities++
		}
	}

	if opponentCities == 0 && activeCities > 0 {
		vc.logger.Info().
			Int("winner_player_id", activePlayer).
			Int("winner_cities", activeCities).
			Msg("Winner determined")
		return true, activePlayer
	}

	vc.logger.Debug().
		Int("active_player", activePlayer).
		Int("active_cities", activeCities).
		Int("opponent_cities", opponentCities).
		Msg("Victory check complete")

	return false, -1
}
