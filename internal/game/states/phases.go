package states

import "fmt"

// GamePhase represents the current phase of a hot-seat game
type GamePhase int

const (
	// PhaseInitializing - Map generation, city placement, starting units
	PhaseInitializing GamePhase = iota

	// PhaseTurnActive - The current player is issuing commands
	PhaseTurnActive

	// PhaseEndTurnProcessing - Production, healing, missiles, basing checks
	PhaseEndTurnProcessing

	// PhaseHandoff - Control passing to the other player
	PhaseHandoff

	// PhaseGameOver - Final state, a winner has been declared
	PhaseGameOver
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseTurnActive:
		return "TurnActive"
	case PhaseEndTurnProcessing:
		return "EndTurnProcessing"
	case PhaseHandoff:
		return "Handoff"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseGameOver
}

// CanReceiveCommands returns true if the game can process player commands in this phase
func (p GamePhase) CanReceiveCommands() bool {
	return p == PhaseTurnActive
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseTurnActive}
	case PhaseTurnActive:
		return []GamePhase{PhaseEndTurnProcessing, PhaseGameOver}
	case PhaseEndTurnProcessing:
		return []GamePhase{PhaseHandoff, PhaseGameOver}
	case PhaseHandoff:
		return []GamePhase{PhaseTurnActive}
	case PhaseGameOver:
		return []GamePhase{}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
