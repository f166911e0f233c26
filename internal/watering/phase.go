package watering

// Phase is the lifecycle state of a challenge session.
type Phase int

const (
	PhaseIdle       Phase = iota // Waiting for the player to press
	PhaseCharging                // Input held, indicator moving
	PhaseEvaluating              // Released, outcome pending display
	PhaseGrowing                 // Successful release, growth animation running
	PhaseFailing                 // Bad release, life lost
	PhaseVictory                 // Plant fully grown (terminal)
	PhaseGameOver                // Plant withered (terminal)
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCharging:
		return "charging"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseGrowing:
		return "growing"
	case PhaseFailing:
		return "failing"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseGameOver
}
