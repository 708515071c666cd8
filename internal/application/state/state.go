package state

// Outcome is the result of a tick or wave boundary as seen by the driver
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLevelComplete
	OutcomeGameOver
	OutcomeVictory
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeLevelComplete:
		return "LevelComplete"
	case OutcomeGameOver:
		return "GameOver"
	case OutcomeVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal returns true if no further ticks should be processed
func (o Outcome) Terminal() bool {
	return o == OutcomeGameOver || o == OutcomeVictory
}

// Phase is what the playing scene is currently doing
type Phase int

const (
	PhaseBuilding Phase = iota
	PhaseWave
	PhaseGameOver
	PhaseVictory
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "Building"
	case PhaseWave:
		return "Wave"
	case PhaseGameOver:
		return "GameOver"
	case PhaseVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}
