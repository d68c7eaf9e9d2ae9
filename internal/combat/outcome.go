package combat

// Outcome classifies the state of an encounter as a whole. It is
// produced by combat resolution and only consumed here; the flow layer
// polls it to decide when to leave the combat state.
type Outcome int

const (
	// OutcomeSetup - the encounter is still being set up
	OutcomeSetup Outcome = iota
	// OutcomeInProgress - combat ongoing
	OutcomeInProgress
	// OutcomePlayerVictory - player won
	OutcomePlayerVictory
	// OutcomeEnemyVictory - enemy won
	OutcomeEnemyVictory
	// OutcomeRetreat - player retreated
	OutcomeRetreat
	// OutcomeDraw - both sides retreat or are destroyed
	OutcomeDraw
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSetup:
		return "setup"
	case OutcomeInProgress:
		return "in_progress"
	case OutcomePlayerVictory:
		return "player_victory"
	case OutcomeEnemyVictory:
		return "enemy_victory"
	case OutcomeRetreat:
		return "retreat"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the encounter. Setup and
// in-progress are the only non-terminal values.
func (o Outcome) Terminal() bool {
	switch o {
	case OutcomeSetup, OutcomeInProgress:
		return false
	default:
		return true
	}
}
