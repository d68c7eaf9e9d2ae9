package combat

import (
	"github.com/google/uuid"

	"github.com/SanguinemDe/starcommand/internal/gamelog"
)

// Encounter sequences the turns and phases of one combat session.
// Phase and outcome values are ephemeral per encounter; a new session
// starts back at initiative/setup.
type Encounter struct {
	id      uuid.UUID
	turn    int
	phase   Phase
	outcome Outcome
	log     gamelog.Logger
}

// NewEncounter creates an encounter in the setup outcome. A nil logger
// discards diagnostics.
func NewEncounter(log gamelog.Logger) *Encounter {
	if log == nil {
		log = gamelog.Nop{}
	}
	return &Encounter{
		id:      uuid.New(),
		phase:   PhaseInitiative,
		outcome: OutcomeSetup,
		log:     log,
	}
}

// ID returns the encounter's unique identifier.
func (e *Encounter) ID() uuid.UUID { return e.id }

// Turn returns the current turn number, starting at 1 after Begin.
func (e *Encounter) Turn() int { return e.turn }

// Phase returns the current combat phase.
func (e *Encounter) Phase() Phase { return e.phase }

// Outcome returns the last reported outcome.
func (e *Encounter) Outcome() Outcome { return e.outcome }

// Begin starts the first turn at the initiative phase and marks the
// encounter in progress. The turn banner line is parsed by the monitor.
func (e *Encounter) Begin() {
	e.turn = 1
	e.phase = PhaseInitiative
	e.outcome = OutcomeInProgress
	e.log.Infof("=== Turn %d Started ===", e.turn)
	e.log.Infof("Combat phase advanced to: %s", e.phase)
}

// AdvancePhase moves to the next phase in turn order. When the current
// phase is the last of the turn, a new turn begins back at initiative.
// Returns the phase now current.
func (e *Encounter) AdvancePhase() Phase {
	next, ok := Next(e.phase)
	if !ok {
		e.turn++
		e.phase = PhaseInitiative
		e.log.Infof("=== Turn %d Started ===", e.turn)
	} else {
		e.phase = next
	}
	e.log.Infof("Combat phase advanced to: %s", e.phase)
	return e.phase
}

// SetOutcome records the outcome reported by combat resolution.
// Terminal outcomes are logged with the turn count for the after-action
// report.
func (e *Encounter) SetOutcome(o Outcome) {
	if o == e.outcome {
		return
	}
	e.outcome = o
	if o.Terminal() {
		e.log.Infof("COMBAT END - %s after %d turns", o, e.turn)
	}
}

// Done reports whether the encounter has reached a terminal outcome.
func (e *Encounter) Done() bool { return e.outcome.Terminal() }
