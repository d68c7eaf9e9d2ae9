package combat

import (
	"testing"

	"github.com/SanguinemDe/starcommand/internal/gamelog"
)

func TestNewEncounter(t *testing.T) {
	e := NewEncounter(nil)

	if got := e.Outcome(); got != OutcomeSetup {
		t.Errorf("Outcome() = %v, want setup", got)
	}
	if got := e.Phase(); got != PhaseInitiative {
		t.Errorf("Phase() = %v, want Initiative", got)
	}
	if got := e.Turn(); got != 0 {
		t.Errorf("Turn() = %d, want 0 before Begin", got)
	}
	if e.Done() {
		t.Error("new encounter should not be done")
	}

	other := NewEncounter(nil)
	if e.ID() == other.ID() {
		t.Error("two encounters should have distinct IDs")
	}
}

func TestEncounterBegin(t *testing.T) {
	rec := &gamelog.Recorder{}
	e := NewEncounter(rec)

	e.Begin()

	if got := e.Turn(); got != 1 {
		t.Errorf("Turn() = %d, want 1", got)
	}
	if got := e.Phase(); got != PhaseInitiative {
		t.Errorf("Phase() = %v, want Initiative", got)
	}
	if got := e.Outcome(); got != OutcomeInProgress {
		t.Errorf("Outcome() = %v, want in_progress", got)
	}
	if !rec.Contains("=== Turn 1 Started ===") {
		t.Errorf("turn banner missing: %v", rec.Entries)
	}
	if !rec.Contains("Combat phase advanced to: Initiative") {
		t.Errorf("initiative phase line missing: %v", rec.Entries)
	}
}

func TestEncounterAdvancePhase(t *testing.T) {
	rec := &gamelog.Recorder{}
	e := NewEncounter(rec)
	e.Begin()

	want := []Phase{PhaseMovement, PhaseTargeting, PhaseFiring, PhaseDamage, PhaseHousekeeping}
	for _, p := range want {
		if got := e.AdvancePhase(); got != p {
			t.Fatalf("AdvancePhase() = %v, want %v", got, p)
		}
		if e.Turn() != 1 {
			t.Fatalf("Turn() = %d during turn 1, want 1", e.Turn())
		}
	}

	// Advancing past housekeeping starts turn 2 at initiative.
	if got := e.AdvancePhase(); got != PhaseInitiative {
		t.Errorf("AdvancePhase() after Housekeeping = %v, want Initiative", got)
	}
	if got := e.Turn(); got != 2 {
		t.Errorf("Turn() = %d, want 2", got)
	}
	if !rec.Contains("=== Turn 2 Started ===") {
		t.Errorf("second turn banner missing: %v", rec.Entries)
	}
	if !rec.Contains("Combat phase advanced to: Housekeeping") {
		t.Errorf("housekeeping phase line missing: %v", rec.Entries)
	}
}

func TestEncounterSetOutcome(t *testing.T) {
	rec := &gamelog.Recorder{}
	e := NewEncounter(rec)
	e.Begin()

	e.SetOutcome(OutcomeInProgress)
	if e.Done() {
		t.Error("in_progress should not be terminal")
	}

	e.SetOutcome(OutcomePlayerVictory)
	if !e.Done() {
		t.Error("player_victory should be terminal")
	}
	if !rec.Contains("COMBAT END - player_victory after 1 turns") {
		t.Errorf("combat end line missing: %v", rec.Entries)
	}
}
