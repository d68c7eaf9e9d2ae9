package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/combat"
	"github.com/SanguinemDe/starcommand/internal/config"
	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/ui"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	surface, err := ui.NewSimulation()
	if err != nil {
		t.Fatalf("NewSimulation() error: %v", err)
	}
	t.Cleanup(surface.Close)

	settings := config.Default()
	settings.PhaseSeconds = 0.05

	g, err := newGame(settings, nil, surface, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("newGame() error: %v", err)
	}
	return g
}

// moveTo drives the game to the target state through the intent, the
// same path screen input takes.
func moveTo(t *testing.T, g *Game, target flow.GameFlowState) {
	t.Helper()
	g.intent.Request(target)
	g.step(context.Background(), 0.016, nil)
	if !g.manager.Is(target) {
		t.Fatalf("moveTo(%v): current state is %v", target, g.manager.Current())
	}
}

func TestSplashAdvancesToMainMenu(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	if !g.manager.Is(flow.StateStartup) {
		t.Fatalf("initial state = %v, want Startup", g.manager.Current())
	}

	// The splash requests the menu during Update; the request is
	// consumed on the following frame.
	g.step(ctx, 2.5, nil)
	g.step(ctx, 0.016, nil)

	if !g.manager.Is(flow.StateMainMenu) {
		t.Errorf("state after splash hold = %v, want Main Menu", g.manager.Current())
	}
}

func TestCombatDrillRunsToCompletion(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	moveTo(t, g, flow.StateMainMenu)
	moveTo(t, g, flow.StateCombat)

	if g.encounter == nil {
		t.Fatal("entering combat should start an encounter")
	}
	if got := g.encounter.Turn(); got != 1 {
		t.Errorf("Turn() = %d at combat start, want 1", got)
	}

	// Step at the phase cadence until the encounter resolves and the
	// game returns to the galaxy map.
	for i := 0; i < 10000 && g.manager.Is(flow.StateCombat); i++ {
		g.step(ctx, 0.05, nil)
	}

	if !g.manager.Is(flow.StateGalaxyMap) {
		t.Fatalf("state after combat = %v, want Galaxy Map", g.manager.Current())
	}
	if g.encounter != nil || g.sim != nil {
		t.Error("encounter should be cleared after combat ends")
	}
}

func TestCombatCannotQuitDirectly(t *testing.T) {
	g := newTestGame(t)
	g.running = true

	moveTo(t, g, flow.StateCombat)

	g.intent.Request(flow.StateQuit)
	g.step(context.Background(), 0.016, nil)

	if !g.manager.Is(flow.StateCombat) {
		t.Errorf("state = %v, want Combat", g.manager.Current())
	}
	if !g.running {
		t.Error("rejected quit should not stop the loop")
	}
}

func TestPauseResumesCombat(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	moveTo(t, g, flow.StateCombat)
	moveTo(t, g, flow.StatePaused)

	if g.encounter == nil {
		t.Fatal("pausing should not discard the encounter")
	}

	g.intent.RequestBack()
	g.step(ctx, 0.016, nil)

	if !g.manager.Is(flow.StateCombat) {
		t.Errorf("state after resume = %v, want Combat", g.manager.Current())
	}
	if g.encounter == nil {
		t.Error("resuming should keep the encounter")
	}
}

func TestRetreatExitsToGalaxyMap(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	moveTo(t, g, flow.StateCombat)

	retreat := []tcell.Event{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)}
	g.step(ctx, 0.016, retreat)

	if g.encounter != nil && !g.encounter.Done() {
		t.Fatal("retreat order should reach a terminal outcome")
	}

	// The outcome banner holds briefly before leaving combat.
	for i := 0; i < 200 && g.manager.Is(flow.StateCombat); i++ {
		g.step(ctx, 0.05, nil)
	}
	if !g.manager.Is(flow.StateGalaxyMap) {
		t.Errorf("state after retreat = %v, want Galaxy Map", g.manager.Current())
	}
}

func TestQuitStopsLoop(t *testing.T) {
	g := newTestGame(t)
	g.running = true

	moveTo(t, g, flow.StateMainMenu)

	g.intent.Request(flow.StateQuit)
	g.step(context.Background(), 0.016, nil)

	if g.running {
		t.Error("quit should stop the loop")
	}
	if !g.manager.Is(flow.StateQuit) {
		t.Errorf("state = %v, want Quit", g.manager.Current())
	}
}

func TestCtrlCStopsLoop(t *testing.T) {
	g := newTestGame(t)
	g.running = true

	interrupt := []tcell.Event{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)}
	g.step(context.Background(), 0.016, interrupt)

	if g.running {
		t.Error("Ctrl+C should stop the loop")
	}
}

func TestSkirmishResolvesDeterministically(t *testing.T) {
	g := newTestGame(t)

	player := g.ships.GetByID("cruiser")
	enemy := g.ships.GetByID("scout")
	if player == nil || enemy == nil {
		t.Fatal("ship data is missing expected classes")
	}

	sim := newSkirmish(rand.New(rand.NewSource(7)), player, enemy, nil)

	var outcome combat.Outcome
fight:
	for turns := 0; turns < 500; turns++ {
		for _, p := range combat.Order() {
			outcome = sim.resolve(p)
			if outcome.Terminal() {
				break fight
			}
		}
	}

	if !outcome.Terminal() {
		t.Fatal("skirmish never resolved")
	}
	if sim.player.hullFrac() > 0 && sim.enemy.hullFrac() > 0 {
		t.Error("terminal outcome with both hulls intact")
	}
}
