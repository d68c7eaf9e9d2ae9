// Package game wires the state manager, screen registry, combat
// sequencer and terminal surface into the frame loop.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/SanguinemDe/starcommand/internal/combat"
	"github.com/SanguinemDe/starcommand/internal/config"
	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/gamedata"
	"github.com/SanguinemDe/starcommand/internal/gamelog"
	"github.com/SanguinemDe/starcommand/internal/screen"
	"github.com/SanguinemDe/starcommand/internal/telemetry"
	"github.com/SanguinemDe/starcommand/internal/timing"
	"github.com/SanguinemDe/starcommand/internal/ui"
)

// combatExitSeconds is how long the outcome banner stays up before the
// game returns to the galaxy map.
const combatExitSeconds = 2.0

// Game owns the frame loop and everything it drives.
type Game struct {
	settings config.Settings
	surface  *ui.Screen
	manager  *flow.Manager
	registry *screen.Registry
	intent   *ui.Intent
	timer    *timing.DeltaTimer
	ships    *gamedata.ShipRegistry
	rng      *rand.Rand
	log      gamelog.Logger

	combatScreen *ui.CombatScreen
	combatLog    gamelog.Logger
	encounter    *combat.Encounter
	sim          *skirmish
	phaseGate    *timing.Cooldown
	exitGate     *timing.Cooldown
	exiting      bool

	running bool
}

// New creates a game on a real terminal. A nil sink discards all
// diagnostics.
func New(settings config.Settings, sink *gamelog.Sink) (*Game, error) {
	surface, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return newGame(settings, sink, surface, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newGame(settings config.Settings, sink *gamelog.Sink, surface *ui.Screen, rng *rand.Rand) (*Game, error) {
	named := func(name string) gamelog.Logger {
		if sink == nil {
			return gamelog.Nop{}
		}
		return sink.Named(name)
	}

	ships, err := gamedata.LoadShipRegistry()
	if err != nil {
		return nil, fmt.Errorf("load ship data: %w", err)
	}

	g := &Game{
		settings:  settings,
		surface:   surface,
		intent:    &ui.Intent{},
		timer:     timing.NewDeltaTimer(nil),
		ships:     ships,
		rng:       rng,
		log:       named("game"),
		combatLog: named("combat"),
		phaseGate: timing.NewCooldown(settings.PhaseSeconds),
		exitGate:  timing.NewCooldown(combatExitSeconds),
	}

	g.manager = flow.NewManager(flow.StateStartup, named("flow"))
	// Mid-encounter the only ways out are pausing or withdrawing to the
	// galaxy map; quitting goes through the pause overlay.
	g.manager.SetRule(flow.RuleTable(map[flow.GameFlowState][]flow.GameFlowState{
		flow.StateCombat: {flow.StateGalaxyMap, flow.StatePaused},
	}))

	g.combatScreen = ui.NewCombatScreen(g.intent)

	g.registry = screen.NewRegistry(named("screen"))
	g.registry.Register(flow.StateStartup, ui.NewSplash(g.intent, 2.0))
	g.registry.Register(flow.StateMainMenu, ui.NewMainMenu(g.intent))
	g.registry.Register(flow.StateNewGame, ui.NewPlaceholder(g.intent, "NEW CAMPAIGN"))
	g.registry.Register(flow.StateLoadGame, ui.NewPlaceholder(g.intent, "LOAD GAME"))
	g.registry.Register(flow.StateGalaxyMap, ui.NewGalaxyMap(g.intent, rng.Int63()))
	g.registry.Register(flow.StateSectorMap, ui.NewPlaceholder(g.intent, "SECTOR MAP"))
	g.registry.Register(flow.StateCombat, g.combatScreen)
	g.registry.Register(flow.StateStarbase, ui.NewPlaceholder(g.intent, "STARBASE"))
	g.registry.Register(flow.StateShipManagement, ui.NewPlaceholder(g.intent, "SHIP MANAGEMENT"))
	g.registry.Register(flow.StateCrewManagement, ui.NewPlaceholder(g.intent, "CREW ROSTER"))
	g.registry.Register(flow.StateMissionBriefing, ui.NewPlaceholder(g.intent, "MISSION BRIEFING"))
	g.registry.Register(flow.StateDialogue, ui.NewPlaceholder(g.intent, "COMMS"))
	g.registry.Register(flow.StateScanResults, ui.NewPlaceholder(g.intent, "SCAN RESULTS"))
	g.registry.Register(flow.StateOptions, ui.NewOptions(g.intent, optionLines(settings)))
	g.registry.Register(flow.StatePaused, ui.NewPaused(g.intent))
	g.registry.SetActive(flow.StateStartup)

	return g, nil
}

func optionLines(settings config.Settings) []string {
	return []string{
		fmt.Sprintf("Target FPS:     %d", settings.TargetFPS),
		fmt.Sprintf("Phase duration: %.1fs", settings.PhaseSeconds),
		fmt.Sprintf("Log level:      %s", settings.LogLevel),
		fmt.Sprintf("Telemetry:      %v", settings.Telemetry),
	}
}

// Run executes the frame loop until the game quits or ctx is canceled.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.Int("ships.count", g.ships.Count()),
		attribute.Int("target.fps", g.settings.TargetFPS),
	)
	span.End()

	fps := g.settings.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)

	g.running = true
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
			continue
		default:
		}

		dt := g.timer.Tick(fps)
		g.step(ctx, dt, g.drainEvents())

		g.surface.Clear()
		g.registry.Render(g.surface)
		g.surface.Show()

		time.Sleep(frame)
	}

	g.surface.Close()
	g.log.Infof("Game loop stopped after %.1fs", g.timer.TotalTime())
	return nil
}

// step advances one frame: input, transitions, then simulation.
func (g *Game) step(ctx context.Context, dt float64, evs []tcell.Event) {
	g.handleGlobalEvents(evs)
	g.registry.HandleInput(evs)
	g.applyIntent(ctx)
	g.registry.Update(dt)

	if g.manager.Is(flow.StateCombat) {
		g.updateCombat(ctx, dt)
	}
}

func (g *Game) drainEvents() []tcell.Event {
	var evs []tcell.Event
	for g.surface.HasPendingEvent() {
		evs = append(evs, g.surface.PollEvent())
	}
	return evs
}

func (g *Game) handleGlobalEvents(evs []tcell.Event) {
	for _, ev := range evs {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				g.log.Infof("Interrupt received, shutting down")
				g.running = false
			}
		case *tcell.EventResize:
			g.surface.Sync()
		}
	}
}

// applyIntent consumes the transition requests screens recorded this
// frame and keeps the active screen in sync with the state manager.
func (g *Game) applyIntent(ctx context.Context) {
	if g.intent.TakeBack() {
		if g.manager.GoBack() {
			g.registry.SetActive(g.manager.Current())
		}
	}
	if target, ok := g.intent.Take(); ok {
		g.changeState(ctx, target)
	}
}

func (g *Game) changeState(ctx context.Context, target flow.GameFlowState) {
	if !g.manager.TransitionTo(target, false) {
		return
	}
	if target == flow.StateQuit {
		g.running = false
		return
	}
	g.registry.SetActive(target)
	if target == flow.StateCombat {
		g.beginCombat(ctx)
	}
}
