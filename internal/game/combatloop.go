package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/SanguinemDe/starcommand/internal/combat"
	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/gamedata"
	"github.com/SanguinemDe/starcommand/internal/telemetry"
	"github.com/SanguinemDe/starcommand/internal/ui"
)

// playerShipID is the class the player flies until loadouts exist.
const playerShipID = "cruiser"

func (g *Game) beginCombat(ctx context.Context) {
	player := g.ships.GetByID(playerShipID)
	if player == nil {
		player = &g.ships.All()[0]
	}
	enemy := g.pickEnemy()

	g.encounter = combat.NewEncounter(g.combatLog)
	g.sim = newSkirmish(g.rng, player, enemy, g.combatLog)
	g.exiting = false

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("encounter.id", g.encounter.ID().String()),
		attribute.String("player.class", player.ID),
		attribute.String("enemy.class", enemy.ID),
	)
	span.End()

	g.encounter.Begin()
	g.phaseGate.SetDuration(g.settings.PhaseSeconds)
	g.phaseGate.Start()
	g.pushCombatStatus()
}

func (g *Game) pickEnemy() *gamedata.ShipDef {
	all := g.ships.All()
	return &all[g.rng.Intn(len(all))]
}

// updateCombat paces the phase sequencer and resolves each phase. A
// terminal outcome holds the result on screen briefly, then returns to
// the galaxy map.
func (g *Game) updateCombat(ctx context.Context, dt float64) {
	if g.encounter == nil {
		return
	}

	if g.combatScreen.RetreatRequested() && !g.encounter.Done() {
		g.combatLog.Infof("%s breaks off and retreats", g.sim.player.def.Name)
		g.encounter.SetOutcome(combat.OutcomeRetreat)
	}

	if g.encounter.Done() {
		if !g.exiting {
			g.exiting = true
			g.exitGate.Start()
		}
		g.exitGate.Update(dt)
		g.pushCombatStatus()
		if g.exitGate.Ready() {
			g.finishCombat(ctx)
		}
		return
	}

	g.phaseGate.Update(dt)
	if g.phaseGate.Ready() {
		g.advancePhase(ctx)
		g.phaseGate.Start()
	}
	g.pushCombatStatus()
}

func (g *Game) advancePhase(ctx context.Context) {
	phase := g.encounter.AdvancePhase()

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.phase")
	span.SetAttributes(
		attribute.Int("turn", g.encounter.Turn()),
		attribute.String("phase", phase.String()),
	)
	g.encounter.SetOutcome(g.sim.resolve(phase))
	span.End()
}

func (g *Game) finishCombat(ctx context.Context) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("encounter.id", g.encounter.ID().String()),
		attribute.String("outcome", g.encounter.Outcome().String()),
		attribute.Int("turns", g.encounter.Turn()),
	)
	span.End()

	g.encounter = nil
	g.sim = nil
	g.exiting = false

	if g.manager.TransitionTo(flow.StateGalaxyMap, false) {
		g.registry.SetActive(flow.StateGalaxyMap)
	}
}

func (g *Game) pushCombatStatus() {
	if g.encounter == nil || g.sim == nil {
		return
	}
	g.combatScreen.SetStatus(ui.CombatStatus{
		Turn:         g.encounter.Turn(),
		Phase:        g.encounter.Phase(),
		Outcome:      g.encounter.Outcome(),
		PlayerName:   g.sim.player.def.Name,
		PlayerHull:   g.sim.player.hullFrac(),
		PlayerShield: g.sim.player.shieldFrac(),
		EnemyName:    g.sim.enemy.def.Name,
		EnemyHull:    g.sim.enemy.hullFrac(),
		EnemyShield:  g.sim.enemy.shieldFrac(),
	})
}
