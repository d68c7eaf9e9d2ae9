package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/combat"
	"github.com/SanguinemDe/starcommand/internal/flow"
)

// CombatStatus is the snapshot the game loop pushes to the combat
// screen each frame. The screen never reads the encounter directly.
type CombatStatus struct {
	Turn        int
	Phase       combat.Phase
	Outcome     combat.Outcome
	PlayerName  string
	PlayerHull  float64 // 0..1
	PlayerShield float64 // 0..1
	EnemyName   string
	EnemyHull   float64 // 0..1
	EnemyShield float64 // 0..1
}

// CombatScreen is the screen handler for tactical combat.
type CombatScreen struct {
	intent  *Intent
	status  CombatStatus
	retreat bool
}

// NewCombatScreen creates the combat screen bound to the shared intent.
func NewCombatScreen(intent *Intent) *CombatScreen {
	return &CombatScreen{intent: intent}
}

// Enter clears any stale retreat request.
func (c *CombatScreen) Enter() {
	c.retreat = false
	c.status = CombatStatus{}
}

// Exit is a no-op.
func (c *CombatScreen) Exit() {}

// Update is a no-op; phase pacing is owned by the game loop.
func (c *CombatScreen) Update(dt float64) {}

// SetStatus stores the snapshot rendered next frame.
func (c *CombatScreen) SetStatus(status CombatStatus) {
	c.status = status
}

// RetreatRequested reports and clears the player's retreat order.
func (c *CombatScreen) RetreatRequested() bool {
	r := c.retreat
	c.retreat = false
	return r
}

// Render draws the turn/phase HUD and both ships' gauges.
func (c *CombatScreen) Render(surface *Screen) {
	if surface == nil {
		return
	}
	w, h := surface.Size()

	header := fmt.Sprintf("COMBAT :: Turn %d :: Phase: %s", c.status.Turn, c.status.Phase)
	surface.DrawText(2, 1, header, tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true))

	barWidth := w/2 - 16
	if barWidth < 10 {
		barWidth = 10
	}

	surface.DrawText(2, 3, c.status.PlayerName, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	DrawBar(surface, 2, 4, barWidth, c.status.PlayerHull, "HULL ")
	DrawBar(surface, 2, 5, barWidth, c.status.PlayerShield, "SHLD ")

	surface.DrawText(2, 7, c.status.EnemyName, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	DrawBar(surface, 2, 8, barWidth, c.status.EnemyHull, "HULL ")
	DrawBar(surface, 2, 9, barWidth, c.status.EnemyShield, "SHLD ")

	if c.status.Outcome.Terminal() {
		msg := fmt.Sprintf("Encounter over: %s", c.status.Outcome)
		surface.DrawText(2, 11, msg, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}

	hint := "[R]etreat  [ESC] pause"
	surface.DrawText(1, h-1, hint, tcell.StyleDefault.Foreground(tcell.ColorTeal))
}

// HandleInput records retreat orders and pause requests.
func (c *CombatScreen) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case key.Key() == tcell.KeyEscape:
			c.intent.Request(flow.StatePaused)
		case key.Key() == tcell.KeyRune && (key.Rune() == 'r' || key.Rune() == 'R'):
			c.retreat = true
		}
	}
}
