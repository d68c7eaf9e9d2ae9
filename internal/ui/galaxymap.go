package ui

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/flow"
)

type star struct {
	x, y int
	dim  bool
}

// GalaxyMap is the screen handler for galaxy navigation.
type GalaxyMap struct {
	intent *Intent
	rng    *rand.Rand
	stars  []star
}

// NewGalaxyMap creates the galaxy map. The seed fixes the starfield so
// tests are deterministic.
func NewGalaxyMap(intent *Intent, seed int64) *GalaxyMap {
	return &GalaxyMap{
		intent: intent,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Enter generates a fresh starfield.
func (g *GalaxyMap) Enter() {
	g.stars = g.stars[:0]
	for i := 0; i < 120; i++ {
		g.stars = append(g.stars, star{
			x:   g.rng.Intn(160),
			y:   g.rng.Intn(48),
			dim: g.rng.Intn(3) == 0,
		})
	}
}

// Exit is a no-op; the starfield regenerates on the next Enter.
func (g *GalaxyMap) Exit() {}

// Update is a no-op; the map is static between inputs.
func (g *GalaxyMap) Update(dt float64) {}

// Render draws the starfield and the key hints.
func (g *GalaxyMap) Render(surface *Screen) {
	if surface == nil {
		return
	}
	w, h := surface.Size()

	bright := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	faint := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for _, s := range g.stars {
		if s.x >= w || s.y >= h-1 {
			continue
		}
		style := bright
		r := '*'
		if s.dim {
			style = faint
			r = '.'
		}
		surface.SetContent(s.x, s.y, r, style)
	}

	hint := "[C]ombat drill  [S]ector map  [B]ase  [M]enu  [ESC] pause"
	surface.DrawText(1, h-1, hint, tcell.StyleDefault.Foreground(tcell.ColorTeal))
}

// HandleInput maps navigation keys onto transition requests.
func (g *GalaxyMap) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape {
			g.intent.Request(flow.StatePaused)
			continue
		}
		if key.Key() != tcell.KeyRune {
			continue
		}
		switch key.Rune() {
		case 'c', 'C':
			g.intent.Request(flow.StateCombat)
		case 's', 'S':
			g.intent.Request(flow.StateSectorMap)
		case 'b', 'B':
			g.intent.Request(flow.StateStarbase)
		case 'm', 'M':
			g.intent.Request(flow.StateMainMenu)
		}
	}
}
