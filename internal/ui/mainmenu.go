package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/timing"
)

type menuEntry struct {
	label  string
	target flow.GameFlowState
}

// MainMenu is the screen handler for the main menu state.
type MainMenu struct {
	intent    *Intent
	entries   []menuEntry
	selection int
	pulse     *timing.Animation
}

// NewMainMenu creates the main menu bound to the shared intent.
func NewMainMenu(intent *Intent) *MainMenu {
	return &MainMenu{
		intent: intent,
		entries: []menuEntry{
			{"NEW GAME", flow.StateNewGame},
			{"LOAD GAME", flow.StateLoadGame},
			{"COMBAT DRILL", flow.StateCombat},
			{"OPTIONS", flow.StateOptions},
			{"QUIT", flow.StateQuit},
		},
		pulse: timing.NewAnimation(1.2, true, true),
	}
}

// Enter resets the selection and starts the title pulse.
func (m *MainMenu) Enter() {
	m.selection = 0
	m.pulse.Start()
}

// Exit stops the title pulse.
func (m *MainMenu) Exit() {
	m.pulse.Stop()
}

// Update advances the title pulse.
func (m *MainMenu) Update(dt float64) {
	m.pulse.Update(dt)
}

// Selection returns the index of the highlighted entry.
func (m *MainMenu) Selection() int { return m.selection }

// Render draws the title and menu entries.
func (m *MainMenu) Render(surface *Screen) {
	if surface == nil {
		return
	}
	w, _ := surface.Size()

	// Title brightness follows the pulse animation.
	level := timing.Lerp(0.5, 1.0, timing.SmoothStep(m.pulse.Progress()))
	titleStyle := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(255*level), int32(180*level), int32(40*level))).
		Bold(true)

	title := "S T A R C O M M A N D"
	surface.DrawText((w-len(title))/2, 3, title, titleStyle)

	for i, entry := range m.entries {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		label := "  " + entry.label
		if i == m.selection {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			label = "> " + entry.label
		}
		surface.DrawText((w-20)/2, 7+i*2, label, style)
	}
}

// HandleInput moves the selection and confirms with Enter.
func (m *MainMenu) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyUp:
			if m.selection > 0 {
				m.selection--
			}
		case tcell.KeyDown:
			if m.selection < len(m.entries)-1 {
				m.selection++
			}
		case tcell.KeyEnter:
			m.intent.Request(m.entries[m.selection].target)
		}
	}
}
