package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/timing"
)

// Splash is the startup screen. It advances to the main menu on its
// own after a short hold, or immediately on any key.
type Splash struct {
	intent *Intent
	hold   *timing.Cooldown
}

// NewSplash creates the startup splash with the given hold in seconds.
func NewSplash(intent *Intent, holdSeconds float64) *Splash {
	return &Splash{intent: intent, hold: timing.NewCooldown(holdSeconds)}
}

func (s *Splash) Enter() { s.hold.Start() }
func (s *Splash) Exit()  {}

// Update requests the main menu once the hold expires.
func (s *Splash) Update(dt float64) {
	s.hold.Update(dt)
	if s.hold.Ready() {
		s.intent.Request(flow.StateMainMenu)
	}
}

func (s *Splash) Render(surface *Screen) {
	if surface == nil {
		return
	}
	w, h := surface.Size()
	surface.DrawText((w-12)/2, h/2, "STARCOMMAND", tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true))
	surface.DrawText((w-18)/2, h/2+2, "initializing . . .", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (s *Splash) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		if _, ok := ev.(*tcell.EventKey); ok {
			s.intent.Request(flow.StateMainMenu)
		}
	}
}

// Paused is the pause overlay.
type Paused struct {
	intent *Intent
}

// NewPaused creates the pause overlay bound to the shared intent.
func NewPaused(intent *Intent) *Paused {
	return &Paused{intent: intent}
}

func (p *Paused) Enter()           {}
func (p *Paused) Exit()            {}
func (p *Paused) Update(dt float64) {}

func (p *Paused) Render(surface *Screen) {
	if surface == nil {
		return
	}
	w, h := surface.Size()
	surface.DrawText((w-8)/2, h/2, "= PAUSED =", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	surface.DrawText((w-28)/2, h/2+2, "[ESC] resume   [Q] quit game", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// HandleInput resumes on ESC and quits on Q.
func (p *Paused) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case key.Key() == tcell.KeyEscape:
			p.intent.RequestBack()
		case key.Key() == tcell.KeyRune && (key.Rune() == 'q' || key.Rune() == 'Q'):
			p.intent.Request(flow.StateQuit)
		}
	}
}

// Options is the settings screen. Values are display-only for now.
type Options struct {
	intent *Intent
	lines  []string
}

// NewOptions creates the options screen showing the given settings
// lines.
func NewOptions(intent *Intent, lines []string) *Options {
	return &Options{intent: intent, lines: lines}
}

func (o *Options) Enter()           {}
func (o *Options) Exit()            {}
func (o *Options) Update(dt float64) {}

func (o *Options) Render(surface *Screen) {
	if surface == nil {
		return
	}
	surface.DrawText(2, 1, "OPTIONS", tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true))
	for i, line := range o.lines {
		surface.DrawText(4, 3+i, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	_, h := surface.Size()
	surface.DrawText(1, h-1, "[ESC] back", tcell.StyleDefault.Foreground(tcell.ColorTeal))
}

func (o *Options) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyEscape {
			o.intent.RequestBack()
		}
	}
}

// Placeholder stands in for screens whose feature is not built yet. It
// shows the mode name and returns on ESC, keeping every game state
// reachable.
type Placeholder struct {
	intent *Intent
	title  string
}

// NewPlaceholder creates a placeholder screen with the given title.
func NewPlaceholder(intent *Intent, title string) *Placeholder {
	return &Placeholder{intent: intent, title: title}
}

func (p *Placeholder) Enter()           {}
func (p *Placeholder) Exit()            {}
func (p *Placeholder) Update(dt float64) {}

func (p *Placeholder) Render(surface *Screen) {
	if surface == nil {
		return
	}
	surface.DrawText(2, 1, p.title, tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true))
	surface.DrawText(2, 3, "Nothing to do here yet.", tcell.StyleDefault.Foreground(tcell.ColorGray))
	_, h := surface.Size()
	surface.DrawText(1, h-1, "[ESC] back", tcell.StyleDefault.Foreground(tcell.ColorTeal))
}

func (p *Placeholder) HandleInput(evs []tcell.Event) {
	for _, ev := range evs {
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyEscape {
			p.intent.RequestBack()
		}
	}
}
