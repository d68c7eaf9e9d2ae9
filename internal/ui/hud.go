package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	hudCritical = colorful.Color{R: 0.85, G: 0.15, B: 0.10}
	hudHealthy  = colorful.Color{R: 0.15, G: 0.80, B: 0.25}
)

// HealthColor maps a 0..1 health fraction onto a red-to-green gradient.
func HealthColor(frac float64) tcell.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	c := hudCritical.BlendLuv(hudHealthy, frac).Clamped()
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}

// DrawBar renders a labelled gauge, filled proportionally to frac and
// colored by health.
func DrawBar(s *Screen, x, y, width int, frac float64, label string) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	s.DrawText(x, y, label, labelStyle)

	barX := x + len(label) + 1
	filled := int(frac * float64(width))
	fillStyle := tcell.StyleDefault.Foreground(HealthColor(frac))
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	for i := 0; i < width; i++ {
		r := '░'
		style := emptyStyle
		if i < filled {
			r = '█'
			style = fillStyle
		}
		s.SetContent(barX+i, y, r, style)
	}
}
