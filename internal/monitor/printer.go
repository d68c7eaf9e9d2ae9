package monitor

import (
	"fmt"
	"io"
	"strings"
)

// ANSI escape codes used for terminal output.
const (
	ansiRed     = "\033[91m"
	ansiGreen   = "\033[92m"
	ansiYellow  = "\033[93m"
	ansiBlue    = "\033[94m"
	ansiMagenta = "\033[95m"
	ansiCyan    = "\033[96m"
	ansiWhite   = "\033[97m"
	ansiReset   = "\033[0m"
)

// Printer renders classified events as colored terminal lines.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner writes the monitor's startup header.
func (p *Printer) Banner(path string) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w, "COMBAT MONITOR - Real-time Event Tracker")
	fmt.Fprintln(p.w, rule)
	fmt.Fprintf(p.w, "Monitoring: %s\n", path)
	fmt.Fprintln(p.w, "Waiting for combat events...")
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w)
}

// Print writes one classified event. KindNone lines are dropped.
func (p *Printer) Print(ev Event) {
	switch ev.Kind {
	case KindTurnStart:
		rule := strings.Repeat("━", 80)
		fmt.Fprintf(p.w, "\n%s\n", rule)
		p.colored(ansiCyan, ev.Message)
		fmt.Fprintln(p.w, rule)
	case KindPhase:
		p.colored(ansiBlue, "  ℹ ⚡ PHASE: "+ev.Phase)
	case KindTransition:
		p.colored(ansiMagenta, "  » "+ev.Message)
	case KindHit:
		p.colored(ansiGreen, "  ✓ 💥 "+ev.Message)
	case KindMiss:
		p.colored(ansiYellow, "  ! ❌ "+ev.Message)
	case KindShield:
		p.colored(ansiBlue, "  ℹ 🛡  "+ev.Message)
	case KindHull:
		p.colored(ansiRed, "  ✗ 🚨 "+ev.Message)
	case KindDestroyed:
		p.colored(ansiRed, "  ✗ 💀 "+ev.Message)
	case KindError:
		p.colored(ansiRed, "  ✗ ⚠  "+ev.Message)
	}
}

// Closing writes the monitor's shutdown footer.
func (p *Printer) Closing() {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(p.w, "\n%s\n", rule)
	fmt.Fprintln(p.w, "Combat Monitor stopped")
	fmt.Fprintln(p.w, rule)
}

func (p *Printer) colored(color, text string) {
	fmt.Fprintf(p.w, "%s%s%s\n", color, text, ansiReset)
}
