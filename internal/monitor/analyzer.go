package monitor

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var damageRe = regexp.MustCompile(`for (\d+) damage`)

// TurnReport aggregates the events of a single combat turn.
type TurnReport struct {
	Number int
	Phases []string
	Hits   int
	Misses int
	Damage int
}

// Report is the result of analyzing a finished combat log.
type Report struct {
	Turns       []TurnReport
	TotalHits   int
	TotalMisses int
	TotalDamage int
	Destroyed   []string
}

// Accuracy returns the overall hit rate, or 0 with no shots recorded.
func (r *Report) Accuracy() float64 {
	shots := r.TotalHits + r.TotalMisses
	if shots == 0 {
		return 0
	}
	return float64(r.TotalHits) / float64(shots)
}

// Analyze reads a whole combat log and builds an after-action report.
func Analyze(in io.Reader) (*Report, error) {
	report := &Report{}
	var current *TurnReport

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		ev := Classify(scanner.Text())

		switch ev.Kind {
		case KindTurnStart:
			report.Turns = append(report.Turns, TurnReport{Number: ev.Turn})
			current = &report.Turns[len(report.Turns)-1]
		case KindPhase:
			if current != nil {
				current.Phases = append(current.Phases, ev.Phase)
			}
		case KindHit:
			report.TotalHits++
			dmg := parseDamage(ev.Message)
			report.TotalDamage += dmg
			if current != nil {
				current.Hits++
				current.Damage += dmg
			}
		case KindMiss:
			report.TotalMisses++
			if current != nil {
				current.Misses++
			}
		case KindDestroyed:
			report.Destroyed = append(report.Destroyed, ev.Message)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan log: %w", err)
	}

	return report, nil
}

func parseDamage(msg string) int {
	m := damageRe.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	var dmg int
	fmt.Sscanf(m[1], "%d", &dmg)
	return dmg
}

// Write renders the report in the monitor's banner style.
func (r *Report) Write(w io.Writer) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COMBAT ANALYSIS REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	for _, turn := range r.Turns {
		fmt.Fprintf(w, "Turn %d: %d phases, %d hits, %d misses, %d damage\n",
			turn.Number, len(turn.Phases), turn.Hits, turn.Misses, turn.Damage)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Turns fought:  %d\n", len(r.Turns))
	fmt.Fprintf(w, "Total hits:    %d\n", r.TotalHits)
	fmt.Fprintf(w, "Total misses:  %d\n", r.TotalMisses)
	fmt.Fprintf(w, "Accuracy:      %.0f%%\n", r.Accuracy()*100)
	fmt.Fprintf(w, "Total damage:  %d\n", r.TotalDamage)
	for _, d := range r.Destroyed {
		fmt.Fprintf(w, "Destroyed:     %s\n", d)
	}
	fmt.Fprintln(w, rule)
}
