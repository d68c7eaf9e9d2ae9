// Package monitor tails the game log and classifies combat events for
// live viewing and after-action analysis. It depends only on the log
// line format "timestamp - name - LEVEL - message".
package monitor

import (
	"strconv"
	"strings"
)

// Kind classifies a log line into a combat event category.
type Kind int

const (
	// KindNone - line carries no combat event
	KindNone Kind = iota
	// KindTurnStart - a combat turn began
	KindTurnStart
	// KindPhase - the combat phase advanced
	KindPhase
	// KindTransition - the game changed top-level state
	KindTransition
	// KindHit - a weapon hit and dealt damage
	KindHit
	// KindMiss - a weapon missed
	KindMiss
	// KindShield - shield strength changed
	KindShield
	// KindHull - hull took damage
	KindHull
	// KindDestroyed - a ship was destroyed
	KindDestroyed
	// KindError - the game reported an error
	KindError
)

// Event is a classified log line.
type Event struct {
	Kind    Kind
	Message string // message field with the timestamp/name/level prefix stripped
	Phase   string // set for KindPhase
	Turn    int    // set for KindTurnStart
}

// Classify inspects a log line and returns the combat event it carries,
// if any. Unrecognized lines come back as KindNone.
func Classify(line string) Event {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{Kind: KindNone}
	}

	msg := extractMessage(line)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(msg, "=== Turn") && strings.Contains(msg, "Started ==="):
		return Event{Kind: KindTurnStart, Message: msg, Turn: parseTurn(msg)}

	case strings.Contains(msg, "Combat phase advanced to:"):
		phase := strings.TrimSpace(msg[strings.LastIndex(msg, ":")+1:])
		return Event{Kind: KindPhase, Message: msg, Phase: phase}

	case strings.Contains(msg, "State transition:"):
		return Event{Kind: KindTransition, Message: msg}

	case strings.Contains(msg, "HIT") && strings.Contains(msg, "for") && strings.Contains(msg, "damage"):
		return Event{Kind: KindHit, Message: msg}

	case strings.Contains(msg, "MISSED"):
		return Event{Kind: KindMiss, Message: msg}

	case strings.Contains(lower, "shields") && strings.Contains(lower, "reduced"):
		return Event{Kind: KindShield, Message: msg}

	case strings.Contains(lower, "hull") && strings.Contains(lower, "damage"):
		return Event{Kind: KindHull, Message: msg}

	case strings.Contains(msg, "DESTROYED"):
		return Event{Kind: KindDestroyed, Message: msg}

	case strings.Contains(msg, "ERROR") || strings.Contains(msg, "Error"):
		return Event{Kind: KindError, Message: msg}
	}

	return Event{Kind: KindNone, Message: msg}
}

// extractMessage strips the "timestamp - name - level - " prefix. Lines
// that do not match the format pass through unchanged.
func extractMessage(line string) string {
	parts := strings.SplitN(line, " - ", 4)
	if len(parts) >= 4 {
		return parts[3]
	}
	return line
}

func parseTurn(msg string) int {
	fields := strings.Fields(msg)
	for i, f := range fields {
		if f == "Turn" && i+1 < len(fields) {
			if n, err := strconv.Atoi(fields[i+1]); err == nil {
				return n
			}
		}
	}
	return 0
}
