package flow

import (
	"github.com/SanguinemDe/starcommand/internal/gamelog"
)

// Rule decides whether a transition from one state to another is
// allowed. Returning false rejects the transition without mutating the
// manager.
type Rule func(from, to GameFlowState) bool

// AllowAll is the default rule: every transition is valid.
func AllowAll(from, to GameFlowState) bool { return true }

// RuleTable builds a Rule from an explicit allow-list per source state.
// States absent from the table allow every transition, so the table
// only needs entries for states that restrict movement.
func RuleTable(allowed map[GameFlowState][]GameFlowState) Rule {
	return func(from, to GameFlowState) bool {
		targets, ok := allowed[from]
		if !ok {
			return true
		}
		for _, t := range targets {
			if t == to {
				return true
			}
		}
		return false
	}
}

// Manager owns the authoritative current game state, the previous
// state, and the transition history. It is single-threaded by design:
// the game loop is its only caller.
type Manager struct {
	current GameFlowState
	prev    GameFlowState
	hasPrev bool
	history []GameFlowState
	rule    Rule
	log     gamelog.Logger
}

// NewManager creates a manager starting in the given state. A nil
// logger discards diagnostics.
func NewManager(initial GameFlowState, log gamelog.Logger) *Manager {
	if log == nil {
		log = gamelog.Nop{}
	}
	m := &Manager{
		current: initial,
		history: []GameFlowState{initial},
		rule:    AllowAll,
		log:     log,
	}
	m.log.Infof("StateManager initialized: %s", initial)
	return m
}

// SetRule installs the transition-validity rule. This is the extension
// point for future transition policy; the manager itself stays
// policy-free.
func (m *Manager) SetRule(rule Rule) {
	if rule == nil {
		rule = AllowAll
	}
	m.rule = rule
}

// TransitionTo moves the manager to target. It fails, with no
// mutation, when target is invalid, equals the current state without
// allowSame, or is rejected by the rule. Failures are logged and
// reported via the return value; none are fatal.
func (m *Manager) TransitionTo(target GameFlowState, allowSame bool) bool {
	if !target.Valid() {
		m.log.Errorf("Invalid state: %d", int(target))
		return false
	}

	if target == m.current && !allowSame {
		m.log.Warnf("Already in state: %s", target)
		return false
	}

	if !m.rule(m.current, target) {
		m.log.Errorf("Invalid transition: %s -> %s", m.current, target)
		return false
	}

	m.prev = m.current
	m.hasPrev = true
	m.current = target
	m.history = append(m.history, target)

	m.log.Infof("State transition: %s -> %s", m.prev, target)
	return true
}

// GoBack returns to the previous state. Because a successful
// transition overwrites the previous slot with the pre-call current
// state, repeated calls toggle between the last two states rather than
// unwinding the full history.
func (m *Manager) GoBack() bool {
	if !m.hasPrev {
		m.log.Warnf("No previous state to return to")
		return false
	}
	return m.TransitionTo(m.prev, true)
}

// Current returns the current state.
func (m *Manager) Current() GameFlowState { return m.current }

// Previous returns the previous state and whether one exists.
func (m *Manager) Previous() (GameFlowState, bool) { return m.prev, m.hasPrev }

// Is reports whether the current state equals s.
func (m *Manager) Is(s GameFlowState) bool { return m.current == s }

// IsAny reports whether the current state is one of the given states.
func (m *Manager) IsAny(states ...GameFlowState) bool {
	for _, s := range states {
		if m.current == s {
			return true
		}
	}
	return false
}

// History returns up to limit most recent states, newest first. It
// never mutates the underlying history.
func (m *Manager) History(limit int) []GameFlowState {
	if limit <= 0 {
		return nil
	}
	n := len(m.history)
	if limit > n {
		limit = n
	}
	out := make([]GameFlowState, limit)
	for i := 0; i < limit; i++ {
		out[i] = m.history[n-1-i]
	}
	return out
}

// HistoryLen returns the number of recorded states.
func (m *Manager) HistoryLen() int { return len(m.history) }

// ClearHistory truncates the history to just the current state. The
// current and previous slots are untouched.
func (m *Manager) ClearHistory() {
	m.history = m.history[:0]
	m.history = append(m.history, m.current)
	m.log.Debugf("State history cleared")
}
