// Package screen binds game flow states to screen handlers and keeps
// exactly one handler active at a time. It is deliberately decoupled
// from the state manager: the game loop re-synchronizes the active
// handler after each successful transition, and headless code can drive
// the state manager without any registry at all.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/gamelog"
	"github.com/SanguinemDe/starcommand/internal/ui"
)

// Handler is the lifecycle a screen exposes. Enter and Exit are always
// paired by the registry; Update, Render and HandleInput are forwarded
// only to the active handler. The surface and events pass through
// untouched.
type Handler interface {
	Enter()
	Exit()
	Update(dt float64)
	Render(surface *ui.Screen)
	HandleInput(evs []tcell.Event)
}

// Registry maps flow states to handlers and owns the active one.
type Registry struct {
	bindings map[flow.GameFlowState]Handler
	active   Handler
	log      gamelog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards
// diagnostics.
func NewRegistry(log gamelog.Logger) *Registry {
	if log == nil {
		log = gamelog.Nop{}
	}
	return &Registry{
		bindings: make(map[flow.GameFlowState]Handler),
		log:      log,
	}
}

// Register binds a handler to a state, replacing any previous binding.
// The active handler is unaffected.
func (r *Registry) Register(state flow.GameFlowState, h Handler) {
	r.bindings[state] = h
	r.log.Debugf("Registered screen for state: %s", state)
}

// SetActive exits the current handler, if any, and enters the one
// bound to state. With no binding for state it logs the error and
// leaves the active handler unchanged.
func (r *Registry) SetActive(state flow.GameFlowState) bool {
	next, ok := r.bindings[state]
	if !ok {
		r.log.Errorf("No screen registered for state: %s", state)
		return false
	}

	if r.active != nil {
		r.active.Exit()
	}
	r.active = next
	r.active.Enter()

	r.log.Infof("Active screen set to: %s", state)
	return true
}

// Active returns the currently active handler, or nil.
func (r *Registry) Active() Handler { return r.active }

// Update forwards dt to the active handler.
func (r *Registry) Update(dt float64) {
	if r.active != nil {
		r.active.Update(dt)
	}
}

// Render forwards the surface to the active handler.
func (r *Registry) Render(surface *ui.Screen) {
	if r.active != nil {
		r.active.Render(surface)
	}
}

// HandleInput forwards events to the active handler.
func (r *Registry) HandleInput(evs []tcell.Event) {
	if r.active != nil {
		r.active.HandleInput(evs)
	}
}
