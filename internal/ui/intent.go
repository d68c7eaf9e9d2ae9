package ui

import "github.com/SanguinemDe/starcommand/internal/flow"

// Intent is how screens ask the game loop to move somewhere else.
// Screens never touch the state manager themselves; they record a
// request here and the loop consumes it once per frame.
type Intent struct {
	target flow.GameFlowState
	set    bool
	back   bool
}

// Request asks for a transition to the given state.
func (i *Intent) Request(target flow.GameFlowState) {
	i.target = target
	i.set = true
}

// RequestBack asks to return to the previous state.
func (i *Intent) RequestBack() {
	i.back = true
}

// Take returns and clears a pending transition request.
func (i *Intent) Take() (flow.GameFlowState, bool) {
	if !i.set {
		return 0, false
	}
	i.set = false
	return i.target, true
}

// TakeBack returns and clears a pending go-back request.
func (i *Intent) TakeBack() bool {
	b := i.back
	i.back = false
	return b
}
