package screen

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/SanguinemDe/starcommand/internal/flow"
	"github.com/SanguinemDe/starcommand/internal/gamelog"
	"github.com/SanguinemDe/starcommand/internal/ui"
)

// stubHandler records every lifecycle call in order.
type stubHandler struct {
	name  string
	calls *[]string
}

func (s *stubHandler) record(method string) {
	*s.calls = append(*s.calls, s.name+"."+method)
}

func (s *stubHandler) Enter()                       { s.record("enter") }
func (s *stubHandler) Exit()                        { s.record("exit") }
func (s *stubHandler) Update(dt float64)            { s.record("update") }
func (s *stubHandler) Render(surface *ui.Screen)    { s.record("render") }
func (s *stubHandler) HandleInput(evs []tcell.Event) { s.record("input") }

func newStubs(t *testing.T) (*Registry, *stubHandler, *stubHandler, *[]string) {
	t.Helper()
	calls := &[]string{}
	a := &stubHandler{name: "menu", calls: calls}
	b := &stubHandler{name: "combat", calls: calls}
	r := NewRegistry(nil)
	r.Register(flow.StateMainMenu, a)
	r.Register(flow.StateCombat, b)
	return r, a, b, calls
}

func TestSetActivePairsExitAndEnter(t *testing.T) {
	r, _, _, calls := newStubs(t)

	if !r.SetActive(flow.StateMainMenu) {
		t.Fatal("SetActive(MainMenu) should succeed")
	}
	if !r.SetActive(flow.StateCombat) {
		t.Fatal("SetActive(Combat) should succeed")
	}

	want := []string{"menu.enter", "menu.exit", "combat.enter"}
	if len(*calls) != len(want) {
		t.Fatalf("calls = %v, want %v", *calls, want)
	}
	for i := range want {
		if (*calls)[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, (*calls)[i], want[i])
		}
	}
}

func TestSetActiveUnregisteredState(t *testing.T) {
	rec := &gamelog.Recorder{}
	calls := &[]string{}
	a := &stubHandler{name: "menu", calls: calls}
	r := NewRegistry(rec)
	r.Register(flow.StateMainMenu, a)
	r.SetActive(flow.StateMainMenu)

	if r.SetActive(flow.StateDialogue) {
		t.Error("SetActive for an unregistered state should fail")
	}
	if got := r.Active(); got != Handler(a) {
		t.Error("failed SetActive should leave the active handler unchanged")
	}
	if !rec.Contains("No screen registered for state: Dialogue") {
		t.Errorf("missing unregistered-state log: %v", rec.Entries)
	}

	// The failed activation must not have exited the active handler.
	for _, c := range *calls {
		if c == "menu.exit" {
			t.Error("active handler exited on failed activation")
		}
	}
}

func TestForwardingToActiveHandler(t *testing.T) {
	r, _, _, calls := newStubs(t)

	// With no active handler everything is a no-op.
	r.Update(0.016)
	r.Render(nil)
	r.HandleInput(nil)
	if len(*calls) != 0 {
		t.Fatalf("forwarding without an active handler produced calls: %v", *calls)
	}

	r.SetActive(flow.StateCombat)
	r.Update(0.016)
	r.Render(nil)
	r.HandleInput(nil)

	want := []string{"combat.enter", "combat.update", "combat.render", "combat.input"}
	if len(*calls) != len(want) {
		t.Fatalf("calls = %v, want %v", *calls, want)
	}
	for i := range want {
		if (*calls)[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, (*calls)[i], want[i])
		}
	}
}

func TestRegisterOverwritesBinding(t *testing.T) {
	calls := &[]string{}
	first := &stubHandler{name: "first", calls: calls}
	second := &stubHandler{name: "second", calls: calls}

	r := NewRegistry(nil)
	r.Register(flow.StateOptions, first)
	r.Register(flow.StateOptions, second)

	r.SetActive(flow.StateOptions)
	if got := r.Active(); got != Handler(second) {
		t.Error("later Register should win")
	}
}

func TestReactivatingSameStatePairsCalls(t *testing.T) {
	r, _, _, calls := newStubs(t)
	r.SetActive(flow.StateMainMenu)
	r.SetActive(flow.StateMainMenu)

	// Even re-activating the same state pairs exit before enter.
	want := []string{"menu.enter", "menu.exit", "menu.enter"}
	if len(*calls) != len(want) {
		t.Fatalf("calls = %v, want %v", *calls, want)
	}
	for i := range want {
		if (*calls)[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, (*calls)[i], want[i])
		}
	}
}
