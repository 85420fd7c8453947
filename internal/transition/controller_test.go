package transition

import (
	"errors"
	"testing"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
)

type fixture struct {
	engine *flubber.Engine
	events []flubber.Event
	views  Views
	ctrl   *Controller
}

func newFixture() *fixture {
	f := &fixture{engine: flubber.NewEngine()}
	f.engine.SetTrace(func(ev flubber.Event) { f.events = append(f.events, ev) })

	root := flubber.NewContainer("root")
	f.views = Views{
		Main:   flubber.NewRect("main", 360, 640, flubber.ColorWhite),
		Editor: flubber.NewRect("editor-container", 360, 640, flubber.ColorWhite),
		Mask:   flubber.NewRect("mask", 360, 640, flubber.Color{R: 1, A: 1}),
		Action: flubber.NewRect("action", 56, 56, flubber.ColorWhite),
	}
	f.views.Main.Interactable = true
	f.views.Editor.Visible = false
	f.views.Mask.Visible = false
	f.views.Action.X, f.views.Action.Y = 288, 568
	f.views.Action.Icon = IconAdd
	root.AddChild(f.views.Main)
	root.AddChild(f.views.Editor)
	root.AddChild(f.views.Mask)
	root.AddChild(f.views.Action)

	f.ctrl = New(f.engine, f.views)
	return f
}

// index returns the position of the first trace event of kind for name, or -1.
func (f *fixture) index(kind flubber.EventKind, name string) int {
	for i, ev := range f.events {
		if ev.Kind == kind && ev.Name == name {
			return i
		}
	}
	return -1
}

func (f *fixture) time(kind flubber.EventKind, name string) float64 {
	if i := f.index(kind, name); i >= 0 {
		return f.events[i].Time
	}
	return -1
}

func (f *fixture) settle() {
	for i := 0; i < 100 && f.engine.Active() > 0; i++ {
		f.engine.Update(16)
	}
}

func TestOpenIsSynchronous(t *testing.T) {
	f := newFixture()
	spec := catalog.DefaultSpec()

	if err := f.ctrl.Open(spec); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.ctrl.State() != StateOpen || !f.ctrl.IsOpen() {
		t.Fatalf("State = %v, want open", f.ctrl.State())
	}
	if f.views.Editor.NumChildren() != 1 || f.ctrl.Editor() == nil {
		t.Fatal("editor surface should be inserted before Open returns")
	}
	if f.views.Main.Visible || f.views.Main.Interactable {
		t.Error("main panel should be hidden and inert while open")
	}
	got, ok := f.ctrl.Pending()
	if !ok || got != spec {
		t.Errorf("Pending = %v, %v; want %v", got, ok, spec)
	}
}

func TestOpenSequencesRevealThenFade(t *testing.T) {
	f := newFixture()
	if err := f.ctrl.Open(catalog.DefaultSpec()); err != nil {
		t.Fatal(err)
	}

	f.engine.Update(DurationReveal)
	if !f.views.Editor.Visible {
		t.Error("editor container should be visible once the reveal completes")
	}
	if f.views.Action.Icon != IconDone {
		t.Errorf("Icon = %q, want %q", f.views.Action.Icon, IconDone)
	}
	f.engine.Update(DurationFade)

	if f.time(flubber.EventStart, "reveal") != 0 || f.time(flubber.EventStart, "icon-morph") != 0 {
		t.Errorf("reveal and icon morph should start together at 0: %v", f.events)
	}
	if f.index(flubber.EventStart, "mask-fade-out") < f.index(flubber.EventComplete, "reveal") {
		t.Error("mask fade started before the reveal completed")
	}
	if got := f.time(flubber.EventComplete, "mask-fade-out"); got != DurationReveal+DurationFade {
		t.Errorf("fade completed at %v, want %v", got, DurationReveal+DurationFade)
	}
	if f.views.Mask.IsShown() {
		t.Error("mask should be hidden after the fade")
	}
	if f.engine.Active() != 0 {
		t.Errorf("Active = %d, want 0", f.engine.Active())
	}
}

func TestCloseDefersRemovalUntilHideCompletes(t *testing.T) {
	f := newFixture()
	if err := f.ctrl.Open(catalog.DefaultSpec()); err != nil {
		t.Fatal(err)
	}
	f.settle()

	var states []State
	removedAfterHide := false
	f.ctrl.OnStateChange(func(s State) {
		states = append(states, s)
		if s == StateClosed {
			removedAfterHide = f.index(flubber.EventComplete, "unreveal") >= 0 &&
				f.views.Editor.NumChildren() == 0
		}
	})

	if err := f.ctrl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if f.ctrl.State() != StateClosing || !f.ctrl.IsOpen() {
		t.Fatalf("State = %v, want closing (coarse open)", f.ctrl.State())
	}
	if f.views.Editor.NumChildren() != 1 {
		t.Fatal("editor surface must stay attached while closing")
	}
	if _, ok := f.ctrl.Pending(); !ok {
		t.Error("pending spec should survive until the close completes")
	}

	f.engine.Update(DurationFade)
	if f.views.Editor.Visible {
		t.Error("editor container should be hidden once the mask covers it")
	}
	if f.ctrl.State() != StateClosing {
		t.Errorf("State = %v after fade, want closing", f.ctrl.State())
	}

	f.engine.Update(DurationReveal)
	if f.ctrl.State() != StateClosed || f.ctrl.IsOpen() {
		t.Fatalf("State = %v, want closed", f.ctrl.State())
	}
	if !removedAfterHide {
		t.Error("editor should be removed after the unreveal completes")
	}
	if f.index(flubber.EventStart, "unreveal") < f.index(flubber.EventComplete, "mask-fade-in") {
		t.Error("unreveal started before the mask fade-in completed")
	}
	if len(states) != 2 || states[0] != StateClosing || states[1] != StateClosed {
		t.Errorf("states = %v, want [closing closed]", states)
	}
	if !f.views.Main.Visible || !f.views.Main.Interactable {
		t.Error("main panel should be restored")
	}
	if f.views.Mask.Visible {
		t.Error("mask should be hidden")
	}
	if f.views.Action.Icon != IconAdd {
		t.Errorf("Icon = %q, want %q", f.views.Action.Icon, IconAdd)
	}
	if _, ok := f.ctrl.Pending(); ok || f.ctrl.Editor() != nil {
		t.Error("pending spec should be cleared when closed")
	}
}

func TestInvalidTransitions(t *testing.T) {
	f := newFixture()
	if err := f.ctrl.Close(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Close while closed: err = %v", err)
	}

	if err := f.ctrl.Open(catalog.DefaultSpec()); err != nil {
		t.Fatal(err)
	}
	if err := f.ctrl.Open(catalog.DefaultSpec()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Open while open: err = %v", err)
	}
	if f.views.Editor.NumChildren() != 1 {
		t.Error("rejected Open must not insert a second editor")
	}

	if err := f.ctrl.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.ctrl.Close(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Close while closing: err = %v", err)
	}
	if err := f.ctrl.Open(catalog.DefaultSpec()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Open while closing: err = %v", err)
	}
}

func TestCloseDuringShowAnimation(t *testing.T) {
	f := newFixture()
	if err := f.ctrl.Open(catalog.DefaultSpec()); err != nil {
		t.Fatal(err)
	}
	f.engine.Update(100)
	if err := f.ctrl.Close(); err != nil {
		t.Fatalf("Close during show: %v", err)
	}
	f.settle()
	if f.ctrl.State() != StateClosed {
		t.Fatalf("State = %v, want closed", f.ctrl.State())
	}
	if f.views.Action.ScaleX != 1 || f.views.Action.Icon != IconAdd {
		t.Errorf("action = scale %v icon %q, want rest with %q", f.views.Action.ScaleX, f.views.Action.Icon, IconAdd)
	}
}

func TestOpenFailureLeavesPanelClosed(t *testing.T) {
	f := newFixture()
	f.views.Mask = nil
	f.ctrl = New(f.engine, f.views)

	err := f.ctrl.Open(catalog.DefaultSpec())
	if !errors.Is(err, flubber.ErrInvalidSpec) {
		t.Fatalf("err = %v, want ErrInvalidSpec", err)
	}
	if f.ctrl.State() != StateClosed || f.views.Editor.NumChildren() != 0 || !f.views.Main.Visible {
		t.Error("failed Open must not change the layout")
	}
}

func TestRestore(t *testing.T) {
	f := newFixture()
	spec := catalog.Spec{Preset: flubber.PresetShake, Duration: 300}

	f.ctrl.Restore(true, spec)
	if f.ctrl.State() != StateOpen || f.engine.Active() != 0 {
		t.Fatalf("Restore(open) state=%v active=%d, want open with no animation", f.ctrl.State(), f.engine.Active())
	}
	if got, _ := f.ctrl.Pending(); got != spec {
		t.Errorf("Pending = %v, want %v", got, spec)
	}
	if f.views.Action.Icon != IconDone || !f.views.Editor.Visible || f.views.Main.Visible {
		t.Error("open layout not restored")
	}

	// Restoring open again keeps one surface and swaps its spec.
	f.ctrl.Restore(true, catalog.DefaultSpec())
	if f.views.Editor.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", f.views.Editor.NumChildren())
	}

	f.ctrl.Restore(false, catalog.Spec{})
	if f.ctrl.State() != StateClosed || f.views.Editor.NumChildren() != 0 {
		t.Error("Restore(closed) should drop the editor")
	}
	if f.views.Action.Icon != IconAdd || !f.views.Main.Interactable {
		t.Error("closed layout not restored")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		StateClosed: "closed", StateOpening: "opening", StateOpen: "open", StateClosing: "closing", State(9): "State(9)",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
