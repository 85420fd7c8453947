// Package transition owns the open/closed state of the editor panel and
// runs the reveal, cross-fade and icon-morph animations between the two.
package transition

import (
	"errors"
	"fmt"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
	"github.com/phanxgames/flubber/internal/editor"
)

// Fixed durations, in engine milliseconds.
const (
	DurationReveal = 350
	DurationFade   = 200
)

// Icons shown on the primary action button.
const (
	IconAdd  = "add"
	IconDone = "done"
)

// ErrInvalidTransition is returned by Open when the panel is not closed and
// by Close when it is not open.
var ErrInvalidTransition = errors.New("invalid panel transition")

// State is the fine-grained panel state.
type State uint8

const (
	StateClosed  State = iota // editor absent, main panel interactive
	StateOpening              // transient, inside Open
	StateOpen                 // editor present; show animation may still be running
	StateClosing              // hide animation running; editor still present
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// IsOpen reports the coarse panel state: everything but StateClosed counts
// as open, since the editor stays attached until the hide completes.
func (s State) IsOpen() bool {
	return s != StateClosed
}

// Views are the nodes a Controller animates.
type Views struct {
	Main   *flubber.Node // catalog panel, hidden while the editor is open
	Editor *flubber.Node // container the editor surface is inserted into
	Mask   *flubber.Node // reveal overlay drawn above the editor container
	Action *flubber.Node // primary action button
}

// Controller drives the panel between closed and open. It does not queue
// or coalesce requests: a call in the wrong state fails with
// ErrInvalidTransition.
type Controller struct {
	engine   *flubber.Engine
	views    Views
	state    State
	pending  *editor.Editor
	onChange []func(State)
}

// New returns a closed controller.
func New(engine *flubber.Engine, views Views) *Controller {
	return &Controller{engine: engine, views: views}
}

// State returns the fine-grained state.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports the coarse panel state.
func (c *Controller) IsOpen() bool {
	return c.state.IsOpen()
}

// Editor returns the attached editor surface, or nil while closed.
func (c *Controller) Editor() *editor.Editor {
	return c.pending
}

// Pending returns the spec being edited. ok is false while closed.
func (c *Controller) Pending() (spec catalog.Spec, ok bool) {
	if c.pending == nil {
		return catalog.Spec{}, false
	}
	return c.pending.Spec(), true
}

// OnStateChange registers fn to run after every state change.
func (c *Controller) OnStateChange(fn func(State)) {
	c.onChange = append(c.onChange, fn)
}

func (c *Controller) setState(s State) {
	c.state = s
	for _, fn := range c.onChange {
		fn(s)
	}
}

// Open attaches an editor for spec and starts the show transition: the icon
// morph runs on its own while the reveal is followed by the mask fade-out.
// The editor is inserted and the main panel hidden before any animation
// starts, and the state is StateOpen when Open returns.
func (c *Controller) Open(spec catalog.Spec) error {
	if c.state != StateClosed {
		return fmt.Errorf("open while %s: %w", c.state, ErrInvalidTransition)
	}
	v := c.views

	morph, err := c.engine.Build(flubber.Options{
		Provider: flubber.IconMorph(IconDone),
		Target:   v.Action,
		Duration: DurationReveal,
		Name:     "icon-morph",
	})
	if err != nil {
		return err
	}
	reveal, err := c.engine.Build(flubber.Options{
		Provider: flubber.Reveal(v.Action, v.Mask, true),
		Target:   v.Editor,
		Duration: DurationReveal,
		Name:     "reveal",
	})
	if err != nil {
		return err
	}
	fade, err := c.engine.Build(flubber.Options{
		Preset:   flubber.PresetFadeOut,
		Target:   v.Mask,
		Duration: DurationFade,
		Curve:    flubber.CurveEaseOut,
		Name:     "mask-fade-out",
	})
	if err != nil {
		return err
	}

	fade.OnComplete(func() { v.Mask.Visible = false })

	c.setState(StateOpening)
	c.pending = editor.New(c.engine, spec, v.Editor.Width, v.Editor.Height)

	v.Main.Visible = false
	v.Main.Interactable = false
	v.Editor.Visible = false
	v.Editor.Alpha = 1
	v.Editor.AddChild(c.pending.Node())

	morph.Start()
	flubber.Sequence(reveal, fade).Named("show-editor").Start()

	c.setState(StateOpen)
	return nil
}

// Close starts the hide transition: the icon morphs back while the mask
// fades in over the editor and then collapses into the action button. The
// editor is removed, the main panel restored and the state set to
// StateClosed only when the collapse completes; until then the state is
// StateClosing. The pending spec is discarded with the editor, so callers
// that want to keep it read Pending first.
func (c *Controller) Close() error {
	if c.state != StateOpen {
		return fmt.Errorf("close while %s: %w", c.state, ErrInvalidTransition)
	}
	v := c.views
	// The show morph may still be running; start the hide morph from rest.
	v.Action.ScaleX, v.Action.ScaleY = 1, 1

	morph, err := c.engine.Build(flubber.Options{
		Provider: flubber.IconMorph(IconAdd),
		Target:   v.Action,
		Duration: DurationReveal,
		Name:     "icon-morph",
	})
	if err != nil {
		return err
	}
	fade, err := c.engine.Build(flubber.Options{
		Preset:   flubber.PresetFadeIn,
		Target:   v.Mask,
		Duration: DurationFade,
		Curve:    flubber.CurveEaseOut,
		Name:     "mask-fade-in",
	})
	if err != nil {
		return err
	}
	collapse, err := c.engine.Build(flubber.Options{
		Provider: flubber.Reveal(v.Action, v.Mask, false),
		Target:   v.Editor,
		Duration: DurationReveal,
		Name:     "unreveal",
	})
	if err != nil {
		return err
	}

	v.Mask.Visible = true
	fade.OnComplete(func() { v.Editor.Visible = false })

	surface := c.pending
	hide := flubber.Sequence(fade, collapse).Named("hide-editor")
	hide.OnComplete(func() {
		surface.Node().Dispose()
		v.Main.Visible = true
		v.Main.Interactable = true
		c.pending = nil
		c.setState(StateClosed)
	})

	c.setState(StateClosing)
	morph.Start()
	hide.Start()
	return nil
}

// Restore puts the panel directly into the open or closed layout without
// animating, as when a screen is re-created from saved state. Opening
// restores the "done" icon and an editor holding spec.
func (c *Controller) Restore(open bool, spec catalog.Spec) {
	v := c.views
	v.Mask.Visible = false
	v.Mask.RevealRadius = flubber.NoReveal

	if !open {
		if c.pending != nil {
			c.pending.Node().Dispose()
			c.pending = nil
		}
		v.Main.Visible = true
		v.Main.Interactable = true
		v.Editor.Visible = false
		v.Action.Icon = IconAdd
		c.setState(StateClosed)
		return
	}

	if c.pending == nil {
		c.pending = editor.New(c.engine, spec, v.Editor.Width, v.Editor.Height)
		v.Editor.AddChild(c.pending.Node())
	} else {
		c.pending.SetSpec(spec)
	}
	v.Main.Visible = false
	v.Main.Interactable = false
	v.Editor.Visible = true
	v.Editor.Alpha = 1
	v.Action.Icon = IconDone
	c.setState(StateOpen)
}
