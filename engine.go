package flubber

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidSpec is returned (wrapped) by Engine.Build when options cannot be
// turned into an animation: unknown preset or curve, missing target, or an
// out-of-range parameter.
var ErrInvalidSpec = errors.New("invalid animation spec")

// EventKind distinguishes trace events.
type EventKind uint8

const (
	EventStart    EventKind = iota // an animation or group began running
	EventComplete                  // an animation or group finished
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventComplete:
		return "complete"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is a single entry of the engine trace.
type Event struct {
	Time float64 // engine clock, milliseconds
	Kind EventKind
	Name string
}

// Engine builds animations and drives every started animation from a
// caller-owned clock. Call Update once per frame with the elapsed time;
// all start and completion callbacks run inside Start or Update on the
// caller's goroutine.
//
// There is no background ticker; users call Update themselves.
type Engine struct {
	now    float64
	active []Animation
	trace  func(Event)
	debug  io.Writer
}

// NewEngine creates an engine whose clock starts at zero.
func NewEngine() *Engine {
	return &Engine{}
}

// Now returns the engine clock in milliseconds.
func (e *Engine) Now() float64 {
	return e.now
}

// Active returns the number of started top-level animations that have not
// completed yet.
func (e *Engine) Active() int {
	return len(e.active)
}

// SetTrace registers fn to receive every start and completion event.
// Pass nil to disable tracing.
func (e *Engine) SetTrace(fn func(Event)) {
	e.trace = fn
}

// SetDebug enables diagnostic lines on w. Pass nil to disable.
func (e *Engine) SetDebug(w io.Writer) {
	e.debug = w
}

// Update advances the clock by dt milliseconds and steps every running
// animation. Animations started from callbacks during this call are first
// stepped on the next Update.
func (e *Engine) Update(dt float32) {
	if dt < 0 {
		dt = 0
	}
	e.now += float64(dt)
	if len(e.active) == 0 {
		return
	}

	running := make([]Animation, len(e.active))
	copy(running, e.active)
	for _, a := range running {
		if !a.Done() {
			a.update(dt)
		}
	}

	kept := e.active[:0]
	for _, a := range e.active {
		if !a.Done() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = kept
}

// Build validates o and returns an unstarted animation, or a started one
// when o.AutoStart is set. Errors wrap ErrInvalidSpec.
func (e *Engine) Build(o Options) (Animation, error) {
	o, ease, err := o.resolve()
	if err != nil {
		return nil, err
	}
	provider := o.Provider
	if provider == nil {
		provider = presets[o.Preset]
	}
	eff, err := provider.Effect(o)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSpec, o.displayName(), err)
	}

	t := newTween(e, o, eff, ease)
	if o.AutoStart {
		t.Start()
	}
	return t, nil
}

// register adds a top-level animation to the active list.
func (e *Engine) register(a Animation) {
	if a.Done() {
		return
	}
	e.active = append(e.active, a)
}

func (e *Engine) emit(kind EventKind, name string) {
	if e.trace != nil {
		e.trace(Event{Time: e.now, Kind: kind, Name: name})
	}
	if e.debug != nil {
		_, _ = fmt.Fprintf(e.debug, "[flubber] %8.1fms %-8s %s\n", e.now, kind, name)
	}
}
