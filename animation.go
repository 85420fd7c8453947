package flubber

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a startable, single-use handle. Handles come from
// Engine.Build or from combining other handles with Parallel and Sequence.
//
// Start registers the handle with its engine; completion is observed only
// through OnComplete callbacks, which fire exactly once. Starting a handle
// twice is a no-op.
type Animation interface {
	// Start begins the animation. The call returns immediately.
	Start()
	// OnStart registers fn to run when the animation begins.
	OnStart(fn func())
	// OnComplete registers fn to run when the animation finishes. If the
	// animation has already finished, fn runs immediately.
	OnComplete(fn func())
	// Duration is the total running time in milliseconds, including delay
	// and repeats.
	Duration() float32
	Name() string
	Started() bool
	Done() bool

	// begin starts the animation without registering it with the engine.
	// Groups use it to drive their members.
	begin()
	// update advances a started animation by dt and returns the part of dt
	// left over after it completed (zero while still running).
	update(dt float32) float32
	engine() *Engine
}

// handle carries the bookkeeping shared by tweens and groups.
type handle struct {
	name    string
	eng     *Engine
	started bool
	done    bool
	onStart []func()
	onEnd   []func()
}

func (h *handle) Name() string    { return h.name }
func (h *handle) Started() bool   { return h.started }
func (h *handle) Done() bool      { return h.done }
func (h *handle) engine() *Engine { return h.eng }

func (h *handle) OnStart(fn func()) {
	h.onStart = append(h.onStart, fn)
}

func (h *handle) OnComplete(fn func()) {
	if h.done {
		fn()
		return
	}
	h.onEnd = append(h.onEnd, fn)
}

// markStarted flips the started flag and fires start callbacks. It reports
// false if the handle had already been started.
func (h *handle) markStarted() bool {
	if h.started {
		return false
	}
	h.started = true
	if h.eng != nil {
		h.eng.emit(EventStart, h.name)
	}
	for _, fn := range h.onStart {
		fn()
	}
	return true
}

// finish marks the handle done and fires completion callbacks once.
func (h *handle) finish() {
	if h.done {
		return
	}
	h.done = true
	if h.eng != nil {
		h.eng.emit(EventComplete, h.name)
	}
	callbacks := h.onEnd
	h.onEnd = nil
	for _, fn := range callbacks {
		fn()
	}
}

// Track animates one float64 field between two values.
type Track struct {
	Field    *float64
	From, To float64
	// Ease overrides the animation curve for this track.
	Ease ease.TweenFunc
}

// Effect is what a Provider contributes to an animation: the tracks to tween
// and optional hooks.
type Effect struct {
	Tracks []Track
	// OnBegin runs when the animation starts, before the first values are
	// written.
	OnBegin func()
	// OnProgress runs after every update with the cycle progress in [0, 1].
	OnProgress func(p float64)
	// OnEnd runs after the final values are written, before completion
	// callbacks.
	OnEnd func()
}

// Provider produces the effect of an animation from its resolved options.
// Providers are called once per Build, so hooks may close over fresh state.
type Provider interface {
	Effect(o Options) (Effect, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(o Options) (Effect, error)

// Effect calls f(o).
func (f ProviderFunc) Effect(o Options) (Effect, error) {
	return f(o)
}

// Tween is a leaf animation: a set of gween tweens writing node fields.
// If the target node is disposed, the tween completes on its next update
// without writing.
type Tween struct {
	handle
	target   *Node
	effect   Effect
	tweens   []*gween.Tween
	duration float32 // one cycle
	delay    float32
	repeat   int
	elapsed  float32
	primed   bool
}

func newTween(e *Engine, o Options, eff Effect, fn ease.TweenFunc) *Tween {
	t := &Tween{
		handle:   handle{name: o.Name, eng: e},
		target:   o.Target,
		effect:   eff,
		duration: o.Duration,
		delay:    o.Delay,
		repeat:   o.Repeat,
	}
	t.tweens = make([]*gween.Tween, len(eff.Tracks))
	for i, tr := range eff.Tracks {
		trackEase := tr.Ease
		if trackEase == nil {
			trackEase = fn
		}
		t.tweens[i] = gween.New(float32(tr.From), float32(tr.To), o.Duration, trackEase)
	}
	return t
}

// Target returns the node this tween writes to.
func (t *Tween) Target() *Node {
	return t.target
}

// Duration returns delay + duration * (repeat + 1).
func (t *Tween) Duration() float32 {
	return t.delay + t.duration*float32(t.repeat+1)
}

// Start begins the tween and registers it with its engine.
func (t *Tween) Start() {
	if t.started {
		return
	}
	t.begin()
	t.eng.register(t)
}

func (t *Tween) begin() {
	if !t.markStarted() {
		return
	}
	if t.effect.OnBegin != nil {
		t.effect.OnBegin()
	}
	if t.delay == 0 {
		t.prime()
	}
}

// prime writes the starting values.
func (t *Tween) prime() {
	t.primed = true
	t.apply(0)
}

func (t *Tween) update(dt float32) float32 {
	if t.done {
		return dt
	}
	if t.target != nil && t.target.IsDisposed() {
		t.finish()
		return dt
	}

	t.elapsed += dt
	local := t.elapsed - t.delay
	if local < 0 {
		return 0
	}
	if !t.primed {
		t.prime()
	}

	total := t.duration * float32(t.repeat+1)
	if local >= total {
		t.apply(t.duration)
		if t.effect.OnProgress != nil {
			t.effect.OnProgress(1)
		}
		if t.effect.OnEnd != nil {
			t.effect.OnEnd()
		}
		t.finish()
		return local - total
	}

	cycle := local
	if t.duration > 0 {
		cycle = float32(math.Mod(float64(local), float64(t.duration)))
	}
	t.apply(cycle)
	if t.effect.OnProgress != nil && t.duration > 0 {
		t.effect.OnProgress(float64(cycle / t.duration))
	}
	return 0
}

// apply writes every track's value at cycle time at.
func (t *Tween) apply(at float32) {
	for i, tw := range t.tweens {
		val, _ := tw.Set(at)
		*t.effect.Tracks[i].Field = float64(val)
	}
}
