// Package editor implements the editor surface shown while the panel is
// open: it owns the pending spec, lets the user change it, and previews it
// on its own target.
package editor

import (
	"fmt"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
)

const (
	previewSize   = 72.0
	buttonWidth   = 60.0
	buttonHeight  = 32.0
	buttonSpacing = 8.0
	margin        = 16.0
	durationStep  = 50
	minDuration   = 50
)

// Node colors.
var (
	colorPreview = flubber.Color{R: 0.98, G: 0.36, B: 0.33, A: 1}
	colorButton  = flubber.Color{R: 0.25, G: 0.27, B: 0.33, A: 1}
)

// Editor is the node subtree edited while the panel is open.
type Editor struct {
	engine  *flubber.Engine
	spec    catalog.Spec
	root    *flubber.Node
	title   *flubber.Node
	preview *flubber.Node
	home    flubber.Vec2

	presets []flubber.Preset
	curves  []flubber.Curve
}

// New builds an editor of the given size holding spec.
func New(engine *flubber.Engine, spec catalog.Spec, width, height float64) *Editor {
	e := &Editor{
		engine:  engine,
		spec:    spec,
		presets: flubber.Presets(),
		curves:  append([]flubber.Curve{flubber.CurveDefault}, flubber.Curves()...),
	}

	e.root = flubber.NewRect("editor", width, height, flubber.Color{R: 0.96, G: 0.96, B: 0.97, A: 1})

	e.title = flubber.NewContainer("editor-title")
	e.title.X, e.title.Y = margin, margin
	e.root.AddChild(e.title)

	e.home = flubber.Vec2{X: (width - previewSize) / 2, Y: height/3 - previewSize/2}
	e.preview = flubber.NewRect("editor-preview", previewSize, previewSize, colorPreview)
	e.preview.X, e.preview.Y = e.home.X, e.home.Y
	e.root.AddChild(e.preview)

	buttons := []struct {
		label string
		fn    func()
	}{
		{"< fx", func() { e.CyclePreset(-1) }},
		{"fx >", func() { e.CyclePreset(1) }},
		{"curve", func() { e.CycleCurve(1) }},
		{"- ms", func() { e.AdjustDuration(-durationStep) }},
		{"+ ms", func() { e.AdjustDuration(durationStep) }},
	}
	x := margin
	y := height - margin - buttonHeight*2
	for _, b := range buttons {
		btn := flubber.NewRect("editor-"+b.label, buttonWidth, buttonHeight, colorButton)
		btn.X, btn.Y = x, y
		btn.Label = b.label
		btn.Interactable = true
		btn.OnClick = b.fn
		e.root.AddChild(btn)
		x += buttonWidth + buttonSpacing
	}

	e.refresh()
	return e
}

// Node returns the editor's root node.
func (e *Editor) Node() *flubber.Node {
	return e.root
}

// Preview returns the node previews play on.
func (e *Editor) Preview() *flubber.Node {
	return e.preview
}

// Spec returns the pending spec.
func (e *Editor) Spec() catalog.Spec {
	return e.spec
}

// SetSpec replaces the pending spec.
func (e *Editor) SetSpec(spec catalog.Spec) {
	e.spec = spec
	e.refresh()
}

// CyclePreset moves the pending preset step positions through the sorted
// preset list, wrapping around.
func (e *Editor) CyclePreset(step int) {
	i := indexOf(e.presets, e.spec.Preset)
	e.spec.Preset = e.presets[wrap(i+step, len(e.presets))]
	e.refresh()
}

// CycleCurve moves the pending curve step positions through the curve list,
// wrapping around. The default curve comes first.
func (e *Editor) CycleCurve(step int) {
	i := indexOf(e.curves, e.spec.Curve)
	e.spec.Curve = e.curves[wrap(i+step, len(e.curves))]
	e.refresh()
}

// AdjustDuration adds delta milliseconds to the pending duration, never
// going below a minimum.
func (e *Editor) AdjustDuration(delta float32) {
	d := e.spec.Duration
	if d == 0 {
		d = flubber.DefaultDuration
	}
	d += delta
	if d < minDuration {
		d = minDuration
	}
	e.spec.Duration = d
	e.refresh()
}

// Play resets the preview node and runs the pending spec on it. This is the
// editor's own play affordance; the catalog is not involved. An invalid spec
// leaves the preview untouched.
func (e *Editor) Play() (flubber.Animation, error) {
	saved := savePreview(e.preview)
	e.resetPreview()
	a, err := e.engine.Build(e.spec.Options(e.preview))
	if err != nil {
		saved.restore(e.preview)
		return nil, fmt.Errorf("preview: %w", err)
	}
	a.Start()
	return a, nil
}

type previewState struct {
	x, y, scaleX, scaleY, rotation, alpha float64
	visible                               bool
}

func savePreview(p *flubber.Node) previewState {
	return previewState{p.X, p.Y, p.ScaleX, p.ScaleY, p.Rotation, p.Alpha, p.Visible}
}

func (s previewState) restore(p *flubber.Node) {
	p.X, p.Y = s.x, s.y
	p.ScaleX, p.ScaleY = s.scaleX, s.scaleY
	p.Rotation = s.rotation
	p.Alpha = s.alpha
	p.Visible = s.visible
}

func (e *Editor) resetPreview() {
	p := e.preview
	p.X, p.Y = e.home.X, e.home.Y
	p.ScaleX, p.ScaleY = 1, 1
	p.Rotation = 0
	p.Alpha = 1
	p.Visible = true
}

func (e *Editor) refresh() {
	e.title.Label = e.spec.String()
}

// indexOf returns the position of v in list, or -1. A -1 start makes a
// forward step land on the first element.
func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
