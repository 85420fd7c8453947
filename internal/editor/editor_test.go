package editor

import (
	"testing"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
)

func newEditor(spec catalog.Spec) *Editor {
	return New(flubber.NewEngine(), spec, 360, 480)
}

func TestNewShowsSpec(t *testing.T) {
	e := newEditor(catalog.Spec{Preset: flubber.PresetFadeIn, Duration: 300})
	if got := e.Node().Find("editor-title").Label; got != "fade_in 300ms" {
		t.Errorf("title = %q, want fade_in 300ms", got)
	}
	if e.Node().Width != 360 || e.Node().Height != 480 {
		t.Errorf("size = (%v, %v)", e.Node().Width, e.Node().Height)
	}
}

func TestCyclePresetWraps(t *testing.T) {
	presets := flubber.Presets()
	e := newEditor(catalog.Spec{Preset: presets[len(presets)-1]})

	e.CyclePreset(1)
	if e.Spec().Preset != presets[0] {
		t.Errorf("Preset = %q, want %q", e.Spec().Preset, presets[0])
	}
	e.CyclePreset(-1)
	if e.Spec().Preset != presets[len(presets)-1] {
		t.Errorf("Preset = %q, want %q", e.Spec().Preset, presets[len(presets)-1])
	}
}

func TestCycleCurveStartsFromDefault(t *testing.T) {
	e := newEditor(catalog.Spec{Preset: flubber.PresetPop})
	e.CycleCurve(1)
	if e.Spec().Curve != flubber.Curves()[0] {
		t.Errorf("Curve = %q, want %q", e.Spec().Curve, flubber.Curves()[0])
	}
}

func TestAdjustDurationClamps(t *testing.T) {
	e := newEditor(catalog.Spec{Preset: flubber.PresetPop})
	e.AdjustDuration(durationStep)
	if e.Spec().Duration != flubber.DefaultDuration+durationStep {
		t.Errorf("Duration = %v", e.Spec().Duration)
	}
	e.AdjustDuration(-10000)
	if e.Spec().Duration != minDuration {
		t.Errorf("Duration = %v, want %v", e.Spec().Duration, minDuration)
	}
}

func TestButtonsEditSpec(t *testing.T) {
	e := newEditor(catalog.Spec{Preset: flubber.PresetPop, Duration: 200})
	btn := e.Node().Find("editor-+ ms")
	if btn == nil {
		t.Fatal("missing duration button")
	}
	c := btn.Center()
	if !e.Node().Click(c.X, c.Y) {
		t.Fatal("click should hit the button")
	}
	if e.Spec().Duration != 250 {
		t.Errorf("Duration = %v, want 250", e.Spec().Duration)
	}
}

func TestPlayPreviewsOnOwnTarget(t *testing.T) {
	engine := flubber.NewEngine()
	e := New(engine, catalog.Spec{Preset: flubber.PresetFadeIn, Duration: 100}, 360, 480)

	a, err := e.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if a.(*flubber.Tween).Target() != e.Preview() {
		t.Error("preview should animate the preview node")
	}
	engine.Update(100)
	if e.Preview().Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", e.Preview().Alpha)
	}
}

func TestPlayInvalidSpec(t *testing.T) {
	e := newEditor(catalog.Spec{Preset: "teleport"})
	p := e.Preview()
	p.X, p.ScaleX, p.Alpha = 7, 0.5, 0.25
	if _, err := e.Play(); err == nil {
		t.Fatal("expected error")
	}
	if p.X != 7 || p.ScaleX != 0.5 || p.Alpha != 0.25 {
		t.Errorf("preview = (x %v, scale %v, alpha %v), want untouched (7, 0.5, 0.25)", p.X, p.ScaleX, p.Alpha)
	}
}
