package flubber

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Options is the full configuration of a single animation. It replaces a
// fluent builder: fill in the fields and pass the record to Engine.Build.
type Options struct {
	// Preset selects a built-in effect. Ignored when Provider is set.
	Preset Preset
	// Provider supplies a custom effect.
	Provider Provider
	// Target is the node the animation writes to. Required.
	Target *Node

	Duration float32 // milliseconds per cycle; zero selects DefaultDuration
	Delay    float32 // milliseconds before the first cycle
	Repeat   int     // extra cycles after the first
	Curve    Curve

	Distance float64 // pixels; slide and shake presets
	Angle    float64 // degrees; rotation preset
	Scale    float64 // zoom and pop presets

	// AutoStart starts the animation before Build returns.
	AutoStart bool
	// Name labels the animation in traces. Defaults to "preset(target)".
	Name string
}

// resolve validates o and fills defaults. The returned ease function is
// the one selected by o.Curve.
func (o Options) resolve() (Options, ease.TweenFunc, error) {
	if o.Target == nil {
		return o, nil, fmt.Errorf("%w: %s: no target", ErrInvalidSpec, o.displayName())
	}
	if o.Provider == nil {
		if _, ok := presets[o.Preset]; !ok {
			return o, nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidSpec, o.Preset)
		}
	}
	fn, ok := curves[o.Curve]
	if !ok {
		return o, nil, fmt.Errorf("%w: unknown curve %q", ErrInvalidSpec, o.Curve)
	}
	if o.Duration < 0 {
		return o, nil, fmt.Errorf("%w: %s: negative duration %v", ErrInvalidSpec, o.displayName(), o.Duration)
	}
	if o.Delay < 0 {
		return o, nil, fmt.Errorf("%w: %s: negative delay %v", ErrInvalidSpec, o.displayName(), o.Delay)
	}
	if o.Repeat < 0 {
		return o, nil, fmt.Errorf("%w: %s: negative repeat %d", ErrInvalidSpec, o.displayName(), o.Repeat)
	}
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.Distance == 0 {
		o.Distance = DefaultDistance
	}
	if o.Angle == 0 {
		o.Angle = DefaultAngle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
		if o.Preset == PresetPop {
			o.Scale = DefaultPopScale
		}
	}
	if o.Name == "" {
		o.Name = o.displayName()
	}
	return o, fn, nil
}

func (o Options) displayName() string {
	if o.Name != "" {
		return o.Name
	}
	effect := string(o.Preset)
	if o.Provider != nil {
		effect = fmt.Sprint(o.Provider)
	}
	if o.Target == nil {
		return effect
	}
	return effect + "(" + o.Target.Name + ")"
}
