package catalog

import "github.com/phanxgames/flubber"

// Spec is one user-chosen animation: a preset plus optional parameters.
// Zero parameters fall back to the engine defaults. Spec is a value type;
// editing produces a new Spec.
type Spec struct {
	Preset   flubber.Preset `yaml:"preset"`
	Duration float32        `yaml:"duration,omitempty"` // milliseconds
	Delay    float32        `yaml:"delay,omitempty"`    // milliseconds
	Repeat   int            `yaml:"repeat,omitempty"`
	Curve    flubber.Curve  `yaml:"curve,omitempty"`
	Distance float64        `yaml:"distance,omitempty"`
	Angle    float64        `yaml:"angle,omitempty"`
	Scale    float64        `yaml:"scale,omitempty"`
}

// DefaultSpec is the spec a fresh editor starts from.
func DefaultSpec() Spec {
	return Spec{
		Preset:   flubber.PresetPop,
		Duration: flubber.DefaultDuration,
		Curve:    flubber.CurveSpring,
	}
}

// Options binds the spec to target.
func (s Spec) Options(target *flubber.Node) flubber.Options {
	return flubber.Options{
		Preset:   s.Preset,
		Target:   target,
		Duration: s.Duration,
		Delay:    s.Delay,
		Repeat:   s.Repeat,
		Curve:    s.Curve,
		Distance: s.Distance,
		Angle:    s.Angle,
		Scale:    s.Scale,
	}
}

// String returns a short label such as "pop 400ms spring".
func (s Spec) String() string {
	label := string(s.Preset)
	d := s.Duration
	if d == 0 {
		d = flubber.DefaultDuration
	}
	label += " " + formatMillis(d)
	if s.Curve != flubber.CurveDefault {
		label += " " + string(s.Curve)
	}
	return label
}
