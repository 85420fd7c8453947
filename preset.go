package flubber

import (
	"math"
	"sort"
)

var presets = map[Preset]ProviderFunc{
	PresetFadeIn: func(o Options) (Effect, error) {
		n := o.Target
		return Effect{
			Tracks:  []Track{{Field: &n.Alpha, From: 0, To: 1}},
			OnBegin: func() { n.Visible = true },
		}, nil
	},
	PresetFadeOut: func(o Options) (Effect, error) {
		n := o.Target
		return Effect{Tracks: []Track{{Field: &n.Alpha, From: 1, To: 0}}}, nil
	},
	PresetSlideLeft: func(o Options) (Effect, error) {
		n, r := o.Target, o.Target.restPose()
		return rested(n, r, Effect{Tracks: []Track{{Field: &n.X, From: r.X + o.Distance, To: r.X}}}), nil
	},
	PresetSlideRight: func(o Options) (Effect, error) {
		n, r := o.Target, o.Target.restPose()
		return rested(n, r, Effect{Tracks: []Track{{Field: &n.X, From: r.X - o.Distance, To: r.X}}}), nil
	},
	PresetSlideUp: func(o Options) (Effect, error) {
		n, r := o.Target, o.Target.restPose()
		return rested(n, r, Effect{Tracks: []Track{{Field: &n.Y, From: r.Y + o.Distance, To: r.Y}}}), nil
	},
	PresetSlideDown: func(o Options) (Effect, error) {
		n, r := o.Target, o.Target.restPose()
		return rested(n, r, Effect{Tracks: []Track{{Field: &n.Y, From: r.Y - o.Distance, To: r.Y}}}), nil
	},
	PresetZoomIn: func(o Options) (Effect, error) {
		n := o.Target
		return Effect{Tracks: []Track{
			{Field: &n.ScaleX, From: 0, To: o.Scale},
			{Field: &n.ScaleY, From: 0, To: o.Scale},
		}}, nil
	},
	PresetZoomOut: func(o Options) (Effect, error) {
		n := o.Target
		return Effect{Tracks: []Track{
			{Field: &n.ScaleX, From: o.Scale, To: 0},
			{Field: &n.ScaleY, From: o.Scale, To: 0},
		}}, nil
	},
	PresetRotation: func(o Options) (Effect, error) {
		n := o.Target
		return Effect{Tracks: []Track{
			{Field: &n.Rotation, From: n.Rotation, To: n.Rotation + o.Angle*math.Pi/180},
		}}, nil
	},
	PresetShake: func(o Options) (Effect, error) {
		n, r := o.Target, o.Target.restPose()
		return rested(n, r, Effect{
			Tracks: []Track{{Field: &n.X, From: r.X, To: r.X + o.Distance, Ease: wobble}},
			OnEnd:  func() { n.X = r.X },
		}), nil
	},
	PresetPop: func(o Options) (Effect, error) {
		n, r := o.Target, o.Target.restPose()
		return rested(n, r, Effect{
			Tracks: []Track{
				{Field: &n.ScaleX, From: r.ScaleX, To: r.ScaleX * o.Scale, Ease: pulse},
				{Field: &n.ScaleY, From: r.ScaleY, To: r.ScaleY * o.Scale, Ease: pulse},
			},
			OnEnd: func() { n.ScaleX, n.ScaleY = r.ScaleX, r.ScaleY },
		}), nil
	},
	PresetFlash: func(o Options) (Effect, error) {
		n := o.Target
		return Effect{
			Tracks: []Track{{Field: &n.Alpha, From: 1, To: 0, Ease: pulse}},
			OnEnd:  func() { n.Alpha = 1 },
		}, nil
	},
}

// rested makes eff hold r on n while it runs, so animations started on top
// of it measure from r instead of a mid-flight value.
func rested(n *Node, r pose, eff Effect) Effect {
	end := eff.OnEnd
	eff.OnBegin = func() { n.hold(r) }
	eff.OnEnd = func() {
		if end != nil {
			end()
		}
		n.release()
	}
	return eff
}

// Presets returns the names of all built-in presets, sorted.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPreset reports whether p names a built-in preset.
func IsPreset(p Preset) bool {
	_, ok := presets[p]
	return ok
}
