package flubber

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

var curves = map[Curve]ease.TweenFunc{
	CurveDefault:    ease.InOutSine,
	CurveLinear:     ease.Linear,
	CurveEaseIn:     ease.InCubic,
	CurveEaseOut:    ease.OutCubic,
	CurveEaseInOut:  ease.InOutCubic,
	CurveSpring:     ease.OutElastic,
	CurveBounce:     ease.OutBounce,
	CurveOvershoot:  ease.OutBack,
	CurveAnticipate: ease.InBack,
}

// Curves returns the names of all registered curves, sorted, without the
// default.
func Curves() []Curve {
	out := make([]Curve, 0, len(curves))
	for c := range curves {
		if c != CurveDefault {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// pulse rises from b to b+c at the midpoint and returns to b.
func pulse(t, b, c, d float32) float32 {
	if d == 0 {
		return b
	}
	p := float64(t / d)
	return b + c*float32(math.Sin(math.Pi*p))
}

// wobble oscillates around b with amplitude c, three full swings, decaying
// linearly to rest.
func wobble(t, b, c, d float32) float32 {
	if d == 0 {
		return b
	}
	p := float64(t / d)
	return b + c*float32(math.Sin(6*math.Pi*p)*(1-p))
}
