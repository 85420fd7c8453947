package flubber

import (
	"errors"
	"fmt"
)

// RevealProvider grows or collapses a circular reveal on Mask, centered on
// Origin, until it covers the animation target. Showing makes the mask
// visible at radius zero and reveals the target at the end; hiding shrinks
// the mask back to the origin and hides both the mask and the target.
type RevealProvider struct {
	Origin *Node
	Mask   *Node
	Show   bool
}

// Reveal returns a RevealProvider.
func Reveal(origin, mask *Node, show bool) RevealProvider {
	return RevealProvider{Origin: origin, Mask: mask, Show: show}
}

func (r RevealProvider) String() string {
	if r.Show {
		return "reveal"
	}
	return "unreveal"
}

// Effect implements Provider.
func (r RevealProvider) Effect(o Options) (Effect, error) {
	if r.Origin == nil || r.Mask == nil {
		return Effect{}, errors.New("reveal needs an origin and a mask")
	}
	target, mask := o.Target, r.Mask
	c := r.Origin.Center()
	radius := target.Bounds().FarthestCorner(c.X, c.Y)

	from, to := 0.0, radius
	if !r.Show {
		from, to = radius, 0
	}
	eff := Effect{
		Tracks: []Track{{Field: &mask.RevealRadius, From: from, To: to}},
		OnBegin: func() {
			mask.Visible = true
			mask.Alpha = 1
			mask.RevealX, mask.RevealY = c.X, c.Y
			mask.RevealRadius = from
		},
	}
	if r.Show {
		eff.OnEnd = func() { target.Visible = true }
	} else {
		eff.OnEnd = func() {
			mask.Visible = false
			target.Visible = false
		}
	}
	return eff, nil
}

// IconMorphProvider shrinks the target to nothing, swaps its icon at the
// midpoint and grows it back.
type IconMorphProvider struct {
	Icon string
}

// IconMorph returns an IconMorphProvider switching to icon.
func IconMorph(icon string) IconMorphProvider {
	return IconMorphProvider{Icon: icon}
}

func (m IconMorphProvider) String() string {
	return fmt.Sprintf("morph:%s", m.Icon)
}

// Effect implements Provider.
func (m IconMorphProvider) Effect(o Options) (Effect, error) {
	if m.Icon == "" {
		return Effect{}, errors.New("icon morph needs an icon")
	}
	n := o.Target
	sx, sy := n.ScaleX, n.ScaleY
	swapped := false
	swap := func() {
		if !swapped {
			swapped = true
			n.Icon = m.Icon
		}
	}
	return Effect{
		Tracks: []Track{
			{Field: &n.ScaleX, From: sx, To: 0, Ease: pulse},
			{Field: &n.ScaleY, From: sy, To: 0, Ease: pulse},
		},
		OnProgress: func(p float64) {
			if p >= 0.5 {
				swap()
			}
		},
		OnEnd: func() {
			swap()
			n.ScaleX, n.ScaleY = sx, sy
		},
	}, nil
}
