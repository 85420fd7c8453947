package render

import (
	"math"
	"testing"

	"github.com/phanxgames/flubber"
)

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func TestQuadTransform(t *testing.T) {
	n := flubber.NewRect("q", 40, 20, flubber.ColorWhite)

	cases := []struct {
		name               string
		scale, rot         float64
		u, v, wantX, wantY float64
	}{
		{"origin", 1, 0, 0, 0, 10, 20},
		{"far corner", 1, 0, 1, 1, 50, 40},
		{"half scale", 0.5, 0, 0, 0, 20, 25},
		{"half turn", 1, math.Pi, 0, 0, 50, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n.ScaleX, n.ScaleY, n.Rotation = tc.scale, tc.scale, tc.rot
			x, y := transformPoint(quadTransform(n, 10, 20), tc.u, tc.v)
			if math.Abs(x-tc.wantX) > 1e-9 || math.Abs(y-tc.wantY) > 1e-9 {
				t.Errorf("(%v, %v) -> (%v, %v), want (%v, %v)", tc.u, tc.v, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestCollectSkipsHiddenAndMultipliesAlpha(t *testing.T) {
	root := flubber.NewContainer("root")
	panel := flubber.NewRect("panel", 100, 100, flubber.ColorWhite)
	panel.Alpha = 0.5
	child := flubber.NewRect("child", 10, 10, flubber.Color{R: 1, A: 0.5})
	hidden := flubber.NewRect("hidden", 10, 10, flubber.ColorWhite)
	hidden.Visible = false
	hidden.AddChild(flubber.NewRect("under-hidden", 10, 10, flubber.ColorWhite))
	root.AddChild(panel)
	panel.AddChild(child)
	root.AddChild(hidden)

	cmds := Collect(root, nil)
	if len(cmds) != 2 {
		t.Fatalf("len = %d, want 2 (containers and hidden nodes emit nothing)", len(cmds))
	}
	if cmds[0].Color.A != 0.5 {
		t.Errorf("panel alpha = %v, want 0.5", cmds[0].Color.A)
	}
	if cmds[1].Color.A != 0.25 {
		t.Errorf("child alpha = %v, want 0.25", cmds[1].Color.A)
	}
}

func TestCollectRevealMask(t *testing.T) {
	mask := flubber.NewRect("mask", 300, 400, flubber.ColorWhite)
	mask.X, mask.Y = 5, 5
	mask.RevealX, mask.RevealY, mask.RevealRadius = 100, 200, 42

	cmds := Collect(mask, nil)
	if len(cmds) != 1 || cmds[0].Kind != CommandReveal {
		t.Fatalf("cmds = %+v, want one reveal", cmds)
	}
	c := cmds[0]
	if c.Radius != 42 || c.CX != 100 || c.CY != 200 {
		t.Errorf("circle = (%v, %v) r=%v", c.CX, c.CY, c.Radius)
	}
	if c.Clip != (flubber.Rect{X: 5, Y: 5, Width: 300, Height: 400}) {
		t.Errorf("Clip = %+v", c.Clip)
	}
}

func TestCollectText(t *testing.T) {
	btn := flubber.NewRect("btn", 56, 56, flubber.ColorWhite)
	btn.Icon = "done"
	btn.Label = "ok"

	cmds := Collect(btn, nil)
	var texts []string
	for _, c := range cmds {
		if c.Kind == CommandText {
			texts = append(texts, c.Text)
		}
	}
	if len(texts) != 2 || texts[0] != "ok" || texts[1] != "OK" {
		t.Errorf("texts = %v, want [ok OK]", texts)
	}

	btn.ScaleX, btn.ScaleY = 0.1, 0.1
	for _, c := range Collect(btn, nil) {
		if c.Kind == CommandText {
			t.Errorf("shrunken node should not draw text, got %q", c.Text)
		}
	}

	btn.ScaleX, btn.ScaleY = 1, 1
	btn.Alpha = 0.2
	for _, c := range Collect(btn, nil) {
		if c.Kind == CommandText {
			t.Errorf("faded node should not draw text, got %q", c.Text)
		}
	}
}

func TestToRGBAPremultiplies(t *testing.T) {
	got := toRGBA(flubber.Color{R: 1, G: 0.5, B: 2, A: 0.5})
	if got.R != 128 || got.G != 64 || got.B != 255 || got.A != 128 {
		t.Errorf("toRGBA = %+v", got)
	}
	if toRGBA(flubber.Color{A: -1}).A != 0 {
		t.Error("negative alpha should clamp to 0")
	}
}
