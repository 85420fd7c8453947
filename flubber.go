package flubber

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// FarthestCorner returns the distance from (x, y) to the rectangle corner
// farthest away from it. A circle of that radius centered on (x, y) covers
// the whole rectangle.
func (r Rect) FarthestCorner(x, y float64) float64 {
	corners := [4]Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
	var best float64
	for _, c := range corners {
		if d := math.Hypot(c.X-x, c.Y-y); d > best {
			best = d
		}
	}
	return best
}

// Preset names a built-in animation effect. Presets are plain strings so
// they round-trip through configuration and catalog files unchanged.
type Preset string

const (
	PresetFadeIn     Preset = "fade_in"     // alpha 0 -> 1
	PresetFadeOut    Preset = "fade_out"    // alpha 1 -> 0
	PresetSlideLeft  Preset = "slide_left"  // enters from the right, moving left
	PresetSlideRight Preset = "slide_right" // enters from the left, moving right
	PresetSlideUp    Preset = "slide_up"    // enters from below, moving up
	PresetSlideDown  Preset = "slide_down"  // enters from above, moving down
	PresetZoomIn     Preset = "zoom_in"     // scale 0 -> Scale
	PresetZoomOut    Preset = "zoom_out"    // scale Scale -> 0
	PresetRotation   Preset = "rotation"    // rotates by Angle degrees
	PresetShake      Preset = "shake"       // decaying horizontal oscillation
	PresetPop        Preset = "pop"         // scale pulse up to Scale and back
	PresetFlash      Preset = "flash"       // alpha pulse down to 0 and back
)

// Curve names an interpolation curve. The zero value selects the default
// accelerate-decelerate curve.
type Curve string

const (
	CurveDefault    Curve = ""
	CurveLinear     Curve = "linear"
	CurveEaseIn     Curve = "ease_in"
	CurveEaseOut    Curve = "ease_out"
	CurveEaseInOut  Curve = "ease_in_out"
	CurveSpring     Curve = "spring"
	CurveBounce     Curve = "bounce"
	CurveOvershoot  Curve = "overshoot"
	CurveAnticipate Curve = "anticipate"
)

// Default parameter values applied by Engine.Build when an option is zero.
const (
	DefaultDuration = 400   // milliseconds
	DefaultDistance = 100.0 // pixels, slide and shake presets
	DefaultAngle    = 360.0 // degrees, rotation preset
	DefaultScale    = 1.0   // zoom presets
	DefaultPopScale = 1.2   // pop preset
)
