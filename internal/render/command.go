// Package render draws a flubber node tree with Ebitengine.
//
// Drawing is split in two passes: Collect walks the tree and emits draw
// commands, and Renderer.Draw submits them to an image. Collect does not
// touch the GPU.
package render

import (
	"math"

	"github.com/phanxgames/flubber"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
	textInset   = 6

	// Text is skipped below these so fading and shrinking nodes lose their
	// labels before they disappear.
	minTextAlpha = 0.5
	minTextScale = 0.3
)

// CommandKind identifies the kind of draw command.
type CommandKind uint8

const (
	CommandRect   CommandKind = iota // filled quad
	CommandReveal                    // filled circle clipped to a rectangle
	CommandText                      // debug-font text
)

// Command is a single draw instruction emitted during traversal. Color
// alpha already includes the inherited alpha.
type Command struct {
	Kind      CommandKind
	Transform [6]float64 // CommandRect: maps the unit square to the screen
	Clip      flubber.Rect
	CX, CY    float64 // CommandReveal circle center
	Radius    float64
	Color     flubber.Color
	Text      string
	X, Y      float64 // CommandText origin
}

var iconGlyphs = map[string]string{
	"add":  "+",
	"done": "OK",
	"play": ">",
}

// Collect appends the draw commands for the subtree at root to buf in
// painter order. Invisible and disposed subtrees are skipped.
func Collect(root *flubber.Node, buf []Command) []Command {
	return collect(root, 1, buf)
}

func collect(n *flubber.Node, parentAlpha float64, buf []Command) []Command {
	if !n.Visible || n.IsDisposed() {
		return buf
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return buf
	}

	b := n.Bounds()
	if n.Width > 0 && n.Height > 0 {
		c := n.Color
		c.A *= alpha
		if n.RevealRadius >= 0 {
			buf = append(buf, Command{
				Kind:   CommandReveal,
				Clip:   b,
				CX:     n.RevealX,
				CY:     n.RevealY,
				Radius: n.RevealRadius,
				Color:  c,
			})
		} else {
			buf = append(buf, Command{
				Kind:      CommandRect,
				Transform: quadTransform(n, b.X, b.Y),
				Color:     c,
			})
		}
	}

	if alpha >= minTextAlpha && math.Min(math.Abs(n.ScaleX), math.Abs(n.ScaleY)) >= minTextScale {
		buf = appendText(n, b, buf)
	}

	for _, child := range n.Children() {
		buf = collect(child, alpha, buf)
	}
	return buf
}

func appendText(n *flubber.Node, b flubber.Rect, buf []Command) []Command {
	if n.Label != "" {
		y := b.Y
		if b.Height > glyphHeight {
			y += (b.Height - glyphHeight) / 2
		}
		x := b.X
		if b.Width > 0 {
			x += textInset
		}
		buf = append(buf, Command{Kind: CommandText, Text: n.Label, X: x, Y: y})
	}
	if glyph, ok := iconGlyphs[n.Icon]; ok {
		c := b.Center()
		buf = append(buf, Command{
			Kind: CommandText,
			Text: glyph,
			X:    c.X - float64(len(glyph)*glyphWidth)/2,
			Y:    c.Y - glyphHeight/2,
		})
	}
	return buf
}

// quadTransform returns the affine matrix [a, b, c, d, tx, ty] mapping the
// unit square onto the node's rectangle at world position (x, y). Scale and
// rotation pivot on the rectangle's center and are not inherited.
//
//	Scale(W, H) -> Translate(-W/2, -H/2) -> Scale -> Rotate -> Translate(x+W/2, y+H/2)
func quadTransform(n *flubber.Node, x, y float64) [6]float64 {
	w, h := n.Width, n.Height
	sx, sy := n.ScaleX*w, n.ScaleY*h
	sin, cos := math.Sincos(n.Rotation)

	// After Scale(W, H), Translate(-pivot) and Scale:
	preTx := -w / 2 * n.ScaleX
	preTy := -h / 2 * n.ScaleY

	// After Rotate:
	a := cos * sx
	b := sin * sx
	c := -sin * sy
	d := cos * sy
	tx := cos*preTx - sin*preTy
	ty := sin*preTx + cos*preTy

	return [6]float64{a, b, c, d, tx + x + w/2, ty + y + h/2}
}
