package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/flubber"
)

const defaultCommandCap = 256

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Renderer draws node trees. It reuses its command buffer across frames.
type Renderer struct {
	ClearColor flubber.Color

	commands []Command
}

// New returns a renderer that clears to clear before drawing.
func New(clear flubber.Color) *Renderer {
	return &Renderer{
		ClearColor: clear,
		commands:   make([]Command, 0, defaultCommandCap),
	}
}

// Commands returns the commands of the last Draw. The returned slice MUST
// NOT be mutated.
func (r *Renderer) Commands() []Command {
	return r.commands
}

// Draw renders the subtree at root onto target.
func (r *Renderer) Draw(target *ebiten.Image, root *flubber.Node) {
	target.Fill(toRGBA(r.ClearColor))
	r.commands = Collect(root, r.commands[:0])

	var op ebiten.DrawImageOptions
	for i := range r.commands {
		cmd := &r.commands[i]
		switch cmd.Kind {
		case CommandRect:
			op.GeoM.Reset()
			op.GeoM.Concat(commandGeoM(cmd.Transform))
			op.ColorScale.Reset()
			a := float32(cmd.Color.A)
			op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
			target.DrawImage(ensureWhitePixel(), &op)
		case CommandReveal:
			clip := image.Rect(int(cmd.Clip.X), int(cmd.Clip.Y),
				int(cmd.Clip.X+cmd.Clip.Width), int(cmd.Clip.Y+cmd.Clip.Height))
			sub := target.SubImage(clip).(*ebiten.Image)
			vector.DrawFilledCircle(sub, float32(cmd.CX), float32(cmd.CY), float32(cmd.Radius), toRGBA(cmd.Color), true)
		case CommandText:
			ebitenutil.DebugPrintAt(target, cmd.Text, int(cmd.X), int(cmd.Y))
		}
	}
}

// commandGeoM converts an affine matrix to an ebiten.GeoM.
func commandGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// toRGBA converts a straight-alpha color to premultiplied color.RGBA.
func toRGBA(c flubber.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R * c.A), G: clamp(c.G * c.A), B: clamp(c.B * c.A), A: clamp(c.A)}
}
