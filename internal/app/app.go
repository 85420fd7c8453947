// Package app runs a screen in an Ebitengine window.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/render"
	"github.com/phanxgames/flubber/internal/screen"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int
	ShowFPS bool
	Logger  *log.Logger // gesture errors; nil uses the standard logger
}

// Key bindings.
var (
	keyAdd  = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyKPEnter, ebiten.KeyA}
	keyPlay = []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}
	keyBack = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}
)

// Game adapts a screen to ebiten.Game.
type Game struct {
	screen   *screen.Screen
	renderer *render.Renderer
	log      *log.Logger
	showFPS  bool
	quit     bool
}

// NewGame returns a game drawing s.
func NewGame(s *screen.Screen, cfg RunConfig) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		screen:   s,
		renderer: render.New(flubber.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}),
		log:      logger,
		showFPS:  cfg.ShowFPS,
	}
}

// Update maps input to gestures and advances the clock by one tick.
func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.screen.Root().Click(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.screen.Root().Click(float64(x), float64(y))
	}

	if g.Gesture(justPressed(keyAdd), justPressed(keyPlay), justPressed(keyBack)) {
		return ebiten.Termination
	}

	g.screen.Advance(float32(1000 / float64(ebiten.TPS())))
	return nil
}

// Gesture applies keyboard gestures and reports whether the app should
// quit, which happens when back is pressed with nothing to close.
func (g *Game) Gesture(add, play, back bool) (quit bool) {
	s := g.screen
	if add {
		g.report("add", s.Add())
	}
	if play {
		_, err := s.Play()
		g.report("play", err)
	}
	if back {
		handled, err := s.Back()
		g.report("back", err)
		if !handled && !s.Controller().IsOpen() {
			g.quit = true
		}
	}
	return g.quit
}

// Draw renders the screen.
func (g *Game) Draw(dst *ebiten.Image) {
	g.renderer.Draw(dst, g.screen.Root())
	if g.showFPS {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}
}

// Layout fixes the logical size to the screen size; the window scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screen.Width, screen.Height
}

// Run opens a window for s and blocks until it is closed.
func Run(s *screen.Screen, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = screen.Width, screen.Height
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(NewGame(s, cfg))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func justPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) report(gesture string, err error) {
	if err != nil {
		g.log.Printf("%s: %v", gesture, err)
	}
}
