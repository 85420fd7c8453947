// Package screen hosts the demo's single screen: it lays out the node tree,
// maps gestures to the transition controller and the composite player, and
// saves and restores the panel state.
package screen

import (
	"fmt"
	"io"
	"log"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
	"github.com/phanxgames/flubber/internal/transition"
)

// Screen size in pixels.
const (
	Width  = 360
	Height = 640
)

const (
	margin      = 16.0
	buttonSize  = 56.0
	targetSize  = 96.0
	tileHeight  = 32.0
	tileSpacing = 8.0
	tilesTop    = 280.0
	editorBelow = 88.0 // strip kept clear under the editor for the buttons

	// DefaultTick is the largest clock step Advance takes, in milliseconds.
	DefaultTick = 16
)

var (
	colorBackground = flubber.Color{R: 0.93, G: 0.94, B: 0.96, A: 1}
	colorMain       = flubber.Color{R: 1, G: 1, B: 1, A: 1}
	colorTarget     = flubber.Color{R: 0.36, G: 0.42, B: 0.95, A: 1}
	colorTile       = flubber.Color{R: 0.85, G: 0.87, B: 0.92, A: 1}
	colorMask       = flubber.Color{R: 0.98, G: 0.36, B: 0.33, A: 1}
	colorAction     = flubber.Color{R: 0.98, G: 0.36, B: 0.33, A: 1}
	colorPlay       = flubber.Color{R: 0.2, G: 0.7, B: 0.45, A: 1}
)

// Screen is the host of one catalog, one transition controller and the
// nodes they animate.
type Screen struct {
	engine  *flubber.Engine
	catalog *catalog.Catalog
	player  *catalog.Player
	ctrl    *transition.Controller
	log     *log.Logger

	root   *flubber.Node
	main   *flubber.Node
	target *flubber.Node
	tiles  *flubber.Node
	editor *flubber.Node
	mask   *flubber.Node
	play   *flubber.Node
	action *flubber.Node

	// editing is the catalog index the editor was opened from, or -1 when
	// it holds a new spec.
	editing int
	tick    float32
	onTick  []func(now float64)
}

// New lays out a closed screen for cat. Gesture errors raised by clicks are
// written to logger; a nil logger discards them.
func New(engine *flubber.Engine, cat *catalog.Catalog, logger *log.Logger) *Screen {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Screen{
		engine:  engine,
		catalog: cat,
		player:  catalog.NewPlayer(cat, engine),
		log:     logger,
		editing: -1,
		tick:    DefaultTick,
	}

	s.root = flubber.NewRect("screen", Width, Height, colorBackground)

	s.main = flubber.NewRect("main", Width, Height, colorMain)
	s.main.Interactable = true
	s.root.AddChild(s.main)

	s.target = flubber.NewRect("target", targetSize, targetSize, colorTarget)
	s.target.X, s.target.Y = (Width-targetSize)/2, 120
	s.target.Label = "flubber"
	s.main.AddChild(s.target)

	s.tiles = flubber.NewContainer("tiles")
	s.tiles.X, s.tiles.Y = margin, tilesTop
	s.main.AddChild(s.tiles)

	s.editor = flubber.NewRect("editor-container", Width, Height-editorBelow, colorMain)
	s.editor.Visible = false
	s.root.AddChild(s.editor)

	s.mask = flubber.NewRect("mask", Width, Height-editorBelow, colorMask)
	s.mask.Visible = false
	s.root.AddChild(s.mask)

	s.play = s.button("play", margin, colorPlay, func() error {
		_, err := s.Play()
		return err
	})
	s.action = s.button(transition.IconAdd, Width-margin-buttonSize, colorAction, s.Add)
	s.action.Name = "action"

	s.ctrl = transition.New(engine, transition.Views{
		Main:   s.main,
		Editor: s.editor,
		Mask:   s.mask,
		Action: s.action,
	})

	cat.OnChange(s.rebuildTiles)
	s.rebuildTiles()
	return s
}

func (s *Screen) button(icon string, x float64, color flubber.Color, fn func() error) *flubber.Node {
	b := flubber.NewRect(icon, buttonSize, buttonSize, color)
	b.X, b.Y = x, Height-margin-buttonSize
	b.Icon = icon
	b.Interactable = true
	b.OnClick = func() { s.gesture(icon, fn) }
	s.root.AddChild(b)
	return b
}

// gesture runs fn and logs its error. Clicks have no caller to return to.
func (s *Screen) gesture(name string, fn func() error) {
	if err := fn(); err != nil {
		s.log.Printf("%s: %v", name, err)
	}
}

func (s *Screen) rebuildTiles() {
	for s.tiles.NumChildren() > 0 {
		s.tiles.ChildAt(0).Dispose()
	}
	for i, spec := range s.catalog.Specs() {
		tile := flubber.NewRect(fmt.Sprintf("tile-%d", i), Width-2*margin, tileHeight, colorTile)
		tile.Y = float64(i) * (tileHeight + tileSpacing)
		tile.Label = spec.String()
		tile.Interactable = true
		tile.OnClick = func() {
			s.gesture(tile.Name, func() error { return s.SelectTile(i) })
		}
		s.tiles.AddChild(tile)
	}
}

// Root returns the top of the node tree.
func (s *Screen) Root() *flubber.Node { return s.root }

// Target returns the node the catalog plays on.
func (s *Screen) Target() *flubber.Node { return s.target }

// Action returns the primary action button.
func (s *Screen) Action() *flubber.Node { return s.action }

// Tiles returns one node per catalog entry, in catalog order.
func (s *Screen) Tiles() []*flubber.Node { return s.tiles.Children() }

// Engine returns the engine driving the screen.
func (s *Screen) Engine() *flubber.Engine { return s.engine }

// Catalog returns the screen's catalog.
func (s *Screen) Catalog() *catalog.Catalog { return s.catalog }

// Controller returns the panel transition controller.
func (s *Screen) Controller() *transition.Controller { return s.ctrl }

// Add is the primary action. While the panel is open it merges the pending
// spec into the catalog and closes; while closed it opens an editor on the
// default spec. It fails while the panel is closing.
func (s *Screen) Add() error {
	switch s.ctrl.State() {
	case transition.StateClosed:
		s.editing = -1
		return s.ctrl.Open(catalog.DefaultSpec())
	case transition.StateOpen:
		spec, _ := s.ctrl.Pending()
		if err := s.merge(spec); err != nil {
			return err
		}
		s.editing = -1
		return s.ctrl.Close()
	default:
		return fmt.Errorf("add while %s: %w", s.ctrl.State(), transition.ErrInvalidTransition)
	}
}

func (s *Screen) merge(spec catalog.Spec) error {
	if s.editing >= 0 && s.editing < s.catalog.Len() {
		return s.catalog.Replace(s.editing, spec)
	}
	s.catalog.Add(spec)
	return nil
}

// SelectTile opens the editor on catalog entry i. Confirming the editor
// replaces that entry.
func (s *Screen) SelectTile(i int) error {
	if s.ctrl.State() != transition.StateClosed {
		return fmt.Errorf("select tile while %s: %w", s.ctrl.State(), transition.ErrInvalidTransition)
	}
	if i < 0 || i >= s.catalog.Len() {
		return fmt.Errorf("select tile %d of %d: %w", i, s.catalog.Len(), catalog.ErrIndex)
	}
	if err := s.ctrl.Open(s.catalog.At(i)); err != nil {
		return err
	}
	s.editing = i
	return nil
}

// Play previews the pending spec while the panel is open and plays the
// whole catalog on the target otherwise. It returns nil with no error when
// there is nothing to play.
func (s *Screen) Play() (flubber.Animation, error) {
	if ed := s.ctrl.Editor(); ed != nil {
		return ed.Play()
	}
	g, err := s.player.PlayAll(s.target)
	if g == nil {
		return nil, err
	}
	return g, nil
}

// Back closes the open panel and discards the pending spec. handled is
// false when the panel is closed or already closing, leaving the back
// gesture to its default behavior.
func (s *Screen) Back() (handled bool, err error) {
	if s.ctrl.State() != transition.StateOpen {
		return false, nil
	}
	s.editing = -1
	return true, s.ctrl.Close()
}

// SetTick sets the largest clock step Advance takes.
func (s *Screen) SetTick(ms float32) {
	if ms > 0 {
		s.tick = ms
	}
}

// OnTick registers fn to run after every clock step taken by Advance.
func (s *Screen) OnTick(fn func(now float64)) {
	s.onTick = append(s.onTick, fn)
}

// Advance moves the engine clock forward by ms, in steps no larger than
// the tick.
func (s *Screen) Advance(ms float32) {
	for ms > 0 {
		dt := min(ms, s.tick)
		s.engine.Update(dt)
		ms -= dt
		for _, fn := range s.onTick {
			fn(s.engine.Now())
		}
	}
}
