package app

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
	"github.com/phanxgames/flubber/internal/screen"
)

func TestGestureKeys(t *testing.T) {
	var buf bytes.Buffer
	s := screen.New(flubber.NewEngine(), catalog.New(), nil)
	g := NewGame(s, RunConfig{Logger: log.New(&buf, "", 0)})

	if g.Gesture(true, false, false) {
		t.Fatal("add should not quit")
	}
	if !s.Controller().IsOpen() {
		t.Fatal("add should open the editor")
	}

	if g.Gesture(false, false, true) {
		t.Fatal("back while open should close, not quit")
	}
	if g.Gesture(false, false, true) {
		t.Fatal("back while closing should be ignored")
	}
	g.Gesture(true, false, false)
	if !strings.Contains(buf.String(), "add:") {
		t.Errorf("log = %q, want the rejected add", buf.String())
	}

	s.Advance(1000)
	if !g.Gesture(false, false, true) {
		t.Error("back while closed should quit")
	}
}

func TestLayoutIsScreenSize(t *testing.T) {
	g := NewGame(screen.New(flubber.NewEngine(), catalog.New(), nil), RunConfig{})
	w, h := g.Layout(1920, 1080)
	if w != screen.Width || h != screen.Height {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, screen.Width, screen.Height)
	}
}
