package screen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/flubber/internal/catalog"
	"github.com/phanxgames/flubber/internal/transition"
)

// Bundle keys.
const (
	KeyEditorVisibility = "EditorVisibility"
	KeyEditorSpec       = "EditorSpec"
	KeyEditorIndex      = "EditorIndex"
)

// Visibility values stored under KeyEditorVisibility. Only
// VisibilityVisible restores an open panel.
const (
	VisibilityVisible   = 0
	VisibilityInvisible = 4
	VisibilityGone      = 8
)

// Bundle is the saved state of a screen, kept across re-creation.
type Bundle struct {
	Ints  map[string]int          `yaml:"ints,omitempty"`
	Specs map[string]catalog.Spec `yaml:"specs,omitempty"`
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{Ints: map[string]int{}, Specs: map[string]catalog.Spec{}}
}

// PutInt stores v under key.
func (b *Bundle) PutInt(key string, v int) {
	if b.Ints == nil {
		b.Ints = map[string]int{}
	}
	b.Ints[key] = v
}

// Int returns the value under key, or def when absent.
func (b *Bundle) Int(key string, def int) int {
	if v, ok := b.Ints[key]; ok {
		return v
	}
	return def
}

// PutSpec stores spec under key.
func (b *Bundle) PutSpec(key string, spec catalog.Spec) {
	if b.Specs == nil {
		b.Specs = map[string]catalog.Spec{}
	}
	b.Specs[key] = spec
}

// Spec returns the spec under key.
func (b *Bundle) Spec(key string) (catalog.Spec, bool) {
	spec, ok := b.Specs[key]
	return spec, ok
}

// Remove deletes key from the bundle.
func (b *Bundle) Remove(key string) {
	delete(b.Ints, key)
	delete(b.Specs, key)
}

// LoadBundle reads a bundle from a YAML file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := NewBundle()
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse state %s: %w", path, err)
	}
	return b, nil
}

// Save writes b to path as YAML.
func (b *Bundle) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveState records the coarse panel state and, while open, the pending
// spec and the tile it was opened from.
func (s *Screen) SaveState(b *Bundle) {
	b.PutInt(KeyEditorVisibility, Visibility(s.ctrl.State()))
	spec, ok := s.ctrl.Pending()
	if !ok {
		b.Remove(KeyEditorSpec)
		b.Remove(KeyEditorIndex)
		return
	}
	b.PutSpec(KeyEditorSpec, spec)
	b.PutInt(KeyEditorIndex, s.editing)
}

// RestoreState puts the screen into the state recorded in b without
// animating. A bundle with no visibility entry restores a closed panel.
func (s *Screen) RestoreState(b *Bundle) {
	open := b.Int(KeyEditorVisibility, VisibilityGone) == VisibilityVisible
	s.editing = -1
	if !open {
		s.ctrl.Restore(false, catalog.Spec{})
		return
	}

	spec, ok := b.Spec(KeyEditorSpec)
	if !ok {
		spec = catalog.DefaultSpec()
	}
	if i := b.Int(KeyEditorIndex, -1); i >= 0 && i < s.catalog.Len() {
		s.editing = i
	}
	s.ctrl.Restore(true, spec)
}

// Visibility returns the visibility value for state.
func Visibility(state transition.State) int {
	if state.IsOpen() {
		return VisibilityVisible
	}
	return VisibilityGone
}
