// Package catalog holds the ordered list of user-chosen animations and the
// player that runs them all at once.
package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/phanxgames/flubber"
)

// ErrIndex is returned by Replace for a position outside the catalog.
var ErrIndex = errors.New("catalog index out of range")

// Catalog is an ordered sequence of specs. Insertion order is composition
// order; duplicates are allowed and entries have no identity beyond their
// position. Entries are not validated on insertion.
type Catalog struct {
	specs    []Spec
	onChange []func()
}

// New returns a catalog holding specs in order.
func New(specs ...Spec) *Catalog {
	c := &Catalog{}
	c.specs = append(c.specs, specs...)
	return c
}

// Add appends spec.
func (c *Catalog) Add(spec Spec) {
	c.specs = append(c.specs, spec)
	c.changed()
}

// Replace overwrites the entry at index i.
func (c *Catalog) Replace(i int, spec Spec) error {
	if i < 0 || i >= len(c.specs) {
		return fmt.Errorf("replace %d of %d: %w", i, len(c.specs), ErrIndex)
	}
	c.specs[i] = spec
	c.changed()
	return nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// At returns the entry at index i.
func (c *Catalog) At(i int) Spec {
	return c.specs[i]
}

// Specs returns a copy of the entries.
func (c *Catalog) Specs() []Spec {
	out := make([]Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// OnChange registers fn to run after every Add or Replace.
func (c *Catalog) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

func (c *Catalog) changed() {
	for _, fn := range c.onChange {
		fn()
	}
}

// ListForTarget materializes one fresh, unstarted animation per entry, bound
// to target. Handles are never reused between calls. The first entry that
// cannot be built aborts the listing with an error wrapping
// flubber.ErrInvalidSpec.
func (c *Catalog) ListForTarget(engine *flubber.Engine, target *flubber.Node) ([]flubber.Animation, error) {
	out := make([]flubber.Animation, 0, len(c.specs))
	for i, spec := range c.specs {
		a, err := engine.Build(spec.Options(target))
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Validate reports every entry that names an unknown preset or curve.
func (c *Catalog) Validate() error {
	var errs []error
	probe := flubber.NewEngine()
	target := flubber.NewContainer("probe")
	for i, spec := range c.specs {
		if _, err := probe.Build(spec.Options(target)); err != nil {
			errs = append(errs, fmt.Errorf("catalog entry %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func formatMillis(ms float32) string {
	return strconv.FormatFloat(float64(ms), 'f', -1, 32) + "ms"
}
