package screen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/flubber"
)

// Script actions.
const (
	ActionAdd  = "add"
	ActionTile = "tile"
	ActionPlay = "play"
	ActionBack = "back"
	ActionEdit = "edit"
	ActionWait = "wait"
)

// maxSettle bounds the clock time RunScript spends draining animations
// after the last step.
const maxSettle = 60_000

// Step is one gesture in a script. Tile is used by "tile"; Preset, Curve
// and Duration by "edit"; Duration by "wait", as milliseconds to advance.
type Step struct {
	Action   string         `yaml:"action"`
	Tile     int            `yaml:"tile,omitempty"`
	Preset   flubber.Preset `yaml:"preset,omitempty"`
	Curve    flubber.Curve  `yaml:"curve,omitempty"`
	Duration float32        `yaml:"duration,omitempty"`
}

// Script is a recorded gesture session. Tick overrides the clock step.
type Script struct {
	Tick  float32 `yaml:"tick,omitempty"`
	Steps []Step  `yaml:"steps"`
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case ActionAdd, ActionTile, ActionPlay, ActionBack, ActionEdit, ActionWait:
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &sc, nil
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// RunScript performs each step in order. Gestures take effect at the
// current clock time; only "wait" advances the clock. Once the steps are
// done the clock runs until no animation is active. A failing step is
// logged and the script continues; the failures are returned joined.
func (s *Screen) RunScript(sc *Script) error {
	if sc.Tick > 0 {
		s.SetTick(sc.Tick)
	}
	var errs []error
	for i, st := range sc.Steps {
		if err := s.step(st); err != nil {
			err = fmt.Errorf("step %d (%s): %w", i, st.Action, err)
			s.log.Print(err)
			errs = append(errs, err)
		}
	}
	for settled := float32(0); s.engine.Active() > 0 && settled < maxSettle; settled += s.tick {
		s.Advance(s.tick)
	}
	return errors.Join(errs...)
}

func (s *Screen) step(st Step) error {
	switch st.Action {
	case ActionAdd:
		return s.Add()
	case ActionTile:
		return s.SelectTile(st.Tile)
	case ActionPlay:
		_, err := s.Play()
		return err
	case ActionBack:
		_, err := s.Back()
		return err
	case ActionEdit:
		return s.edit(st)
	case ActionWait:
		s.Advance(st.Duration)
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

func (s *Screen) edit(st Step) error {
	ed := s.ctrl.Editor()
	if ed == nil {
		return errors.New("editor is not open")
	}
	spec := ed.Spec()
	if st.Preset != "" {
		if !flubber.IsPreset(st.Preset) {
			return fmt.Errorf("%w: unknown preset %q", flubber.ErrInvalidSpec, st.Preset)
		}
		spec.Preset = st.Preset
	}
	if st.Curve != "" {
		spec.Curve = st.Curve
	}
	if st.Duration > 0 {
		spec.Duration = st.Duration
	}
	ed.SetSpec(spec)
	return nil
}
