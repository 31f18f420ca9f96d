package batch

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"toy-scene-renderer/internal/scene"
)

// Step holds a set of keys for a stretch of simulated time.
// A zero Duration lasts exactly one frame.
type Step struct {
	Duration float64  `json:"duration" yaml:"duration"`
	Hold     []string `json:"hold" yaml:"hold"`
	// Cursor places the pointer (window pixels) for the whole step.
	Cursor []float64 `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	// Set assigns tweak-bar values at the start of the step, keyed "Group/Name".
	Set map[string]float64 `json:"set,omitempty" yaml:"set,omitempty"`

	keys []scene.Key
}

// Script is an input timeline replayed against a scene.
type Script struct {
	Steps []Step `json:"steps" yaml:"steps"`
}

// LoadScript reads a YAML (or JSON) script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML or JSON script and validates key names.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("batch: parse script: %w", err)
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewScript assembles a script from steps built in code.
func NewScript(steps ...Step) *Script {
	return &Script{Steps: steps}
}

// Hold returns a step holding keys for duration seconds.
func Hold(duration float64, keys ...scene.Key) Step {
	st := Step{Duration: duration, keys: keys}
	for _, k := range keys {
		st.Hold = append(st.Hold, k.String())
	}
	return st
}

func (s *Script) compile() error {
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Duration < 0 {
			return fmt.Errorf("batch: step %d: negative duration %v", i, st.Duration)
		}
		if len(st.Cursor) != 0 && len(st.Cursor) != 2 {
			return fmt.Errorf("batch: step %d: cursor needs [x, y]", i)
		}
		st.keys = st.keys[:0]
		for _, name := range st.Hold {
			k, err := scene.ParseKey(name)
			if err != nil {
				return fmt.Errorf("batch: step %d: %w", i, err)
			}
			st.keys = append(st.keys, k)
		}
	}
	return nil
}

// Duration is the total scripted time in seconds at the given frame step.
func (s *Script) Duration(dt float64) float64 {
	total := 0.0
	for _, st := range s.Steps {
		total += max(st.Duration, dt)
	}
	return total
}

// apply assigns the step's tweak values to the scene's bar.
func (st *Step) apply(sc scene.Scene) error {
	for key, val := range st.Set {
		group, name, ok := strings.Cut(key, "/")
		if !ok {
			return fmt.Errorf("batch: set %q: want Group/Name", key)
		}
		v, found := sc.Bar().Find(group, name)
		if !found {
			return fmt.Errorf("batch: set %q: no such variable", key)
		}
		if v.ReadOnly {
			return fmt.Errorf("batch: set %q: read-only", key)
		}
		v.Set(val)
	}
	return nil
}
