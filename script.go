package yuletide

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action   string  `yaml:"action"`
	Label    string  `yaml:"label,omitempty"`
	Category string  `yaml:"category,omitempty"`
	Value    float64 `yaml:"value,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
}

// scriptDoc is the top-level YAML structure of a script.
type scriptDoc struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptTarget receives the actions a Script performs.
type ScriptTarget interface {
	SetSpeed(v float64)
	SetVisible(c Category, visible bool)
	Screenshot(label string)
}

// Script sequences speed changes, visibility toggles and screenshots across
// frames for unattended runs. Call Step once per frame.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	quit      bool
}

// LoadScript parses and validates a YAML script.
func LoadScript(data []byte) (*Script, error) {
	var doc scriptDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "show", "hide":
			if _, ok := ParseCategory(st.Category); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown category %q", i, st.Category)
			}
		case "speed", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool { return s.done }

// Quit reports whether a quit step has been reached.
func (s *Script) Quit() bool { return s.quit }

// Step advances the script by one frame.
func (s *Script) Step(t ScriptTarget) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "speed":
		t.SetSpeed(st.Value)
	case "show", "hide":
		c, _ := ParseCategory(st.Category)
		t.SetVisible(c, st.Action == "show")
	case "screenshot":
		t.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		s.quit = true
		s.done = true
		return
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
