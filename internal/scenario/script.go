// Package scenario loads and runs scripted operations under progress lines.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned when a script fails validation.
var ErrInvalidScript = errors.New("invalid script")

// MessageKind selects a one-shot status printer.
type MessageKind string

const (
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
	KindWarning MessageKind = "warning"
	KindInfo    MessageKind = "info"
)

// validKinds is a set of valid message kinds for validation.
var validKinds = map[MessageKind]bool{
	KindSuccess: true,
	KindError:   true,
	KindWarning: true,
	KindInfo:    true,
}

// IsValid returns true if the kind is a valid value.
func (k MessageKind) IsValid() bool {
	return validKinds[k]
}

// Script is the top-level structure of a scenario file.
type Script struct {
	Messages   []Message   `yaml:"messages,omitempty"`
	Operations []Operation `yaml:"operations"`
}

// Message is a one-shot status line.
type Message struct {
	Kind        MessageKind `yaml:"kind"`
	Action      string      `yaml:"action"`
	Description string      `yaml:"description"`
	Padding     int         `yaml:"padding,omitempty"`
}

// Operation is one wrapped call. Result is the success display and Fail,
// when set, makes the operation fail after its steps.
type Operation struct {
	Action      string        `yaml:"action"`
	Description string        `yaml:"description"`
	Padding     int           `yaml:"padding,omitempty"`
	Delay       time.Duration `yaml:"delay,omitempty"`
	Bytes       uint64        `yaml:"bytes,omitempty"`
	Result      string        `yaml:"result,omitempty"`
	Fail        string        `yaml:"fail,omitempty"`
	Steps       []Step        `yaml:"steps,omitempty"`
}

// Step is a single progress mutation. Exactly one verb must be set.
type Step struct {
	Set       *int       `yaml:"set,omitempty"`
	Increment *int       `yaml:"increment,omitempty"`
	SetFrom   *SetFrom   `yaml:"set_from,omitempty"`
	Range     *RangeStep `yaml:"range,omitempty"`
	Repeat    int        `yaml:"repeat,omitempty"`
}

// SetFrom maps value within [min, max] to a percentage.
type SetFrom struct {
	Min   int64 `yaml:"min"`
	Max   int64 `yaml:"max"`
	Value int64 `yaml:"value"`
}

// RangeStep calls SetFrom for every value from Min up to and including To.
type RangeStep struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
	To  int64 `yaml:"to"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks the script structure. Range errors inside steps are left
// to the progress itself so they show up as operation failures.
func (s *Script) Validate() error {
	for i, m := range s.Messages {
		if !m.Kind.IsValid() {
			return fmt.Errorf("%w: message %d: unknown kind %q", ErrInvalidScript, i, m.Kind)
		}
		if m.Action == "" {
			return fmt.Errorf("%w: message %d: action is required", ErrInvalidScript, i)
		}
	}
	for i, op := range s.Operations {
		if op.Action == "" {
			return fmt.Errorf("%w: operation %d: action is required", ErrInvalidScript, i)
		}
		if op.Delay < 0 {
			return fmt.Errorf("%w: operation %d: delay must not be negative", ErrInvalidScript, i)
		}
		for j, st := range op.Steps {
			if err := st.validate(); err != nil {
				return fmt.Errorf("%w: operation %d step %d: %v", ErrInvalidScript, i, j, err)
			}
		}
	}
	return nil
}

func (st Step) validate() error {
	verbs := 0
	if st.Set != nil {
		verbs++
	}
	if st.Increment != nil {
		verbs++
	}
	if st.SetFrom != nil {
		verbs++
	}
	if st.Range != nil {
		verbs++
	}
	if verbs != 1 {
		return fmt.Errorf("expected exactly one of set, increment, set_from, range; got %d", verbs)
	}
	if st.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative, got %d", st.Repeat)
	}
	return nil
}

// times returns how often the step runs. Zero repeat means once.
func (st Step) times() int {
	if st.Repeat == 0 {
		return 1
	}
	return st.Repeat
}
