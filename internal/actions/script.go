package actions

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resumeforge/internal/schemas"
	"gopkg.in/yaml.v3"
)

// Script is a replayable list of form actions. JSON is accepted as well as YAML.
type Script struct {
	Layout  string   `yaml:"layout,omitempty"`
	Actions []Action `yaml:"actions"`
}

// ScriptError reports which action of a script failed.
type ScriptError struct {
	Index  int
	Action Action
	Cause  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("action %d (%s): %v", e.Index+1, e.Action, e.Cause)
}

func (e *ScriptError) Unwrap() error {
	return e.Cause
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("invalid script %s: %w", path, err)
	}
	return script, nil
}

// ParseScript decodes data and checks it against the script schema before
// mapping it onto Script.
func ParseScript(data []byte) (*Script, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := schemas.ValidateDocument(schemas.ScriptSchema, doc); err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &script, nil
}

// Run applies actions in order and stops at the first failure.
func (s *Session) Run(ctx context.Context, actions []Action) error {
	for i, a := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := s.Apply(ctx, a)
		if err != nil {
			return &ScriptError{Index: i, Action: a, Cause: err}
		}
		s.Log.Debug("action applied", "index", i+1, "result", msg)
	}
	return nil
}
