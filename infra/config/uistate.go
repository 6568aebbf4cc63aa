package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UIState holds UI preferences that survive restarts. Social state (posts,
// likes, dialogs) is deliberately not persisted — every session starts from
// the seed.
type UIState struct {
	Page string `yaml:"page,omitempty"` // Last open page
}

// LoadUIState reads preferences from path. A missing file is an empty state,
// not an error.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return UIState{}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := yaml.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes preferences to path, creating parent directories as
// needed.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}
