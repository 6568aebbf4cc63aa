package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application-level configuration.
type Config struct {
	StatePath string // Path to the UI preferences file
	LogPath   string // Debug log file; empty disables logging
}

// Load reads configuration from environment variables.
//
//	SFERA_STATE — path to the UI preferences file (default: ~/.config/sfera/state.yml)
//	SFERA_LOG   — path to a debug log file (default: logging disabled)
func Load() (Config, error) {
	statePath := os.Getenv("SFERA_STATE")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		statePath = filepath.Join(home, ".config", "sfera", "state.yml")
	}

	return Config{
		StatePath: statePath,
		LogPath:   os.Getenv("SFERA_LOG"),
	}, nil
}
