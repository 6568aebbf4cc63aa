package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SFERA_STATE", filepath.Join(dir, "state.yml"))
	t.Setenv("SFERA_LOG", filepath.Join(dir, "debug.log"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.StatePath != filepath.Join(dir, "state.yml") {
		t.Fatalf("unexpected state path: %q", cfg.StatePath)
	}
	if cfg.LogPath != filepath.Join(dir, "debug.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath)
	}
}

func TestLoad_DefaultsUnderHome(t *testing.T) {
	t.Setenv("SFERA_STATE", "")
	t.Setenv("SFERA_LOG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !strings.HasSuffix(cfg.StatePath, filepath.Join(".config", "sfera", "state.yml")) {
		t.Fatalf("default state path must live under ~/.config/sfera: %q", cfg.StatePath)
	}
	if cfg.LogPath != "" {
		t.Fatalf("logging must be disabled by default, got %q", cfg.LogPath)
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "state.yml")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file, got %#v", st)
	}

	want := UIState{Page: "messages"}
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := LoadUIState(path); err == nil {
		t.Fatalf("expected parse error for invalid yaml")
	}
}
