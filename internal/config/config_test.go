package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fittrack.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadMissingFile verifies that a missing config file yields defaults.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout != LayoutCwd {
		t.Errorf("layout = %q, want %q", cfg.Layout, LayoutCwd)
	}
	if cfg.RestDuration() != time.Minute {
		t.Errorf("rest = %v, want 1m", cfg.RestDuration())
	}
	if !cfg.JournalEnabled() {
		t.Error("journal should default to enabled")
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("level = %v, want warn", cfg.SlogLevel())
	}
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	path := writeTemp(t, `
layout: home
data_dir: /srv/fittrack
rest_seconds: 90
journal: false
log_level: DEBUG
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout != LayoutHome {
		t.Errorf("layout = %q, want home", cfg.Layout)
	}
	if cfg.DataDir != "/srv/fittrack" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.RestSeconds != 90 {
		t.Errorf("rest_seconds = %d, want 90", cfg.RestSeconds)
	}
	if cfg.JournalEnabled() {
		t.Error("journal should be disabled")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.SlogLevel())
	}
}

// TestEnvOverride verifies that FITTRACK_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	path := writeTemp(t, "layout: home\nrest_seconds: 90\n")
	t.Setenv("FITTRACK_LAYOUT", "src")
	t.Setenv("FITTRACK_REST_SECONDS", "120")
	t.Setenv("FITTRACK_DATA_DIR", "/tmp/ft")
	t.Setenv("FITTRACK_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout != LayoutSrc {
		t.Errorf("layout = %q, want src", cfg.Layout)
	}
	if cfg.RestSeconds != 120 {
		t.Errorf("rest_seconds = %d, want 120", cfg.RestSeconds)
	}
	if cfg.DataDir != "/tmp/ft" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.SlogLevel() != slog.LevelError {
		t.Errorf("level = %v, want error", cfg.SlogLevel())
	}

	env := cfg.Env(Env{WorkDir: "/w", Layout: "cwd"})
	if env.Layout != LayoutSrc || env.DataDir != "/tmp/ft" {
		t.Errorf("env = %+v", env)
	}
}

// TestValidation verifies that out-of-range values are rejected.
func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad layout", "layout: elsewhere\n"},
		{"rest too short", "rest_seconds: 1\n"},
		{"rest too long", "rest_seconds: 7200\n"},
		{"bad level", "log_level: loud\n"},
		{"bad yaml", "layout: [oops\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
