package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences loaded from fittrack.yaml
type Config struct {
	Layout      string `yaml:"layout"`
	DataDir     string `yaml:"data_dir"`
	RestSeconds int    `yaml:"rest_seconds"`
	Journal     *bool  `yaml:"journal"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	journal := true
	return &Config{
		Layout:      LayoutCwd,
		RestSeconds: 60,
		Journal:     &journal,
		LogLevel:    "warn",
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file yields the defaults. Env vars:
//
//	FITTRACK_DATA_DIR, FITTRACK_LAYOUT,
//	FITTRACK_REST_SECONDS, FITTRACK_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FITTRACK_LAYOUT"); v != "" {
		cfg.Layout = v
	}
	if v := os.Getenv("FITTRACK_REST_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RestSeconds = n
		}
	}
	if v := os.Getenv("FITTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Layout == "" {
		c.Layout = d.Layout
	}
	if c.RestSeconds == 0 {
		c.RestSeconds = d.RestSeconds
	}
	if c.Journal == nil {
		c.Journal = d.Journal
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
}

func (c *Config) validate() error {
	switch c.Layout {
	case LayoutCwd, LayoutSrc, LayoutHome:
	default:
		return fmt.Errorf("layout %q must be one of cwd, src, home", c.Layout)
	}
	if c.RestSeconds < 5 || c.RestSeconds > 3600 {
		return fmt.Errorf("rest_seconds must be between 5 and 3600, got %d", c.RestSeconds)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Env merges the config into the process environment
func (c *Config) Env(base Env) Env {
	base.Layout = c.Layout
	if c.DataDir != "" {
		base.DataDir = c.DataDir
	}
	return base
}

// RestDuration returns the default rest between sets
func (c *Config) RestDuration() time.Duration {
	return time.Duration(c.RestSeconds) * time.Second
}

// JournalEnabled reports whether finished sessions go to the sqlite journal
func (c *Config) JournalEnabled() bool {
	return c.Journal == nil || *c.Journal
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("log_level %q must be one of debug, info, warn, error", s)
	}
}
