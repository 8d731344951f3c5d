package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Layouts for locating the data directory
const (
	LayoutCwd  = "cwd"  // <workdir>/config
	LayoutSrc  = "src"  // like cwd, with a trailing src element stripped
	LayoutHome = "home" // <home>/.fittrack
)

// File names inside the data directory
const (
	RoutinesFileName = "routines.txt"
	HistoryFileName  = "workout_history.txt"
	JournalFileName  = "journal.db"
	ConfigFileName   = "fittrack.yaml"
)

// Env is the part of the process environment that decides where data lives
type Env struct {
	WorkDir string
	HomeDir string
	DataDir string // explicit override, wins over Layout
	Layout  string
}

// Paths holds every file location the app reads or writes
type Paths struct {
	BaseDir      string
	ConfigDir    string
	RoutinesFile string
	HistoryFile  string
	JournalFile  string
}

// EnvFromOS reads the environment of the current process
func EnvFromOS() (Env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Env{}, fmt.Errorf("getting working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Env{
		WorkDir: wd,
		HomeDir: home,
		DataDir: os.Getenv("FITTRACK_DATA_DIR"),
		Layout:  os.Getenv("FITTRACK_LAYOUT"),
	}, nil
}

// Resolve computes the data paths for env. It touches nothing on disk.
func Resolve(env Env) (Paths, error) {
	var base, dir string

	switch {
	case env.DataDir != "":
		base = filepath.Clean(env.DataDir)
		dir = base
	default:
		switch env.Layout {
		case "", LayoutCwd:
			if env.WorkDir == "" {
				return Paths{}, fmt.Errorf("working directory is required for layout %q", LayoutCwd)
			}
			base = filepath.Clean(env.WorkDir)
			dir = filepath.Join(base, "config")
		case LayoutSrc:
			if env.WorkDir == "" {
				return Paths{}, fmt.Errorf("working directory is required for layout %q", LayoutSrc)
			}
			base = filepath.Clean(env.WorkDir)
			if filepath.Base(base) == "src" {
				base = filepath.Dir(base)
			}
			dir = filepath.Join(base, "config")
		case LayoutHome:
			if env.HomeDir == "" {
				return Paths{}, fmt.Errorf("home directory is required for layout %q", LayoutHome)
			}
			base = filepath.Clean(env.HomeDir)
			dir = filepath.Join(base, ".fittrack")
		default:
			return Paths{}, fmt.Errorf("unknown layout %q (use cwd, src or home)", env.Layout)
		}
	}

	return Paths{
		BaseDir:      base,
		ConfigDir:    dir,
		RoutinesFile: filepath.Join(dir, RoutinesFileName),
		HistoryFile:  filepath.Join(dir, HistoryFileName),
		JournalFile:  filepath.Join(dir, JournalFileName),
	}, nil
}

// EnsurePaths creates the config directory and both text files if missing
func EnsurePaths(p Paths) error {
	if err := os.MkdirAll(p.ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	for _, path := range []string{p.RoutinesFile, p.HistoryFile} {
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		f.Close()
	}
	return nil
}
