package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fancybaby404/FitTrack/internal/models"
)

// RoutineStore owns the routines file
type RoutineStore struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewRoutineStore creates a store backed by the file at path
func NewRoutineStore(path string, log *slog.Logger) *RoutineStore {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RoutineStore{path: path, log: log}
}

// Path returns the backing file path
func (s *RoutineStore) Path() string {
	return s.path
}

// LoadAll reads every routine from disk, creating an empty file first if
// none exists. On I/O failure it returns an empty slice and a *StoreError.
// A malformed exercise returns the routines parsed before it together with
// the *models.FormatError.
func (s *RoutineStore) LoadAll() ([]models.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveAll overwrites the backing file with the given routines
func (s *RoutineStore) SaveAll(routines []models.Routine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(routines)
}

// DeleteByName removes every routine named name (exact match) and saves the
// remainder. The input slice is left untouched; the filtered slice is
// returned even when saving fails.
func (s *RoutineStore) DeleteByName(name string, routines []models.Routine) ([]models.Routine, error) {
	kept := make([]models.Routine, 0, len(routines))
	for _, r := range routines {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	kept = models.CloneRoutines(kept)
	s.log.Debug("deleting routines", "name", name, "removed", len(routines)-len(kept))

	if err := s.SaveAll(kept); err != nil {
		return kept, err
	}
	return kept, nil
}

// WithRoutines loads a private copy of the routines, hands it to fn and
// saves what fn returns. Nothing is written when loading or fn fails.
func (s *RoutineStore) WithRoutines(fn func([]models.Routine) ([]models.Routine, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	routines, err := s.load()
	if err != nil {
		return err
	}

	updated, err := fn(routines)
	if err != nil {
		return err
	}
	return s.save(updated)
}

func (s *RoutineStore) load() ([]models.Routine, error) {
	if err := ensureFile(s.path); err != nil {
		s.log.Error("creating routines file", "path", s.path, "error", err)
		return []models.Routine{}, &StoreError{Op: "load", Path: s.path, Err: err}
	}

	f, err := os.Open(s.path)
	if err != nil {
		s.log.Error("opening routines file", "path", s.path, "error", err)
		return []models.Routine{}, &StoreError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	routines, err := models.ParseRoutines(f)
	if err != nil {
		var fe *models.FormatError
		if errors.As(err, &fe) {
			s.log.Warn("malformed routine data", "path", s.path, "line", fe.Line, "error", err)
			return routines, fmt.Errorf("%s: %w", s.path, err)
		}
		return []models.Routine{}, &StoreError{Op: "load", Path: s.path, Err: err}
	}

	s.log.Debug("loaded routines", "path", s.path, "count", len(routines))
	return routines, nil
}

func (s *RoutineStore) save(routines []models.Routine) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.log.Error("creating routines directory", "path", s.path, "error", err)
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}

	data := models.SerializeRoutines(routines)
	if err := os.WriteFile(s.path, []byte(data), 0644); err != nil {
		s.log.Error("writing routines file", "path", s.path, "error", err)
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	s.log.Debug("saved routines", "path", s.path, "count", len(routines))
	return nil
}

// ensureFile creates an empty file (and its directory) if it is missing
func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
