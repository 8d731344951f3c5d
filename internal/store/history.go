package store

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fancybaby404/FitTrack/internal/models"
)

// HistoryLog is the append-only workout history file
type HistoryLog struct {
	path string
	log  *slog.Logger
}

// NewHistoryLog creates a log backed by the file at path
func NewHistoryLog(path string, log *slog.Logger) *HistoryLog {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &HistoryLog{path: path, log: log}
}

// Path returns the backing file path
func (h *HistoryLog) Path() string {
	return h.path
}

// Append writes one history line for the entry
func (h *HistoryLog) Append(entry models.HistoryEntry) error {
	return h.AppendLine(entry.String())
}

// AppendLine writes line followed by a newline at the end of the file
func (h *HistoryLog) AppendLine(line string) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		h.log.Error("creating history directory", "path", h.path, "error", err)
		return &StoreError{Op: "append", Path: h.path, Err: err}
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		h.log.Error("opening history file", "path", h.path, "error", err)
		return &StoreError{Op: "append", Path: h.path, Err: err}
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		h.log.Error("writing history file", "path", h.path, "error", err)
		return &StoreError{Op: "append", Path: h.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StoreError{Op: "append", Path: h.path, Err: err}
	}

	h.log.Debug("appended history entry", "path", h.path)
	return nil
}

// ReadAll returns every line of the history file verbatim, oldest first.
// A missing file reads as empty.
func (h *HistoryLog) ReadAll() ([]string, error) {
	lines := []string{}

	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lines, nil
		}
		h.log.Error("opening history file", "path", h.path, "error", err)
		return lines, &StoreError{Op: "read", Path: h.path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return lines, &StoreError{Op: "read", Path: h.path, Err: err}
	}

	h.log.Debug("read history", "path", h.path, "count", len(lines))
	return lines, nil
}

// Clear truncates the history file. It cannot be undone.
func (h *HistoryLog) Clear() error {
	if err := os.WriteFile(h.path, nil, 0644); err != nil {
		h.log.Error("clearing history file", "path", h.path, "error", err)
		return &StoreError{Op: "clear", Path: h.path, Err: err}
	}
	h.log.Info("cleared history", "path", h.path)
	return nil
}
