package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fancybaby404/FitTrack/internal/models"
)

func TestHistoryAppendReadClear(t *testing.T) {
	h := NewHistoryLog(filepath.Join(t.TempDir(), "workout_history.txt"), nil)

	lines, err := h.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}

	entry := models.HistoryEntry{
		Workout:   "Push",
		Date:      time.Date(2026, 1, 2, 7, 30, 0, 0, time.Local),
		Duration:  45 * time.Minute,
		Exercises: 3,
	}
	if err := h.Append(entry); err != nil {
		t.Fatalf("Append: %v", err)
	}

	lines, err = h.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(lines) != 1 || lines[0] != entry.String() {
		t.Fatalf("lines = %q, want [%q]", lines, entry.String())
	}

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	lines, err = h.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll after clear: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines after clear, want 0", len(lines))
	}
}

func TestHistoryKeepsOrderAndMalformedLines(t *testing.T) {
	h := NewHistoryLog(filepath.Join(t.TempDir(), "workout_history.txt"), nil)

	for _, line := range []string{"first | a | b | c", "not a history line", "third | a | b | c"} {
		if err := h.AppendLine(line); err != nil {
			t.Fatal(err)
		}
	}

	lines, err := h.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first | a | b | c", "not a history line", "third | a | b | c"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHistoryErrors(t *testing.T) {
	h := NewHistoryLog(blockedPath(t), nil)
	var se *StoreError

	if err := h.Append(models.HistoryEntry{Workout: "x"}); !errors.As(err, &se) || se.Op != "append" {
		t.Errorf("Append err = %v", err)
	}
	if err := h.Clear(); !errors.As(err, &se) || se.Op != "clear" {
		t.Errorf("Clear err = %v", err)
	}
	if _, err := h.ReadAll(); !errors.As(err, &se) || se.Op != "read" {
		t.Errorf("ReadAll err = %v", err)
	}
}

func TestStoreErrorMessage(t *testing.T) {
	err := &StoreError{Op: "save", Path: "/tmp/r.txt", Err: os.ErrPermission}
	if got := err.Error(); got != "save /tmp/r.txt: permission denied" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("expected StoreError to unwrap")
	}
}

// TestHistoryAppendCreatesDirectory appends into a data directory that does not exist yet.
func TestHistoryAppendCreatesDirectory(t *testing.T) {
	h := NewHistoryLog(filepath.Join(t.TempDir(), "fresh", "config", "workout_history.txt"), nil)

	if err := h.AppendLine("Workout: Legs |Date:  2026-05-04 18:00:00 | Duration: 00:10:00 | Exercises: 1"); err != nil {
		t.Fatalf("AppendLine on fresh directory: %v", err)
	}

	lines, err := h.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Errorf("lines = %q", lines)
	}
}

// TestHistoryLongLine reads a line longer than the default scanner buffer.
func TestHistoryLongLine(t *testing.T) {
	h := NewHistoryLog(filepath.Join(t.TempDir(), "workout_history.txt"), nil)

	long := "Workout: " + strings.Repeat("x", 70*1024) + " |Date:  2026-05-04 18:00:00 | Duration: 00:10:00 | Exercises: 1"
	for _, line := range []string{long, "Workout: Legs |Date:  2026-05-05 18:00:00 | Duration: 00:20:00 | Exercises: 2"} {
		if err := h.AppendLine(line); err != nil {
			t.Fatal(err)
		}
	}

	lines, err := h.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(lines) != 2 || lines[0] != long {
		t.Errorf("got %d lines", len(lines))
	}
}
