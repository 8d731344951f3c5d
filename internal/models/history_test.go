package models

import (
	"errors"
	"testing"
	"time"
)

func TestHistoryEntryString(t *testing.T) {
	h := HistoryEntry{
		Workout:   "Push",
		Date:      time.Date(2026, 3, 14, 18, 5, 9, 0, time.Local),
		Duration:  time.Hour + 2*time.Minute + 3*time.Second,
		Exercises: 4,
	}

	want := "Workout: Push |Date:  2026-03-14 18:05:09 | Duration: 01:02:03 | Exercises: 4"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Minute, "01:01:00"},
		{100*time.Hour + 1500*time.Millisecond, "100:00:01"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSplitHistoryLine(t *testing.T) {
	f, ok := SplitHistoryLine("Workout: Push |Date:  2026-03-14 18:05:09 | Duration: 01:02:03 | Exercises: 4")
	if !ok {
		t.Fatal("expected line to split")
	}
	if f.Workout != "Workout: Push" || f.Date != "Date:  2026-03-14 18:05:09" || f.Duration != "Duration: 01:02:03" || f.Exercises != "Exercises: 4" {
		t.Errorf("fields = %+v", f)
	}

	if _, ok := SplitHistoryLine("Workout: Push | broken"); ok {
		t.Error("expected short line to be rejected")
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"Push Day", "5x5 Stronglifts"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v", name, err)
		}
	}
	for _, name := range []string{"", "   ", "a|b", "a||b", "two\nlines"} {
		var fe *FormatError
		if err := ValidateName(name); !errors.As(err, &fe) {
			t.Errorf("ValidateName(%q) = %v, want *FormatError", name, err)
		}
	}
}
