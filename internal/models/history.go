package models

import (
	"fmt"
	"strings"
	"time"
)

// HistoryDateLayout is the timestamp layout of history lines (yyyy-MM-dd HH:mm:ss)
const HistoryDateLayout = "2006-01-02 15:04:05"

// HistoryEntry is one completed workout in the history log
type HistoryEntry struct {
	Workout   string
	Date      time.Time
	Duration  time.Duration
	Exercises int
}

// String renders the history line. Existing history files carry two spaces
// after "Date:", so the writer keeps them.
func (h HistoryEntry) String() string {
	return fmt.Sprintf("Workout: %s |Date:  %s | Duration: %s | Exercises: %d",
		h.Workout,
		h.Date.Format(HistoryDateLayout),
		FormatClock(h.Duration),
		h.Exercises)
}

// FormatClock formats a duration as HH:MM:SS
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// HistoryFields holds the display fields of a history line
type HistoryFields struct {
	Workout   string
	Date      string
	Duration  string
	Exercises string
}

// SplitHistoryLine splits a history line on "|" for display.
// It returns false for lines with fewer than four fields.
func SplitHistoryLine(line string) (HistoryFields, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 4 {
		return HistoryFields{}, false
	}
	return HistoryFields{
		Workout:   strings.TrimSpace(parts[0]),
		Date:      strings.TrimSpace(parts[1]),
		Duration:  strings.TrimSpace(parts[2]),
		Exercises: strings.TrimSpace(parts[3]),
	}, true
}

// ValidateName rejects names that cannot round-trip through the flat files
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &FormatError{Input: name, Reason: "name is required"}
	}
	if strings.Contains(name, "|") {
		return &FormatError{Input: name, Reason: "name must not contain '|'"}
	}
	if strings.ContainsAny(name, "\r\n") {
		return &FormatError{Input: name, Reason: "name must be a single line"}
	}
	return nil
}
