package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Delimiter separates serialized fields. It is not escaped inside names.
const Delimiter = "||"

// Exercise represents one movement inside a routine
type Exercise struct {
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"` // kilograms
	Reps          int     `json:"reps"`
	Sets          int     `json:"sets"`           // target sets
	CompletedSets int     `json:"completed_sets"` // live progress, 0..Sets
}

// NewExercise creates an exercise with no completed sets
func NewExercise(name string, weight float64, reps, sets int) Exercise {
	return Exercise{
		Name:   name,
		Weight: weight,
		Reps:   reps,
		Sets:   sets,
	}
}

// IncrementCompletedSets adds a completed set, stopping at Sets
func (e *Exercise) IncrementCompletedSets() {
	if e.CompletedSets < e.Sets {
		e.CompletedSets++
	}
}

// DecrementCompletedSets removes a completed set, stopping at 0
func (e *Exercise) DecrementCompletedSets() {
	if e.CompletedSets > 0 {
		e.CompletedSets--
	}
}

// SetCompletedSets stores n clamped into [0, Sets]
func (e *Exercise) SetCompletedSets(n int) {
	switch {
	case n < 0:
		n = 0
	case n > e.Sets:
		n = e.Sets
	}
	e.CompletedSets = n
}

// IsDone reports whether every target set has been completed
func (e Exercise) IsDone() bool {
	return e.CompletedSets >= e.Sets
}

// String serializes the exercise as name||weight||reps||sets||completedSets
func (e Exercise) String() string {
	return fmt.Sprintf("%s||%.2f||%d||%d||%d", e.Name, e.Weight, e.Reps, e.Sets, e.CompletedSets)
}

// ParseExercise parses the serialized form produced by String.
// Only the first four fields are read; progress always starts at zero.
func ParseExercise(s string) (Exercise, error) {
	parts := splitFields(s)
	if len(parts) < 4 {
		return Exercise{}, &FormatError{Input: s, Reason: fmt.Sprintf("expected at least 4 fields, got %d", len(parts))}
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Exercise{}, &FormatError{Input: s, Reason: "invalid weight", Err: err}
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Exercise{}, &FormatError{Input: s, Reason: "invalid weight"}
	}

	reps, err := parseCount(parts[2])
	if err != nil {
		return Exercise{}, &FormatError{Input: s, Reason: "invalid reps", Err: err}
	}

	sets, err := parseCount(parts[3])
	if err != nil {
		return Exercise{}, &FormatError{Input: s, Reason: "invalid sets", Err: err}
	}

	return NewExercise(parts[0], weight, reps, sets), nil
}

// splitFields splits on the delimiter and drops trailing empty fields
func splitFields(s string) []string {
	parts := strings.Split(s, Delimiter)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
