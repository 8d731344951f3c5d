package models

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line tokens of the routines file
const (
	TokenRoutineStart = "ROUTINE_START"
	TokenExercise     = "EXERCISE"
	TokenRoutineEnd   = "ROUTINE_END"
)

// Routine represents a named, ordered list of exercises
type Routine struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	Completed bool       `json:"completed"` // informational, never stored
}

// NewRoutine creates an empty routine
func NewRoutine(name string) Routine {
	return Routine{Name: name, Exercises: []Exercise{}}
}

// AddExercise appends an exercise, keeping insertion order
func (r *Routine) AddExercise(e Exercise) {
	r.Exercises = append(r.Exercises, e)
}

// RemoveExercise removes the exercise at index i.
// It returns false and leaves the routine untouched when i is out of range.
func (r *Routine) RemoveExercise(i int) bool {
	if i < 0 || i >= len(r.Exercises) {
		return false
	}
	r.Exercises = append(r.Exercises[:i], r.Exercises[i+1:]...)
	return true
}

// Clone returns a deep copy of the routine
func (r Routine) Clone() Routine {
	c := r
	c.Exercises = make([]Exercise, len(r.Exercises))
	copy(c.Exercises, r.Exercises)
	return c
}

// TotalSets returns the sum of target sets across exercises
func (r Routine) TotalSets() int {
	total := 0
	for _, e := range r.Exercises {
		total += e.Sets
	}
	return total
}

// CompletedSets returns the sum of completed sets across exercises
func (r Routine) CompletedSets() int {
	total := 0
	for _, e := range r.Exercises {
		total += e.CompletedSets
	}
	return total
}

// String serializes the routine as a ROUTINE_START..ROUTINE_END block
func (r Routine) String() string {
	var b strings.Builder
	b.WriteString(TokenRoutineStart + Delimiter + r.Name + "\n")
	for _, e := range r.Exercises {
		b.WriteString(TokenExercise + Delimiter + e.String() + "\n")
	}
	b.WriteString(TokenRoutineEnd + "\n")
	return b.String()
}

// CloneRoutines deep-copies a routine slice
func CloneRoutines(routines []Routine) []Routine {
	out := make([]Routine, len(routines))
	for i, r := range routines {
		out[i] = r.Clone()
	}
	return out
}

// SerializeRoutines concatenates the serialized form of every routine
func SerializeRoutines(routines []Routine) string {
	var b strings.Builder
	for _, r := range routines {
		b.WriteString(r.String())
	}
	return b.String()
}

// ParseRoutines reads routine blocks line by line.
//
// Unknown lines and EXERCISE lines outside a block are skipped. A block
// still open at end of input is dropped. A malformed EXERCISE line stops
// parsing: the routines closed so far are returned with a *FormatError.
func ParseRoutines(r io.Reader) ([]Routine, error) {
	routines := []Routine{}
	var current *Routine

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		parts := strings.Split(line, Delimiter)

		switch parts[0] {
		case TokenRoutineStart:
			name := ""
			if len(parts) > 1 {
				name = parts[1]
			}
			rt := NewRoutine(name)
			current = &rt

		case TokenExercise:
			if current == nil {
				continue
			}
			e, err := ParseExercise(strings.TrimPrefix(line, TokenExercise+Delimiter))
			if err != nil {
				if fe, ok := err.(*FormatError); ok {
					fe.Line = lineNo
				}
				return routines, err
			}
			current.AddExercise(e)

		case TokenRoutineEnd:
			if current != nil {
				routines = append(routines, *current)
				current = nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return routines, fmt.Errorf("reading routines: %w", err)
	}

	return routines, nil
}
