package models

import (
	"errors"
	"testing"
)

func TestExerciseString(t *testing.T) {
	e := NewExercise("Bench Press", 80, 5, 3)
	e.CompletedSets = 2

	want := "Bench Press||80.00||5||3||2"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompletedSetsClamp(t *testing.T) {
	e := NewExercise("Squat", 100, 5, 3)

	for i := 0; i < 5; i++ {
		e.IncrementCompletedSets()
	}
	if e.CompletedSets != 3 {
		t.Errorf("completed sets = %d, want 3", e.CompletedSets)
	}
	if !e.IsDone() {
		t.Error("expected exercise to be done")
	}

	for i := 0; i < 5; i++ {
		e.DecrementCompletedSets()
	}
	if e.CompletedSets != 0 {
		t.Errorf("completed sets = %d, want 0", e.CompletedSets)
	}

	e.SetCompletedSets(-4)
	if e.CompletedSets != 0 {
		t.Errorf("SetCompletedSets(-4) = %d, want 0", e.CompletedSets)
	}
	e.SetCompletedSets(10)
	if e.CompletedSets != 3 {
		t.Errorf("SetCompletedSets(10) = %d, want 3", e.CompletedSets)
	}
}

func TestParseExercise(t *testing.T) {
	e, err := ParseExercise("Deadlift||140.50||3||5||4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Name != "Deadlift" || e.Weight != 140.5 || e.Reps != 3 || e.Sets != 5 {
		t.Errorf("parsed = %+v", e)
	}
	if e.CompletedSets != 0 {
		t.Errorf("completed sets = %d, want 0 after parse", e.CompletedSets)
	}
}

func TestParseExerciseFourFields(t *testing.T) {
	e, err := ParseExercise("Row||60||10||3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Sets != 3 {
		t.Errorf("sets = %d, want 3", e.Sets)
	}
}

func TestParseExerciseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few fields", "Curl||12.5||10"},
		{"trailing empties do not count", "Curl||12.5||10||||"},
		{"bad weight", "Curl||heavy||10||3"},
		{"nan weight", "bad||NaN||1||1"},
		{"inf weight", "bad||Inf||1||1"},
		{"bad reps", "Curl||12.5||ten||3"},
		{"bad sets", "Curl||12.5||10||3.5"},
		{"negative sets", "Curl||12.5||10||-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExercise(tt.input)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormatError", err)
			}
		})
	}
}
