package tui

import (
	"testing"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/parser"
)

// TestExerciseFormWizard walks every step and saves.
func TestExerciseFormWizard(t *testing.T) {
	var m = NewExerciseFormModel("Leg Day", parser.ParsedExercise{})
	m2 := typeText(m, "Squat")
	m2, _ = send(m2, key("enter"))
	m2 = typeText(m2, "100kg")
	m2, _ = send(m2, key("enter"))
	m2 = typeText(m2, "5")
	m2, _ = send(m2, key("enter"))
	m2 = typeText(m2, "3")
	m2, _ = send(m2, key("enter"))

	fm := m2.(ExerciseFormModel)
	if fm.currentStep != StepSave {
		t.Fatalf("step = %d, want save", fm.currentStep)
	}

	m2, cmd := send(fm, key("enter"))
	fm = m2.(ExerciseFormModel)
	if !fm.Completed() || cmd == nil {
		t.Fatalf("completed=%v cmd=%v err=%q", fm.Completed(), cmd, fm.validationErr)
	}

	want := models.NewExercise("Squat", 100, 5, 3)
	if got := fm.Exercise(); got != want {
		t.Errorf("exercise = %+v, want %+v", got, want)
	}
}

// TestExerciseFormPrefilled accepts a quick-add spec without typing.
func TestExerciseFormPrefilled(t *testing.T) {
	m := NewExerciseFormModel("Push Day", parser.ParseExerciseSpec("Bench Press 135lb 8x4"))
	m2, _ := send(m, key("enter"), key("enter"), key("enter"), key("enter"), key("enter"))

	fm := m2.(ExerciseFormModel)
	if !fm.Completed() {
		t.Fatalf("not completed: %q", fm.validationErr)
	}
	want := models.NewExercise("Bench Press", 61.23, 8, 4)
	if got := fm.Exercise(); got != want {
		t.Errorf("exercise = %+v, want %+v", got, want)
	}
}

func TestExerciseFormValidation(t *testing.T) {
	tests := []struct {
		name  string
		input []string // typed text per step, "" skips typing
		step  Step
	}{
		{"empty name", []string{""}, StepName},
		{"delimiter in name", []string{"Row || Cable"}, StepName},
		{"bad weight", []string{"Row", "heavy"}, StepWeight},
		{"bad reps", []string{"Row", "", "ten"}, StepReps},
		{"zero sets", []string{"Row", "", "10", "0"}, StepSets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m = NewExerciseFormModel("Pull Day", parser.ParsedExercise{})
			m2 := typeText(m, "")
			for _, text := range tt.input {
				m2 = typeText(m2, text)
				m2, _ = send(m2, key("enter"))
			}

			fm := m2.(ExerciseFormModel)
			if fm.currentStep != tt.step {
				t.Errorf("step = %d, want %d", fm.currentStep, tt.step)
			}
			if fm.validationErr == "" {
				t.Error("expected a validation error")
			}
			if fm.Completed() {
				t.Error("form completed with invalid input")
			}
		})
	}
}

func TestExerciseFormSkipWeightAndBack(t *testing.T) {
	m := typeText(NewExerciseFormModel("Core", parser.ParsedExercise{}), "Plank")
	m, _ = send(m, key("enter"), key("enter")) // bodyweight
	m, _ = send(m, key("up"))

	fm := m.(ExerciseFormModel)
	if fm.currentStep != StepWeight {
		t.Errorf("step = %d, want weight", fm.currentStep)
	}
	if fm.Exercise().Weight != 0 {
		t.Errorf("weight = %v, want 0", fm.Exercise().Weight)
	}
}

func TestExerciseFormCancel(t *testing.T) {
	m, cmd := send(typeText(NewExerciseFormModel("Core", parser.ParsedExercise{}), "Plank"), key("esc"))
	fm := m.(ExerciseFormModel)

	if !fm.Cancelled() || fm.Completed() || cmd == nil {
		t.Errorf("cancelled=%v completed=%v", fm.Cancelled(), fm.Completed())
	}
}
