package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/parser"
	"github.com/fancybaby404/FitTrack/internal/workout"
)

// RunWorkoutTUI runs an interactive workout on routine. It reports false
// when the user left without finishing, in which case nothing is logged.
func RunWorkoutTUI(routine models.Routine, rest time.Duration) (workout.Summary, bool, error) {
	p := tea.NewProgram(NewWorkoutModel(routine, rest), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return workout.Summary{}, false, err
	}

	m, ok := finalModel.(WorkoutModel)
	if !ok || !m.Finished() {
		return workout.Summary{}, false, nil
	}
	return m.Summary(), true, nil
}

// RunExerciseFormTUI asks for an exercise to add to routine. It reports
// false when the user cancelled the form.
func RunExerciseFormTUI(routine string, prefilled parser.ParsedExercise) (models.Exercise, bool, error) {
	p := tea.NewProgram(NewExerciseFormModel(routine, prefilled))
	finalModel, err := p.Run()
	if err != nil {
		return models.Exercise{}, false, err
	}

	m, ok := finalModel.(ExerciseFormModel)
	if !ok || !m.Completed() {
		return models.Exercise{}, false, nil
	}
	return m.Exercise(), true, nil
}

// RunRoutinesTUI shows the routine browser and returns what the user picked
func RunRoutinesTUI(routines []models.Routine) (Action, models.Routine, error) {
	p := tea.NewProgram(NewRoutinesModel(routines), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return ActionNone, models.Routine{}, err
	}

	m, ok := finalModel.(RoutinesModel)
	if !ok {
		return ActionNone, models.Routine{}, nil
	}
	r, _ := m.Selected()
	return m.Action(), r, nil
}
