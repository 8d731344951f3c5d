package commands

import (
	"github.com/spf13/cobra"

	"github.com/fancybaby404/FitTrack/internal/parser"
	"github.com/fancybaby404/FitTrack/internal/tui"
)

// runBrowser shows the routine browser until the user quits or runs a workout
func runBrowser(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	for {
		routines, err := loadRoutines(out, a)
		if err != nil {
			return err
		}

		action, routine, err := tui.RunRoutinesTUI(routines)
		if err != nil {
			return err
		}

		switch action {
		case tui.ActionWorkout:
			return runWorkout(out, a, routine, a.cfg.RestDuration())

		case tui.ActionAddExercise:
			e, ok, err := tui.RunExerciseFormTUI(routine.Name, parser.ParsedExercise{})
			if err != nil {
				return err
			}
			if err := addFromForm(out, a, routine.Name, e, ok); err != nil {
				return err
			}

		case tui.ActionDelete:
			if err := runDeleteRoutine(out, a, routine.Name); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
