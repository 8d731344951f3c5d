package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/parser"
	"github.com/fancybaby404/FitTrack/internal/tui"
	"github.com/fancybaby404/FitTrack/internal/workout"
)

func newWorkoutCmd(a *app) *cobra.Command {
	workoutCmd := &cobra.Command{
		Use:     "workout <routine>",
		Aliases: []string{"start", "w"},
		Short:   "Run a workout with a stopwatch and rest timer",
		Long: `Run a routine interactively. Press space to start the stopwatch,
+/- to log sets, and space again to finish. Finished workouts are appended
to the history log; leaving with esc/q logs nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := loadRoutines(cmd.OutOrStdout(), a)
			if err != nil {
				return err
			}
			i := findRoutine(routines, args[0])
			if i < 0 {
				return fmt.Errorf("routine %q not found", args[0])
			}
			routine := routines[i]

			rest := a.cfg.RestDuration()
			if v, _ := cmd.Flags().GetString("rest"); v != "" {
				if rest, err = parser.ParseRest(v); err != nil {
					return err
				}
			}

			if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
				printPlan(cmd.OutOrStdout(), routine, rest)
				return nil
			}

			return runWorkout(cmd.OutOrStdout(), a, routine, rest)
		},
	}
	workoutCmd.Flags().Bool("no-ui", false, "Print the workout plan instead of starting the timer")
	workoutCmd.Flags().String("rest", "", "Rest between sets (90, 90s, 1m30s, 1:30)")

	return workoutCmd
}

func runWorkout(out io.Writer, a *app, routine models.Routine, rest time.Duration) error {
	summary, finished, err := tui.RunWorkoutTUI(routine, rest)
	if err != nil {
		return err
	}
	if !finished {
		fmt.Fprintf(out, "💡 Workout %s abandoned, nothing was logged.\n", routine.Name)
		return nil
	}
	return logWorkout(out, a, summary)
}

// logWorkout appends the finished workout to the history log and records
// it in the journal. A journal failure is reported but does not fail the command.
func logWorkout(out io.Writer, a *app, summary workout.Summary) error {
	entry := summary.HistoryEntry()
	if err := a.history.Append(entry); err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Logged %s: %s, %d/%d sets\n",
		entry.Workout,
		models.FormatClock(entry.Duration),
		summary.Routine.CompletedSets(),
		summary.Routine.TotalSets())

	journal, err := a.openJournal()
	if err != nil {
		a.log.Warn("journal unavailable", "error", err)
		fmt.Fprintf(out, "⚠️  Could not open the journal: %v\n", err)
		return nil
	}
	if journal == nil {
		return nil
	}
	defer journal.Close()

	if _, err := journal.RecordSession(summary); err != nil {
		a.log.Warn("recording session failed", "error", err)
		fmt.Fprintf(out, "⚠️  Could not record the session in the journal: %v\n", err)
	}
	return nil
}

func printPlan(out io.Writer, r models.Routine, rest time.Duration) {
	printRoutine(out, r)
	fmt.Fprintf(out, "\n%d sets in total, %s rest between sets\n", r.TotalSets(), parser.FormatRest(rest))
}
