package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/parser"
	"github.com/fancybaby404/FitTrack/internal/tui"
)

func newRoutineCmd(a *app) *cobra.Command {
	routineCmd := &cobra.Command{
		Use:     "routine",
		Aliases: []string{"routines", "r"},
		Short:   "Manage workout routines",
	}

	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List routines",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := loadRoutines(cmd.OutOrStdout(), a)
			if err != nil {
				return err
			}
			printRoutineList(cmd.OutOrStdout(), routines)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the exercises of a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := loadRoutines(cmd.OutOrStdout(), a)
			if err != nil {
				return err
			}
			found := false
			for _, r := range routines {
				if r.Name == args[0] {
					printRoutine(cmd.OutOrStdout(), r)
					found = true
				}
			}
			if !found {
				return fmt.Errorf("routine %q not found", args[0])
			}
			return nil
		},
	}

	newCmd := &cobra.Command{
		Use:   "new <name> [exercise spec]",
		Short: "Create a routine, optionally with a first exercise",
		Long: `Create a routine. An optional quick-add spec adds the first exercise.

Example:
  fittrack routine new "Push Day" Bench Press 80kg 5x3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewRoutine(cmd.OutOrStdout(), a, args[0], strings.Join(args[1:], " "))
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <routine> [exercise spec]",
		Short: "Add an exercise to a routine",
		Long: `Add an exercise to a routine.

Modes:
  Interactive: fittrack routine add "Push Day" (no spec)
  Quick: fittrack routine add "Push Day" Bench Press 80kg 5x3

Quick syntax:
  80kg, 42.5kg, 135lb  - Weight (pounds are converted to kg)
  w:80                 - Weight without unit
  5x3                  - 5 reps for 3 sets
  reps:5 sets:3        - Reps and sets as tags`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noUI, _ := cmd.Flags().GetBool("no-ui")
			spec := strings.Join(args[1:], " ")

			parsed := parser.ParseExerciseSpec(spec)
			if spec == "" || !parsed.Valid() {
				if noUI {
					if spec == "" {
						return errors.New("an exercise spec is required with --no-ui")
					}
					return fmt.Errorf("invalid exercise: %s", strings.Join(parsed.Errors, ", "))
				}
				if spec != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
					fmt.Fprintln(cmd.OutOrStdout(), "Opening interactive mode for confirmation...")
				}
				e, ok, err := tui.RunExerciseFormTUI(args[0], parsed)
				if err != nil {
					return err
				}
				return addFromForm(cmd.OutOrStdout(), a, args[0], e, ok)
			}
			return runAddExercise(cmd.OutOrStdout(), a, args[0], parsed.Exercise())
		},
	}
	addCmd.Flags().Bool("no-ui", false, "Never open the interactive form")

	rmCmd := &cobra.Command{
		Use:   "rm-exercise <routine> <number>",
		Short: "Remove an exercise by its number in 'routine show'",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid exercise number %q", args[1])
			}
			return runRemoveExercise(cmd.OutOrStdout(), a, args[0], n)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a routine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenameRoutine(cmd.OutOrStdout(), a, args[0], args[1])
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete every routine with this name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "⚠️  This deletes every routine named %q. Re-run with --yes to confirm.\n", args[0])
				return nil
			}
			return runDeleteRoutine(cmd.OutOrStdout(), a, args[0])
		},
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "Confirm deletion")

	routineCmd.AddCommand(lsCmd, showCmd, newCmd, addCmd, rmCmd, renameCmd, deleteCmd)
	return routineCmd
}

// loadRoutines loads all routines for display. Malformed data is reported
// and the routines read before it are used.
func loadRoutines(out io.Writer, a *app) ([]models.Routine, error) {
	routines, err := a.routines.LoadAll()
	if err != nil {
		var fe *models.FormatError
		if errors.As(err, &fe) {
			fmt.Fprintf(out, "⚠️  Skipping malformed routine data: %v\n", err)
			return routines, nil
		}
		return nil, err
	}
	return routines, nil
}

// findRoutine returns the index of the first routine named name, or -1
func findRoutine(routines []models.Routine, name string) int {
	for i, r := range routines {
		if r.Name == name {
			return i
		}
	}
	return -1
}

func runNewRoutine(out io.Writer, a *app, name, spec string) error {
	if err := models.ValidateName(name); err != nil {
		return fmt.Errorf("invalid routine name: %w", err)
	}

	routine := models.NewRoutine(name)
	if spec != "" {
		parsed := parser.ParseExerciseSpec(spec)
		if !parsed.Valid() {
			return fmt.Errorf("invalid exercise: %s", strings.Join(parsed.Errors, ", "))
		}
		routine.AddExercise(parsed.Exercise())
	}

	err := a.routines.WithRoutines(func(routines []models.Routine) ([]models.Routine, error) {
		if findRoutine(routines, name) >= 0 {
			return nil, fmt.Errorf("routine %q already exists", name)
		}
		return append(routines, routine), nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ New routine \"%s\" created with %d exercises\n", name, len(routine.Exercises))
	return nil
}

func runAddExercise(out io.Writer, a *app, name string, e models.Exercise) error {
	if err := models.ValidateName(e.Name); err != nil {
		return fmt.Errorf("invalid exercise name: %w", err)
	}

	err := a.routines.WithRoutines(func(routines []models.Routine) ([]models.Routine, error) {
		i := findRoutine(routines, name)
		if i < 0 {
			return nil, fmt.Errorf("routine %q not found", name)
		}
		routines[i].AddExercise(e)
		return routines, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Added %s (%.2fkg × %d reps × %d sets) to %s\n", e.Name, e.Weight, e.Reps, e.Sets, name)
	return nil
}

// addFromForm saves the exercise entered in the form unless the user cancelled it
func addFromForm(out io.Writer, a *app, name string, e models.Exercise, completed bool) error {
	if !completed {
		fmt.Fprintln(out, "❌ Exercise creation cancelled.")
		return nil
	}
	return runAddExercise(out, a, name, e)
}

// runRemoveExercise removes exercise number n (1-based, as printed by show)
func runRemoveExercise(out io.Writer, a *app, name string, n int) error {
	var removed models.Exercise
	err := a.routines.WithRoutines(func(routines []models.Routine) ([]models.Routine, error) {
		i := findRoutine(routines, name)
		if i < 0 {
			return nil, fmt.Errorf("routine %q not found", name)
		}
		r := &routines[i]
		if n < 1 || n > len(r.Exercises) {
			return nil, fmt.Errorf("routine %q has no exercise number %d", name, n)
		}
		removed = r.Exercises[n-1]
		r.RemoveExercise(n - 1)
		return routines, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "🗑️  Removed %s from %s\n", removed.Name, name)
	return nil
}

func runRenameRoutine(out io.Writer, a *app, oldName, newName string) error {
	if err := models.ValidateName(newName); err != nil {
		return fmt.Errorf("invalid routine name: %w", err)
	}

	renamed := 0
	err := a.routines.WithRoutines(func(routines []models.Routine) ([]models.Routine, error) {
		if oldName != newName && findRoutine(routines, newName) >= 0 {
			return nil, fmt.Errorf("routine %q already exists", newName)
		}
		for i := range routines {
			if routines[i].Name == oldName {
				routines[i].Name = newName
				renamed++
			}
		}
		if renamed == 0 {
			return nil, fmt.Errorf("routine %q not found", oldName)
		}
		return routines, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✏️  Renamed %s to %s\n", oldName, newName)
	return nil
}

func runDeleteRoutine(out io.Writer, a *app, name string) error {
	routines, err := a.routines.LoadAll()
	if err != nil {
		return err
	}

	kept, err := a.routines.DeleteByName(name, routines)
	if err != nil {
		return err
	}

	removed := len(routines) - len(kept)
	if removed == 0 {
		fmt.Fprintf(out, "No routine named %q\n", name)
		return nil
	}
	fmt.Fprintf(out, "🗑️  Deleted %d routine(s) named %s\n", removed, name)
	return nil
}

func printRoutineList(out io.Writer, routines []models.Routine) {
	if len(routines) == 0 {
		fmt.Fprintln(out, "No routines yet. Create one with 'fittrack routine new <name>'.")
		return
	}

	width := 20
	for _, r := range routines {
		width = max(width, len([]rune(r.Name)))
	}
	width = min(width, 40)

	fmt.Fprintf(out, "%-*s  %9s  %4s\n", width, "Routine", "Exercises", "Sets")
	fmt.Fprintf(out, "%s  %s  %s\n", strings.Repeat("-", width), strings.Repeat("-", 9), strings.Repeat("-", 4))
	for _, r := range routines {
		name := r.Name
		if len([]rune(name)) > width {
			name = string([]rune(name)[:width-3]) + "..."
		}
		fmt.Fprintf(out, "%-*s  %9d  %4d\n", width, name, len(r.Exercises), r.TotalSets())
	}
}

func printRoutine(out io.Writer, r models.Routine) {
	fmt.Fprintf(out, "📋 %s\n", r.Name)
	if len(r.Exercises) == 0 {
		fmt.Fprintln(out, "   (no exercises)")
		return
	}
	for i, e := range r.Exercises {
		fmt.Fprintf(out, "%3d. %s  %.2fkg × %d reps × %d sets\n", i+1, e.Name, e.Weight, e.Reps, e.Sets)
	}
}
