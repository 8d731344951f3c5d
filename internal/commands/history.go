package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/tui"
)

func newHistoryCmd(a *app) *cobra.Command {
	list := func(cmd *cobra.Command, args []string) error {
		lines, err := a.history.ReadAll()
		if err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), a, lines)
		return nil
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed workouts",
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "Show completed workouts",
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	rawCmd := &cobra.Command{
		Use:   "raw",
		Short: "Print the history log unformatted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.history.ReadAll()
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠️  This deletes your whole workout history. Re-run with --yes to confirm.")
				return nil
			}
			if err := a.history.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "🗑️  Workout history cleared")

			if withJournal, _ := cmd.Flags().GetBool("journal"); withJournal {
				journal, err := a.openJournal()
				if err != nil || journal == nil {
					return err
				}
				defer journal.Close()
				if err := journal.Clear(); err != nil {
					return fmt.Errorf("clearing journal: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "🗑️  Workout journal cleared")
			}
			return nil
		},
	}
	clearCmd.Flags().BoolP("yes", "y", false, "Confirm clearing")
	clearCmd.Flags().Bool("journal", false, "Also clear the workout journal used by stats")

	historyCmd.AddCommand(lsCmd, rawCmd, clearCmd)
	return historyCmd
}

// fieldValue drops the "Label:" prefix of a history field
func fieldValue(field string) string {
	if _, v, ok := strings.Cut(field, ":"); ok {
		return strings.TrimSpace(v)
	}
	return field
}

func printHistory(out io.Writer, a *app, lines []string) {
	type row struct{ workout, date, duration, exercises string }

	var rows []row
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		f, ok := models.SplitHistoryLine(line)
		if !ok {
			a.log.Warn("skipping malformed history line", "line", i+1)
			continue
		}
		rows = append(rows, row{
			workout:   fieldValue(f.Workout),
			date:      fieldValue(f.Date),
			duration:  fieldValue(f.Duration),
			exercises: fieldValue(f.Exercises),
		})
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No workouts logged yet.")
		return
	}

	width := 20
	for _, r := range rows {
		width = max(width, len([]rune(r.workout)))
	}
	width = min(width, 40)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tui.ColorAccentMain))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText))

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-*s  %-19s  %8s  %9s", width, "Workout", "Date", "Duration", "Exercises")))
	for _, r := range rows {
		name := r.workout
		if len([]rune(name)) > width {
			name = string([]rune(name)[:width-3]) + "..."
		}
		fmt.Fprintf(out, "%-*s  %s  %8s  %9s\n", width, name, dateStyle.Render(fmt.Sprintf("%-19s", r.date)), r.duration, r.exercises)
	}
	fmt.Fprintf(out, "\n%d workouts\n", len(rows))
}
