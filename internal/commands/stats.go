package commands

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fancybaby404/FitTrack/internal/db"
	"github.com/fancybaby404/FitTrack/internal/models"
)

func newStatsCmd(a *app) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a weekly training summary",
		Long: `Show minutes trained per day for the current calendar week, grouped by routine.
Data comes from the workout journal, which also keeps the sets you completed.

Example output:
  Routine                Mon  Tue  Wed  Thu  Fri  Total   Sets
  Push Day                45    -    -   50    -     95     24
  Pull Day                 -   40    -    -    -     40     12
  Total                   45   40    0   50    0    135     36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.openJournal()
			if err != nil {
				return err
			}
			if journal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "The workout journal is disabled (journal: false in fittrack.yaml).")
				return nil
			}
			defer journal.Close()

			if recent, _ := cmd.Flags().GetInt("recent"); recent > 0 {
				sessions, err := journal.RecentSessions(recent)
				if err != nil {
					return err
				}
				printRecentSessions(cmd.OutOrStdout(), sessions)
				return nil
			}

			week := time.Now()
			if v, _ := cmd.Flags().GetString("week"); v != "" {
				if week, err = time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
					return fmt.Errorf("invalid week %q, use YYYY-MM-DD", v)
				}
			}

			summary, err := journal.WeeklySummary(week)
			if err != nil {
				return err
			}
			printWeekSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	statsCmd.Flags().Int("recent", 0, "List the N most recent sessions instead")
	statsCmd.Flags().String("week", "", "Any day of the week to summarize (YYYY-MM-DD)")

	return statsCmd
}

// printWeekSummary outputs the weekly table
func printWeekSummary(out io.Writer, s *db.WeekSummary) {
	fmt.Fprintf(out, "Week of %s\n\n", s.Start.Format("Jan 02, 2006"))
	if len(s.Routines) == 0 {
		fmt.Fprintln(out, "No workouts logged this week.")
		return
	}

	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}

	// Weekdays always show, weekend days only when trained
	activeDays := make(map[time.Weekday]bool)
	for _, r := range s.Routines {
		for day, minutes := range r.MinutesByDay {
			if minutes > 0 {
				activeDays[day] = true
			}
		}
	}
	var daysToShow []int
	for i, weekday := range weekdays {
		if i < 5 || activeDays[weekday] {
			daysToShow = append(daysToShow, i)
		}
	}

	nameWidth := 20
	for _, r := range s.Routines {
		nameWidth = max(nameWidth, len([]rune(r.Routine)))
	}
	nameWidth = min(nameWidth, 40)

	separator := func() {
		fmt.Fprint(out, strings.Repeat("-", nameWidth))
		for range daysToShow {
			fmt.Fprint(out, "  "+strings.Repeat("-", 3))
		}
		fmt.Fprintln(out, "  "+strings.Repeat("-", 5)+"  "+strings.Repeat("-", 5))
	}

	fmt.Fprintf(out, "%-*s", nameWidth, "Routine")
	for _, i := range daysToShow {
		fmt.Fprintf(out, "  %3s", dayNames[i])
	}
	fmt.Fprintf(out, "  %5s  %5s\n", "Total", "Sets")
	separator()

	dayTotals := make(map[time.Weekday]int)
	grandTotal, totalSets := 0, 0
	for _, r := range s.Routines {
		name := r.Routine
		if len([]rune(name)) > nameWidth {
			name = string([]rune(name)[:nameWidth-3]) + "..."
		}
		fmt.Fprintf(out, "%-*s", nameWidth, name)

		routineTotal := 0
		for _, i := range daysToShow {
			minutes := r.MinutesByDay[weekdays[i]]
			if minutes > 0 {
				rounded := int(math.Ceil(minutes))
				fmt.Fprintf(out, "  %3d", rounded)
				dayTotals[weekdays[i]] += rounded
				routineTotal += rounded
			} else {
				fmt.Fprintf(out, "  %3s", "-")
			}
		}
		fmt.Fprintf(out, "  %5d  %5d\n", routineTotal, r.CompletedSets)
		grandTotal += routineTotal
		totalSets += r.CompletedSets
	}

	separator()
	fmt.Fprintf(out, "%-*s", nameWidth, "Total")
	for _, i := range daysToShow {
		fmt.Fprintf(out, "  %3d", dayTotals[weekdays[i]])
	}
	fmt.Fprintf(out, "  %5d  %5d\n", grandTotal, totalSets)
	fmt.Fprintln(out, "\nMinutes per day, rounded up.")
}

func printRecentSessions(out io.Writer, sessions []models.WorkoutSession) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No workouts in the journal yet.")
		return
	}
	for _, s := range sessions {
		sets, total := 0, 0
		for _, e := range s.Exercises {
			sets += e.CompletedSets
			total += e.Sets
		}
		fmt.Fprintf(out, "%s  %-20s  %s  %d/%d sets  %.0fkg volume\n",
			s.FinishedAt.Format(models.HistoryDateLayout),
			s.RoutineName,
			models.FormatClock(s.Duration()),
			sets, total,
			s.Volume())
	}
}
