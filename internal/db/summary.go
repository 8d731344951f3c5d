package db

import (
	"fmt"
	"sort"
	"time"
)

// RoutineWeek aggregates one routine's sessions over a calendar week
type RoutineWeek struct {
	Routine       string
	Sessions      int
	MinutesByDay  map[time.Weekday]float64
	TotalMinutes  float64
	CompletedSets int
	Volume        float64 // kg moved across completed sets
}

// WeekSummary is the weekly report shown by `fittrack stats`
type WeekSummary struct {
	Start    time.Time
	End      time.Time
	Routines []RoutineWeek // sorted by routine name
}

// WeekStart returns the start of the calendar week (Monday) for the given time
func WeekStart(t time.Time) time.Time {
	weekday := t.Weekday()
	daysFromMonday := int(weekday - time.Monday)
	if weekday == time.Sunday {
		daysFromMonday = 6 // Sunday is 6 days from Monday
	}

	weekStart := t.AddDate(0, 0, -daysFromMonday)
	// Set to start of day
	return time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
}

// WeeklySummary groups the sessions of the week starting at weekStart by routine
func (j *Journal) WeeklySummary(weekStart time.Time) (*WeekSummary, error) {
	weekStart = WeekStart(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second) // End of Sunday

	sessions, err := j.SessionsInRange(weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	byRoutine := make(map[string]*RoutineWeek)
	for _, s := range sessions {
		rw, ok := byRoutine[s.RoutineName]
		if !ok {
			rw = &RoutineWeek{
				Routine:      s.RoutineName,
				MinutesByDay: make(map[time.Weekday]float64),
			}
			byRoutine[s.RoutineName] = rw
		}

		minutes := s.Duration().Minutes()
		rw.Sessions++
		rw.MinutesByDay[s.StartedAt.Weekday()] += minutes
		rw.TotalMinutes += minutes
		rw.Volume += s.Volume()
		for _, e := range s.Exercises {
			rw.CompletedSets += e.CompletedSets
		}
	}

	summary := &WeekSummary{Start: weekStart, End: weekEnd}
	for _, rw := range byRoutine {
		summary.Routines = append(summary.Routines, *rw)
	}
	sort.Slice(summary.Routines, func(a, b int) bool {
		return summary.Routines[a].Routine < summary.Routines[b].Routine
	})

	return summary, nil
}
