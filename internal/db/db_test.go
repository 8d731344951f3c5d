package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/workout"
)

func testJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal", "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func summaryFor(name string, start time.Time, elapsed time.Duration, completed ...int) workout.Summary {
	r := models.NewRoutine(name)
	for i, c := range completed {
		e := models.NewExercise("Lift", 100, 5, 5)
		if i%2 == 1 {
			e = models.NewExercise("Accessory", 20, 10, 3)
		}
		e.SetCompletedSets(c)
		r.AddExercise(e)
	}
	return workout.Summary{
		Routine:    r,
		StartedAt:  start,
		FinishedAt: start.Add(elapsed),
		Elapsed:    elapsed,
	}
}

func TestRecordSession(t *testing.T) {
	j := testJournal(t)
	start := time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)

	s, err := j.RecordSession(summaryFor("Push", start, 45*time.Minute, 5, 2))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if s.ID == 0 {
		t.Error("expected an ID")
	}
	if s.DurationSeconds != 2700 {
		t.Errorf("duration = %d, want 2700", s.DurationSeconds)
	}

	recent, err := j.RecentSessions(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d sessions, want 1", len(recent))
	}
	got := recent[0]
	if got.RoutineName != "Push" || len(got.Exercises) != 2 {
		t.Fatalf("session = %+v", got)
	}
	if got.Exercises[0].Position != 0 || got.Exercises[0].CompletedSets != 5 || got.Exercises[1].CompletedSets != 2 {
		t.Errorf("exercises = %+v", got.Exercises)
	}
	// 100kg*5 reps*5 sets + 20kg*10 reps*2 sets
	if got.Volume() != 2900 {
		t.Errorf("volume = %v, want 2900", got.Volume())
	}
}

func TestRecordSessionWithoutStart(t *testing.T) {
	j := testJournal(t)
	finish := time.Date(2026, 5, 4, 19, 0, 0, 0, time.UTC)

	sum := summaryFor("Legs", time.Time{}, 30*time.Minute, 1)
	sum.FinishedAt = finish
	s, err := j.RecordSession(sum)
	if err != nil {
		t.Fatal(err)
	}
	if !s.StartedAt.Equal(finish.Add(-30 * time.Minute)) {
		t.Errorf("started at = %v", s.StartedAt)
	}
}

func TestWeeklySummary(t *testing.T) {
	j := testJournal(t)
	monday := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	records := []workout.Summary{
		summaryFor("Push", monday.Add(18*time.Hour), 40*time.Minute, 5),
		summaryFor("Push", monday.AddDate(0, 0, 2).Add(18*time.Hour), 50*time.Minute, 3),
		summaryFor("Legs", monday.AddDate(0, 0, 6).Add(9*time.Hour), 60*time.Minute, 4),
		summaryFor("Legs", monday.AddDate(0, 0, 7).Add(9*time.Hour), 60*time.Minute, 4), // next week
		summaryFor("Pull", monday.Add(-time.Hour), 30*time.Minute, 1),                   // previous week
	}
	for _, r := range records {
		if _, err := j.RecordSession(r); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := j.WeeklySummary(monday.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !sum.Start.Equal(monday) {
		t.Errorf("start = %v, want %v", sum.Start, monday)
	}
	if len(sum.Routines) != 2 {
		t.Fatalf("routines = %+v", sum.Routines)
	}

	legs, push := sum.Routines[0], sum.Routines[1]
	if legs.Routine != "Legs" || legs.Sessions != 1 || legs.MinutesByDay[time.Sunday] != 60 {
		t.Errorf("legs = %+v", legs)
	}
	if push.Routine != "Push" || push.Sessions != 2 || push.TotalMinutes != 90 || push.CompletedSets != 8 {
		t.Errorf("push = %+v", push)
	}
	if push.MinutesByDay[time.Monday] != 40 || push.MinutesByDay[time.Wednesday] != 50 {
		t.Errorf("push by day = %v", push.MinutesByDay)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC), time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)},  // Monday
		{time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC), time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)}, // Sunday
		{time.Date(2026, 5, 7, 8, 0, 0, 0, time.UTC), time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)},   // Thursday
	}
	for _, tt := range tests {
		if got := WeekStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	j := testJournal(t)
	if _, err := j.RecordSession(summaryFor("Push", time.Now(), time.Minute, 1)); err != nil {
		t.Fatal(err)
	}
	if err := j.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	recent, err := j.RecentSessions(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("got %d sessions after clear", len(recent))
	}
}
