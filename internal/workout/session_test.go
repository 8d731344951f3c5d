package workout

import (
	"testing"
	"time"

	"github.com/fancybaby404/FitTrack/internal/models"
)

func testRoutine() models.Routine {
	r := models.NewRoutine("Push")
	r.AddExercise(models.NewExercise("Bench", 80, 5, 3))
	r.AddExercise(models.NewExercise("Dips", 0, 10, 2))
	return r
}

func TestSessionRequiresStart(t *testing.T) {
	s := NewSession(testRoutine())

	if s.AddSet(0) {
		t.Error("AddSet before Start should be ignored")
	}
	s.Tick()
	if s.Elapsed != 0 {
		t.Errorf("elapsed = %v before start, want 0", s.Elapsed)
	}
}

func TestSessionSetsClamp(t *testing.T) {
	s := NewSession(testRoutine())
	s.Start(time.Now())

	added := 0
	for i := 0; i < 5; i++ {
		if s.AddSet(0) {
			added++
		}
	}
	if added != 3 || s.Routine.Exercises[0].CompletedSets != 3 {
		t.Errorf("added %d, completed %d; want 3, 3", added, s.Routine.Exercises[0].CompletedSets)
	}

	if s.RemoveSet(1) {
		t.Error("RemoveSet at zero should report false")
	}
	if !s.RemoveSet(0) || s.Routine.Exercises[0].CompletedSets != 2 {
		t.Errorf("completed = %d, want 2", s.Routine.Exercises[0].CompletedSets)
	}
	if s.AddSet(7) || s.AddSet(-1) {
		t.Error("out of range index should be ignored")
	}
}

func TestSessionDoesNotTouchRoutine(t *testing.T) {
	r := testRoutine()
	r.Exercises[0].SetCompletedSets(2)

	s := NewSession(r)
	if s.Routine.Exercises[0].CompletedSets != 0 {
		t.Errorf("session should start with no progress")
	}
	s.Start(time.Now())
	s.AddSet(1)
	if r.Exercises[1].CompletedSets != 0 {
		t.Error("session mutated caller's routine")
	}
}

func TestSessionFinish(t *testing.T) {
	start := time.Date(2026, 4, 1, 18, 0, 0, 0, time.Local)
	s := NewSession(testRoutine())
	s.Start(start)
	for i := 0; i < 125; i++ {
		s.Tick()
	}
	for i := 0; i < 3; i++ {
		s.AddSet(0)
	}
	s.AddSet(1)
	s.AddSet(1)

	sum := s.Finish(start.Add(2 * time.Minute))
	if !s.Finished() {
		t.Error("expected session to be finished")
	}
	if sum.Elapsed != 125*time.Second {
		t.Errorf("elapsed = %v, want 2m5s", sum.Elapsed)
	}
	if !sum.Routine.Completed {
		t.Error("routine should be marked completed")
	}

	s.Tick()
	if s.AddSet(0) || s.Elapsed != 125*time.Second {
		t.Error("finished session should not change")
	}

	entry := sum.HistoryEntry()
	want := "Workout: Push |Date:  2026-04-01 18:02:00 | Duration: 00:02:05 | Exercises: 2"
	if entry.String() != want {
		t.Errorf("history = %q, want %q", entry.String(), want)
	}
}

func TestRest(t *testing.T) {
	r := NewRest(3 * time.Second)
	r.Tick()
	if r.Remaining != 2*time.Second {
		t.Errorf("remaining = %v, want 2s", r.Remaining)
	}

	r.TogglePause()
	r.Tick()
	if r.Remaining != 2*time.Second {
		t.Error("paused rest should not count down")
	}
	r.TogglePause()

	r.Adjust(-15 * time.Second)
	if r.Remaining != 0 || !r.Done() {
		t.Errorf("remaining = %v, want 0", r.Remaining)
	}
	if r.Progress() != 1 {
		t.Errorf("progress = %v, want 1", r.Progress())
	}

	r.Adjust(15 * time.Second)
	if r.Remaining != 15*time.Second || r.Total != 15*time.Second {
		t.Errorf("remaining = %v total = %v", r.Remaining, r.Total)
	}

	if NewRest(0).Total != DefaultRest {
		t.Error("zero rest should fall back to default")
	}
}
