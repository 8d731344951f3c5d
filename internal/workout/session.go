package workout

import (
	"time"

	"github.com/fancybaby404/FitTrack/internal/models"
)

// Session tracks one workout run against a routine
type Session struct {
	Routine   models.Routine
	StartedAt time.Time
	Elapsed   time.Duration

	started  bool
	finished bool
}

// Summary describes a finished session
type Summary struct {
	Routine    models.Routine // with per-exercise progress
	StartedAt  time.Time
	FinishedAt time.Time
	Elapsed    time.Duration
}

// NewSession prepares a session on a private copy of routine with progress reset
func NewSession(routine models.Routine) *Session {
	r := routine.Clone()
	for i := range r.Exercises {
		r.Exercises[i].SetCompletedSets(0)
	}
	r.Completed = false
	return &Session{Routine: r}
}

// Start begins the stopwatch. Calling it again has no effect.
func (s *Session) Start(now time.Time) {
	if s.started {
		return
	}
	s.started = true
	s.StartedAt = now
}

// Started reports whether the stopwatch is running or has run
func (s *Session) Started() bool {
	return s.started
}

// Finished reports whether Finish has been called
func (s *Session) Finished() bool {
	return s.finished
}

// Tick advances the stopwatch by one second while the session is running
func (s *Session) Tick() {
	if s.started && !s.finished {
		s.Elapsed += time.Second
	}
}

// AddSet marks one more set done on exercise i. It reports whether a set
// was actually added; sets can only be logged once the session has started.
func (s *Session) AddSet(i int) bool {
	if !s.active() || i < 0 || i >= len(s.Routine.Exercises) {
		return false
	}
	e := &s.Routine.Exercises[i]
	before := e.CompletedSets
	e.IncrementCompletedSets()
	return e.CompletedSets != before
}

// RemoveSet undoes one completed set on exercise i
func (s *Session) RemoveSet(i int) bool {
	if !s.active() || i < 0 || i >= len(s.Routine.Exercises) {
		return false
	}
	e := &s.Routine.Exercises[i]
	before := e.CompletedSets
	e.DecrementCompletedSets()
	return e.CompletedSets != before
}

// AllDone reports whether every exercise reached its target sets
func (s *Session) AllDone() bool {
	for _, e := range s.Routine.Exercises {
		if !e.IsDone() {
			return false
		}
	}
	return true
}

// Finish stops the stopwatch and returns the summary
func (s *Session) Finish(now time.Time) Summary {
	if !s.finished {
		s.finished = true
		s.Routine.Completed = s.AllDone()
	}
	return Summary{
		Routine:    s.Routine.Clone(),
		StartedAt:  s.StartedAt,
		FinishedAt: now,
		Elapsed:    s.Elapsed,
	}
}

func (s *Session) active() bool {
	return s.started && !s.finished
}

// HistoryEntry builds the history line for the summary.
// The exercise count is the number of exercises in the routine.
func (sum Summary) HistoryEntry() models.HistoryEntry {
	return models.HistoryEntry{
		Workout:   sum.Routine.Name,
		Date:      sum.FinishedAt,
		Duration:  sum.Elapsed,
		Exercises: len(sum.Routine.Exercises),
	}
}
