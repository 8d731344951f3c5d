package workout

import "time"

// DefaultRest is the rest between sets when nothing else is configured
const DefaultRest = 60 * time.Second

// Rest is a countdown between sets
type Rest struct {
	Total     time.Duration
	Remaining time.Duration
	Paused    bool
}

// NewRest starts a countdown of d
func NewRest(d time.Duration) *Rest {
	if d <= 0 {
		d = DefaultRest
	}
	return &Rest{Total: d, Remaining: d}
}

// Tick removes one second unless paused
func (r *Rest) Tick() {
	if r.Paused || r.Remaining <= 0 {
		return
	}
	r.Remaining -= time.Second
	if r.Remaining < 0 {
		r.Remaining = 0
	}
}

// Adjust adds delta to the remaining time, never going below zero
func (r *Rest) Adjust(delta time.Duration) {
	r.Remaining += delta
	if r.Remaining < 0 {
		r.Remaining = 0
	}
	if r.Remaining > r.Total {
		r.Total = r.Remaining
	}
}

// TogglePause pauses or resumes the countdown
func (r *Rest) TogglePause() {
	r.Paused = !r.Paused
}

// Done reports whether the countdown reached zero
func (r *Rest) Done() bool {
	return r.Remaining <= 0
}

// Progress returns the elapsed fraction in [0, 1]
func (r *Rest) Progress() float64 {
	if r.Total <= 0 {
		return 1
	}
	return 1 - float64(r.Remaining)/float64(r.Total)
}
