package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutSession represents a finished workout recorded in the journal
type WorkoutSession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoutineName     string    `gorm:"not null;index" json:"routine_name"`
	StartedAt       time.Time `gorm:"not null;index" json:"started_at"`
	FinishedAt      time.Time `gorm:"not null" json:"finished_at"`
	DurationSeconds int       `json:"duration_seconds"`

	// Relationships
	Exercises []SessionExercise `gorm:"foreignKey:WorkoutSessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"exercises"`
}

// SessionExercise is the progress of one exercise within a recorded session
type SessionExercise struct {
	ID               uint    `gorm:"primarykey" json:"id"`
	WorkoutSessionID uint    `gorm:"not null;index" json:"workout_session_id"`
	Position         int     `gorm:"not null" json:"position"` // order inside the routine
	Name             string  `gorm:"not null" json:"name"`
	Weight           float64 `json:"weight"`
	Reps             int     `json:"reps"`
	Sets             int     `json:"sets"`
	CompletedSets    int     `json:"completed_sets"`
}

// Duration returns the recorded session length
func (s WorkoutSession) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

// Volume returns weight × reps summed over completed sets
func (s WorkoutSession) Volume() float64 {
	var v float64
	for _, e := range s.Exercises {
		v += e.Weight * float64(e.Reps*e.CompletedSets)
	}
	return v
}
