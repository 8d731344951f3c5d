package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/workout"
)

// RecordSession stores a finished workout with per-exercise progress
func (j *Journal) RecordSession(sum workout.Summary) (*models.WorkoutSession, error) {
	session := models.WorkoutSession{
		RoutineName:     sum.Routine.Name,
		StartedAt:       sum.StartedAt,
		FinishedAt:      sum.FinishedAt,
		DurationSeconds: int(sum.Elapsed / time.Second),
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = sum.FinishedAt.Add(-sum.Elapsed)
	}

	for i, e := range sum.Routine.Exercises {
		session.Exercises = append(session.Exercises, models.SessionExercise{
			Position:      i,
			Name:          e.Name,
			Weight:        e.Weight,
			Reps:          e.Reps,
			Sets:          e.Sets,
			CompletedSets: e.CompletedSets,
		})
	}

	if err := j.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	return &session, nil
}

// SessionsInRange returns all sessions started within the specified range
func (j *Journal) SessionsInRange(startTime, endTime time.Time) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession

	err := j.db.Where("started_at >= ? AND started_at <= ?", startTime, endTime).
		Preload("Exercises", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Order("started_at ASC").
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// RecentSessions returns the latest sessions, newest first
func (j *Journal) RecentSessions(limit int) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession

	err := j.db.Preload("Exercises", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Clear removes every recorded session
func (j *Journal) Clear() error {
	return j.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.SessionExercise{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&models.WorkoutSession{}).Error
	})
}
