package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fancybaby404/FitTrack/internal/models"
)

// Journal is the sqlite record of finished workout sessions
type Journal struct {
	db *gorm.DB
}

// Open sets up the database connection and runs migrations
func Open(path string) (*Journal, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	j := &Journal{db: db}
	if err := j.runMigrations(); err != nil {
		j.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return j, nil
}

// runMigrations creates/updates the database schema
func (j *Journal) runMigrations() error {
	return j.db.AutoMigrate(
		&models.WorkoutSession{},
		&models.SessionExercise{},
	)
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
