package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB creates a migrated in-memory SQLite database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(&config.Config{
		DBType:     "sqlite",
		DBDatabase: ":memory:",
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newUserID() string {
	return uuid.NewString()
}

func createSession(t *testing.T, db *gorm.DB, name string, trainingType models.TrainingType) models.TrainingSession {
	t.Helper()
	session := models.TrainingSession{Name: name, Type: trainingType}
	require.NoError(t, db.Create(&session).Error)
	return session
}

func createExercise(t *testing.T, db *gorm.DB, sessionID uint64, name string, targetSeries int) models.Exercise {
	t.Helper()
	exercise := models.Exercise{TrainingSessionID: sessionID, Name: name, TargetSeries: targetSeries}
	require.NoError(t, db.Create(&exercise).Error)
	return exercise
}
