package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/localnerve/workout-tracker/internal/containers"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupContainerDB starts the database described by DB_TYPE and DB_IMAGE
func setupContainerDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	opts := containers.OptionsFromEnv()
	if opts.Image == "" {
		t.Skip("DB_IMAGE not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := containers.StartDatabase(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate %s container: %v", opts.DBType, err)
		}
	})

	db, err := database.Connect(container.Config())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.AutoMigrate(db))
	// a second run must leave the schema alone
	require.NoError(t, database.AutoMigrate(db))

	return db
}

func TestIntegration_Workflow(t *testing.T) {
	db := setupContainerDB(t)

	data, err := InitializeTrainingData(db)
	require.NoError(t, err)
	require.Len(t, data.TrainingSessions, len(trainingCatalog))

	exercises, err := GetExercisesBySession(db, data.TrainingSessions[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, exercises)
	exercise := exercises[0]

	withSeries, err := GetExerciseWithSeries(db, exercise.ID)
	require.NoError(t, err)
	assert.Len(t, withSeries.Series, exercise.TargetSeries)

	userID := newUserID()
	earlier := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	latest := time.Date(2026, 5, 8, 10, 0, 0, 0, time.UTC)
	for _, entry := range []struct {
		series int
		at     time.Time
	}{{1, earlier}, {2, latest}, {1, latest}} {
		at := entry.at
		_, err := CreateUserExerciseLog(db, CreateUserExerciseLogInput{
			UserID:       userID,
			ExerciseID:   exercise.ID,
			SeriesNumber: entry.series,
			Repetitions:  10,
			Weight:       20,
			CompletedAt:  &at,
		})
		require.NoError(t, err)
	}

	last, err := GetLastExercisePerformance(db, userID, exercise.ID)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, 1, last[0].SeriesNumber)
	assert.Equal(t, 2, last[1].SeriesNumber)

	logs, err := GetUserExerciseLogs(db, UserExerciseLogQuery{UserID: userID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.True(t, logs[0].CompletedAt.Equal(latest))

	_, err = CreateUserExerciseLog(db, CreateUserExerciseLogInput{
		UserID: userID, ExerciseID: 999999, SeriesNumber: 1, Repetitions: 1,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	recorded := time.Date(2026, 5, 2, 7, 0, 0, 0, time.UTC)
	_, err = CreateBodyMetric(db, CreateBodyMetricInput{
		UserID: userID, MetricType: models.BodyMetricWaist, Value: 80.5, Unit: "cm", RecordedAt: &recorded,
	})
	require.NoError(t, err)
	metrics, err := GetBodyMetrics(db, BodyMetricQuery{UserID: userID})
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, models.BodyMetricWaist, metrics[0].MetricType)
}

func TestIntegration_SettingsUpsert(t *testing.T) {
	db := setupContainerDB(t)
	userID := newUserID()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := GetUserSettings(db, userID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.UserSettings{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	reminder := false
	timer := 90
	settings, err := UpdateUserSettings(db, UpdateUserSettingsInput{
		UserID: userID, TimerDuration: &timer, BodyMetricReminderEnabled: &reminder,
	})
	require.NoError(t, err)
	assert.Equal(t, 90, settings.TimerDuration)
	assert.Equal(t, models.DefaultDarkMode, settings.DarkMode)
	assert.False(t, settings.BodyMetricReminderEnabled)
}
