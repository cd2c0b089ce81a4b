package services

import (
	"errors"
	"testing"

	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrainingSessions(t *testing.T) {
	db := setupTestDB(t)

	sessions, err := GetTrainingSessions(db)
	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)

	createSession(t, db, "Pull", models.TrainingTypePull)
	createSession(t, db, "Push", models.TrainingTypePush)

	sessions, err = GetTrainingSessions(db)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Pull", sessions[0].Name)
	assert.Equal(t, "Push", sessions[1].Name)
}

func TestGetExercisesBySession_OnlyOwnSession(t *testing.T) {
	db := setupTestDB(t)

	pull := createSession(t, db, "Pull", models.TrainingTypePull)
	legs := createSession(t, db, "Legs", models.TrainingTypeLegs)
	createExercise(t, db, pull.ID, "Rows", 3)
	createExercise(t, db, pull.ID, "Curls", 2)
	createExercise(t, db, legs.ID, "Squats", 4)

	exercises, err := GetExercisesBySession(db, pull.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	for _, e := range exercises {
		assert.Equal(t, pull.ID, e.TrainingSessionID)
	}

	exercises, err = GetExercisesBySession(db, legs.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Squats", exercises[0].Name)

	exercises, err = GetExercisesBySession(db, 9999)
	require.NoError(t, err)
	assert.NotNil(t, exercises)
	assert.Empty(t, exercises)
}

func TestGetExerciseWithSeries_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetExerciseWithSeries(db, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "exercise", nf.Entity)
	assert.Equal(t, uint64(42), nf.ID)
	assert.Equal(t, "exercise with id 42 does not exist", err.Error())
}

func TestGetExerciseWithSeries_EmptySeries(t *testing.T) {
	db := setupTestDB(t)

	session := createSession(t, db, "Push", models.TrainingTypePush)
	exercise := createExercise(t, db, session.ID, "Dips", 3)

	result, err := GetExerciseWithSeries(db, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dips", result.Name)
	assert.NotNil(t, result.Series)
	assert.Empty(t, result.Series)
}

func TestGetExerciseWithSeries_Ordered(t *testing.T) {
	db := setupTestDB(t)

	session := createSession(t, db, "Push", models.TrainingTypePush)
	exercise := createExercise(t, db, session.ID, "Bench", 3)
	for _, n := range []int{3, 1, 2} {
		require.NoError(t, db.Create(&models.Series{
			ExerciseID:        exercise.ID,
			SeriesNumber:      n,
			TargetRepetitions: 10 - n,
		}).Error)
	}

	result, err := GetExerciseWithSeries(db, exercise.ID)
	require.NoError(t, err)
	require.Len(t, result.Series, 3)
	for i, s := range result.Series {
		assert.Equal(t, i+1, s.SeriesNumber)
		assert.Equal(t, exercise.ID, s.ExerciseID)
	}
}
