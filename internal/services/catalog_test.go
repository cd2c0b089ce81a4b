package services

import (
	"testing"

	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepTarget(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"10 - 12", 10},
		{"15-20", 15},
		{"4/6/8", 4},
		{"5,4,3+ each", 5},
		{"8", 8},
		{" 12 ", 12},
		{"6-8/10", 6},
		{"12 / 10", 12},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRepTarget(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRepTarget_Invalid(t *testing.T) {
	for _, in := range []string{"", "AMRAP", "max-20", "x/8"} {
		_, err := ParseRepTarget(in)
		assert.Error(t, err, in)
	}
}

func TestTrainingCatalog_RepTargetsParse(t *testing.T) {
	for _, sd := range trainingCatalog {
		assert.True(t, sd.Type.IsValid(), sd.Name)
		for _, ed := range sd.Exercises {
			_, err := ParseRepTarget(ed.Reps)
			assert.NoError(t, err, ed.Name)
			assert.GreaterOrEqual(t, ed.Sets, 2, ed.Name)
			assert.LessOrEqual(t, ed.Sets, 4, ed.Name)
		}
	}
}

func TestInitializeTrainingData(t *testing.T) {
	db := setupTestDB(t)

	empty, err := CatalogIsEmpty(db)
	require.NoError(t, err)
	assert.True(t, empty)

	data, err := InitializeTrainingData(db)
	require.NoError(t, err)

	require.Len(t, data.TrainingSessions, 8)
	byType := map[models.TrainingType]int{}
	for i, session := range data.TrainingSessions {
		assert.NotZero(t, session.ID)
		assert.Equal(t, trainingCatalog[i].Name, session.Name)
		byType[session.Type]++
	}
	assert.Equal(t, 2, byType[models.TrainingTypePull])
	assert.Equal(t, 2, byType[models.TrainingTypePush])
	assert.Equal(t, 2, byType[models.TrainingTypeLegs])
	assert.Equal(t, 2, byType[models.TrainingTypeOther])

	wantSeries := 0
	for _, sd := range trainingCatalog {
		for _, ed := range sd.Exercises {
			wantSeries += ed.Sets
		}
	}
	assert.Len(t, data.Series, wantSeries)

	for _, session := range data.TrainingSessions {
		exercises, err := GetExercisesBySession(db, session.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, exercises)
	}

	// each exercise has series 1..target_series with the parsed reps and zero weight
	for _, exercise := range data.Exercises {
		withSeries, err := GetExerciseWithSeries(db, exercise.ID)
		require.NoError(t, err)
		require.Len(t, withSeries.Series, exercise.TargetSeries)
		for i, s := range withSeries.Series {
			assert.Equal(t, i+1, s.SeriesNumber)
			assert.Positive(t, s.TargetRepetitions)
			assert.Zero(t, s.TargetWeight)
		}
	}

	bench := findExercise(t, data.Exercises, "Bench Press")
	benchSeries, err := GetExerciseWithSeries(db, bench.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, benchSeries.Series[0].TargetRepetitions)

	empty, err = CatalogIsEmpty(db)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestInitializeTrainingData_NotIdempotent(t *testing.T) {
	db := setupTestDB(t)

	_, err := InitializeTrainingData(db)
	require.NoError(t, err)
	_, err = InitializeTrainingData(db)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.TrainingSession{}).Count(&count).Error)
	assert.Equal(t, int64(16), count)
}

func TestSeedCatalog_InvalidRepsRollsBack(t *testing.T) {
	db := setupTestDB(t)

	bad := []sessionDefinition{
		{
			Name: "Broken", Type: models.TrainingTypeOther, Description: "bad literal",
			Exercises: []exerciseDefinition{
				{Name: "Good", Sets: 2, Reps: "10"},
				{Name: "Bad", Sets: 2, Reps: "AMRAP"},
			},
		},
	}

	_, err := seedCatalog(db, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AMRAP")

	var sessions, exercises, series int64
	db.Model(&models.TrainingSession{}).Count(&sessions)
	db.Model(&models.Exercise{}).Count(&exercises)
	db.Model(&models.Series{}).Count(&series)
	assert.Zero(t, sessions)
	assert.Zero(t, exercises)
	assert.Zero(t, series)
}

func findExercise(t *testing.T, exercises []models.Exercise, name string) models.Exercise {
	t.Helper()
	for _, e := range exercises {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("exercise %q not found", name)
	return models.Exercise{}
}
