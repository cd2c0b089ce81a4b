package services

import (
	"errors"
	"fmt"

	"github.com/localnerve/workout-tracker/internal/models"
	"gorm.io/gorm"
)

// ExerciseWithSeries is an exercise merged with its target series
type ExerciseWithSeries struct {
	models.Exercise
	Series []models.Series `json:"series"`
}

// GetTrainingSessions returns every training session
func GetTrainingSessions(db *gorm.DB) ([]models.TrainingSession, error) {
	sessions := []models.TrainingSession{}
	if err := db.Order("id ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("get training sessions: %w", err)
	}
	return sessions, nil
}

// GetExercisesBySession returns the exercises of one session, empty if the id is unknown
func GetExercisesBySession(db *gorm.DB, sessionID uint64) ([]models.Exercise, error) {
	exercises := []models.Exercise{}
	err := db.Where("training_session_id = ?", sessionID).
		Order("id ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("get exercises for session %d: %w", sessionID, err)
	}
	return exercises, nil
}

// GetExerciseWithSeries returns the exercise and its series ordered by series_number
func GetExerciseWithSeries(db *gorm.DB, exerciseID uint64) (*ExerciseWithSeries, error) {
	var exercise models.Exercise
	err := db.Preload("Sets", func(db *gorm.DB) *gorm.DB {
		return db.Order("series_number ASC")
	}).First(&exercise, exerciseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "exercise", ID: exerciseID}
		}
		return nil, fmt.Errorf("get exercise %d: %w", exerciseID, err)
	}

	series := exercise.Sets
	if series == nil {
		series = []models.Series{}
	}
	exercise.Sets = nil

	return &ExerciseWithSeries{
		Exercise: exercise,
		Series:   series,
	}, nil
}
