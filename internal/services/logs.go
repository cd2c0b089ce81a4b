// logs.go
//
// A personal workout tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of workout-tracker.
// workout-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// workout-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with workout-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"fmt"
	"time"

	"github.com/localnerve/workout-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// DefaultPageLimit is used when a list query gives no limit
const DefaultPageLimit = 50

// CreateUserExerciseLogInput is one completed set
type CreateUserExerciseLogInput struct {
	UserID       string
	ExerciseID   uint64
	SeriesNumber int
	Repetitions  int
	Weight       float64
	CompletedAt  *time.Time
}

// UserExerciseLogQuery filters and pages a user's logs
type UserExerciseLogQuery struct {
	UserID     string
	ExerciseID *uint64
	Limit      int
	Offset     int
}

// CreateUserExerciseLog records a set after checking the exercise exists
func CreateUserExerciseLog(db *gorm.DB, input CreateUserExerciseLogInput) (*models.UserExerciseLog, error) {
	var count int64
	err := db.Model(&models.Exercise{}).
		Where("id = ?", input.ExerciseID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check exercise %d: %w", input.ExerciseID, err)
	}
	if count == 0 {
		return nil, &NotFoundError{Entity: "exercise", ID: input.ExerciseID}
	}

	log := models.UserExerciseLog{
		UserID:       input.UserID,
		ExerciseID:   input.ExerciseID,
		SeriesNumber: input.SeriesNumber,
		Repetitions:  input.Repetitions,
		Weight:       input.Weight,
		CompletedAt:  timestampOrNow(input.CompletedAt),
	}
	if err := db.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("create exercise log: %w", err)
	}

	return &log, nil
}

// GetUserExerciseLogs returns a page of logs, newest first
func GetUserExerciseLogs(db *gorm.DB, q UserExerciseLogQuery) ([]models.UserExerciseLog, error) {
	limit, offset := pageBounds(q.Limit, q.Offset)

	query := withIndexHint(db.Model(&models.UserExerciseLog{}), "idx_user_exercise_logs_lookup").
		Where("user_id = ?", q.UserID)
	if q.ExerciseID != nil {
		query = query.Where("exercise_id = ?", *q.ExerciseID)
	}

	logs := []models.UserExerciseLog{}
	err := query.Order("completed_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("get exercise logs: %w", err)
	}

	return logs, nil
}

// GetLastExercisePerformance returns every log sharing the user's latest
// completed_at for the exercise, ordered by series_number. Sets logged at the
// same instant on different occasions are returned together.
func GetLastExercisePerformance(db *gorm.DB, userID string, exerciseID uint64) ([]models.UserExerciseLog, error) {
	latest := db.Model(&models.UserExerciseLog{}).
		Select("MAX(completed_at)").
		Where("user_id = ? AND exercise_id = ?", userID, exerciseID)

	logs := []models.UserExerciseLog{}
	err := db.Where("user_id = ? AND exercise_id = ? AND completed_at = (?)", userID, exerciseID, latest).
		Order("series_number ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("get last performance for exercise %d: %w", exerciseID, err)
	}

	return logs, nil
}

// pageBounds applies the default limit and clamps a negative offset
func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// withIndexHint adds a USE INDEX hint on MySQL, the other dialects pick the index themselves
func withIndexHint(db *gorm.DB, index string) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Clauses(hints.UseIndex(index))
	}
	return db
}

func timestampOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
