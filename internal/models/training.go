// training.go
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

package models

import (
	"time"
)

// TrainingSession is a named workout in the catalog
type TrainingSession struct {
	ID          uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	Type        TrainingType `gorm:"not null;check:chk_training_sessions_type,type IN ('pull','push','legs','other')" json:"type"`
	Description *string      `gorm:"type:text" json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	Exercises   []Exercise   `gorm:"foreignKey:TrainingSessionID" json:"-"`
}

// Exercise belongs to a training session and prescribes a number of target series
type Exercise struct {
	ID                uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	TrainingSessionID uint64            `gorm:"not null;index" json:"training_session_id"`
	Name              string            `gorm:"size:255;not null" json:"name"`
	Description       *string           `gorm:"type:text" json:"description"`
	TargetSeries      int               `gorm:"not null;check:chk_exercises_target_series,target_series BETWEEN 2 AND 4" json:"target_series"`
	CreatedAt         time.Time         `json:"created_at"`
	Sets              []Series          `gorm:"foreignKey:ExerciseID" json:"-"`
	Logs              []UserExerciseLog `gorm:"foreignKey:ExerciseID" json:"-"`
}

// Series is the prescribed target for one set of an exercise
type Series struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ExerciseID        uint64    `gorm:"not null;uniqueIndex:idx_series_exercise_number,priority:1" json:"exercise_id"`
	SeriesNumber      int       `gorm:"not null;uniqueIndex:idx_series_exercise_number,priority:2;check:chk_series_number,series_number BETWEEN 1 AND 4" json:"series_number"`
	TargetRepetitions int       `gorm:"not null;check:chk_series_target_repetitions,target_repetitions > 0" json:"target_repetitions"`
	TargetWeight      float64   `gorm:"not null;check:chk_series_target_weight,target_weight >= 0" json:"target_weight"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName overrides the table name for TrainingSession
func (TrainingSession) TableName() string {
	return "training_sessions"
}

// TableName overrides the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}

// TableName overrides the table name for Series
func (Series) TableName() string {
	return "series"
}
