// user.go
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

// Defaults applied when a settings row is first created
const (
	DefaultTimerDuration             = 120
	DefaultDarkMode                  = true
	DefaultBodyMetricReminderEnabled = true
)

// UserExerciseLog records one performed set
type UserExerciseLog struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"size:255;not null;index:idx_user_exercise_logs_lookup,priority:1" json:"user_id"`
	ExerciseID   uint64    `gorm:"not null;index:idx_user_exercise_logs_lookup,priority:2" json:"exercise_id"`
	SeriesNumber int       `gorm:"not null;check:chk_user_exercise_logs_series_number,series_number BETWEEN 1 AND 4" json:"series_number"`
	Repetitions  int       `gorm:"not null;check:chk_user_exercise_logs_repetitions,repetitions > 0" json:"repetitions"`
	Weight       float64   `gorm:"not null;check:chk_user_exercise_logs_weight,weight >= 0" json:"weight"`
	CompletedAt  time.Time `gorm:"not null;index:idx_user_exercise_logs_lookup,priority:3" json:"completed_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// BodyMetric records one body measurement
type BodyMetric struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string         `gorm:"size:255;not null;index:idx_body_metrics_lookup,priority:1" json:"user_id"`
	MetricType BodyMetricType `gorm:"not null;index:idx_body_metrics_lookup,priority:2;check:chk_body_metrics_metric_type,metric_type IN ('arms','legs','core','chest','shoulders','waist','weight')" json:"metric_type"`
	Value      float64        `gorm:"not null;check:chk_body_metrics_value,value > 0" json:"value"`
	Unit       string         `gorm:"size:16;not null" json:"unit"`
	RecordedAt time.Time      `gorm:"not null;index:idx_body_metrics_lookup,priority:3" json:"recorded_at"`
	CreatedAt  time.Time      `json:"created_at"`
}

// UserSettings holds one user's preferences. Bool and int columns carry no
// default tag because GORM omits zero values from the insert when one is set.
type UserSettings struct {
	ID                        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                    string    `gorm:"size:255;not null;uniqueIndex:idx_user_settings_user_id" json:"user_id"`
	TimerDuration             int       `gorm:"not null" json:"timer_duration"`
	DarkMode                  bool      `gorm:"not null" json:"dark_mode"`
	BodyMetricReminderEnabled bool      `gorm:"not null" json:"body_metric_reminder_enabled"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// NewDefaultUserSettings returns an unsaved settings row with the default values
func NewDefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:                    userID,
		TimerDuration:             DefaultTimerDuration,
		DarkMode:                  DefaultDarkMode,
		BodyMetricReminderEnabled: DefaultBodyMetricReminderEnabled,
	}
}

// TableName overrides the table name for UserExerciseLog
func (UserExerciseLog) TableName() string {
	return "user_exercise_logs"
}

// TableName overrides the table name for BodyMetric
func (BodyMetric) TableName() string {
	return "body_metrics"
}

// TableName overrides the table name for UserSettings
func (UserSettings) TableName() string {
	return "user_settings"
}
