// settings.go
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

	"github.com/localnerve/workout-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateUserSettingsInput carries the fields to change, nil means keep
type UpdateUserSettingsInput struct {
	UserID                    string
	TimerDuration             *int
	DarkMode                  *bool
	BodyMetricReminderEnabled *bool
}

var userIDConflict = []clause.Column{{Name: "user_id"}}

// GetUserSettings returns the user's settings, creating the default row on first access.
// The insert relies on the unique user_id index so concurrent first reads create one row.
func GetUserSettings(db *gorm.DB, userID string) (*models.UserSettings, error) {
	defaults := models.NewDefaultUserSettings(userID)
	err := db.Clauses(clause.OnConflict{
		Columns:   userIDConflict,
		DoNothing: true,
	}).Create(&defaults).Error
	if err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	return findUserSettings(db, userID)
}

// UpdateUserSettings upserts the provided fields. A new row takes the defaults
// for the fields not provided, an existing row keeps its stored values.
func UpdateUserSettings(db *gorm.DB, input UpdateUserSettingsInput) (*models.UserSettings, error) {
	row := models.NewDefaultUserSettings(input.UserID)
	columns := make([]string, 0, 4)

	if input.TimerDuration != nil {
		row.TimerDuration = *input.TimerDuration
		columns = append(columns, "timer_duration")
	}
	if input.DarkMode != nil {
		row.DarkMode = *input.DarkMode
		columns = append(columns, "dark_mode")
	}
	if input.BodyMetricReminderEnabled != nil {
		row.BodyMetricReminderEnabled = *input.BodyMetricReminderEnabled
		columns = append(columns, "body_metric_reminder_enabled")
	}
	columns = append(columns, "updated_at")

	err := db.Clauses(clause.OnConflict{
		Columns:   userIDConflict,
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}

	return findUserSettings(db, input.UserID)
}

func findUserSettings(db *gorm.DB, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return &settings, nil
}
