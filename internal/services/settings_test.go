package services

import (
	"sync"
	"testing"

	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserSettings_CreatesDefaultsOnce(t *testing.T) {
	db := setupTestDB(t)
	userID := newUserID()

	first, err := GetUserSettings(db, userID)
	require.NoError(t, err)
	second, err := GetUserSettings(db, userID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.DefaultTimerDuration, second.TimerDuration)
	assert.True(t, second.DarkMode)
	assert.True(t, second.BodyMetricReminderEnabled)

	var count int64
	require.NoError(t, db.Model(&models.UserSettings{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUserSettings_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	userID := newUserID()

	var wg sync.WaitGroup
	ids := make([]uint64, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := GetUserSettings(db, userID)
			if assert.NoError(t, err) {
				ids[i] = s.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	var count int64
	require.NoError(t, db.Model(&models.UserSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateUserSettings_PartialKeepsStoredValues(t *testing.T) {
	db := setupTestDB(t)
	userID := newUserID()

	timer := 90
	off := false
	stored, err := UpdateUserSettings(db, UpdateUserSettingsInput{
		UserID:                    userID,
		TimerDuration:             &timer,
		DarkMode:                  &off,
		BodyMetricReminderEnabled: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, 90, stored.TimerDuration)
	assert.False(t, stored.DarkMode)
	assert.False(t, stored.BodyMetricReminderEnabled)

	on := true
	updated, err := UpdateUserSettings(db, UpdateUserSettingsInput{
		UserID:                    userID,
		BodyMetricReminderEnabled: &on,
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, 90, updated.TimerDuration)
	assert.False(t, updated.DarkMode)
	assert.True(t, updated.BodyMetricReminderEnabled)
	assert.False(t, updated.UpdatedAt.Before(stored.UpdatedAt))
}

func TestUpdateUserSettings_NewRowUsesDefaults(t *testing.T) {
	db := setupTestDB(t)
	userID := newUserID()

	off := false
	settings, err := UpdateUserSettings(db, UpdateUserSettingsInput{
		UserID:   userID,
		DarkMode: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTimerDuration, settings.TimerDuration)
	assert.False(t, settings.DarkMode)
	assert.Equal(t, models.DefaultBodyMetricReminderEnabled, settings.BodyMetricReminderEnabled)

	again, err := GetUserSettings(db, userID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
	assert.False(t, again.DarkMode)
}
