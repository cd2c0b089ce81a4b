package handlers_test

import (
	"net/http"
	"testing"

	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserSettings_Defaults(t *testing.T) {
	env := setupTestApp(t)
	userID := newUserID()

	resp := env.do(t, http.MethodGet, "/api/settings?user_id="+userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings models.UserSettings
	decode(t, resp, &settings)
	assert.Equal(t, userID, settings.UserID)
	assert.Equal(t, models.DefaultTimerDuration, settings.TimerDuration)
	assert.Equal(t, models.DefaultDarkMode, settings.DarkMode)
	assert.Equal(t, models.DefaultBodyMetricReminderEnabled, settings.BodyMetricReminderEnabled)
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.CounterSettingsUpserts.WithLabelValues("get")))

	var count int64
	require.NoError(t, env.db.Model(&models.UserSettings{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateUserSettings(t *testing.T) {
	env := setupTestApp(t)
	userID := newUserID()

	resp := env.do(t, http.MethodPut, "/api/settings", map[string]any{
		"user_id":        userID,
		"timer_duration": 90,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settings models.UserSettings
	decode(t, resp, &settings)
	assert.Equal(t, 90, settings.TimerDuration)
	assert.Equal(t, models.DefaultDarkMode, settings.DarkMode)

	resp = env.do(t, http.MethodPatch, "/api/settings", map[string]any{
		"user_id":   userID,
		"dark_mode": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &settings)
	assert.Equal(t, 90, settings.TimerDuration)
	assert.False(t, settings.DarkMode)
	assert.Equal(t, float64(2), testutil.ToFloat64(env.metrics.CounterSettingsUpserts.WithLabelValues("update")))

	t.Run("invalid timer", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/api/settings", map[string]any{
			"user_id":        userID,
			"timer_duration": 0,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var eb errorBody
		decode(t, resp, &eb)
		assert.True(t, eb.hasField("timer_duration"))
	})
}
