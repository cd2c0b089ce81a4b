package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/types"
	"gorm.io/gorm"
)

// SettingsHandler serves the user settings routes
type SettingsHandler struct {
	DB      *gorm.DB
	Metrics *metrics.Manager
}

// UpdateUserSettingsRequest is the body of PUT /api/settings. Omitted fields keep their value.
type UpdateUserSettingsRequest struct {
	UserID                    string `json:"user_id"`
	TimerDuration             *int   `json:"timer_duration,omitempty"`
	DarkMode                  *bool  `json:"dark_mode,omitempty"`
	BodyMetricReminderEnabled *bool  `json:"body_metric_reminder_enabled,omitempty"`
}

// GetUserSettings handles GET /api/settings
// @Summary Get user settings
// @Description Get the user's settings, creating the defaults on first access
// @Tags Settings
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /settings [get]
func (h *SettingsHandler) GetUserSettings(c *fiber.Ctx) error {
	verr := &types.ValidationError{}
	userID := c.Query("user_id")
	if err := validateUserID(c, userID, verr); err != nil {
		return err
	}
	if err := verr.Err(); err != nil {
		return err
	}

	settings, err := services.GetUserSettings(withContext(h.DB, c), userID)
	if err != nil {
		return err
	}

	h.Metrics.CounterSettingsUpserts.WithLabelValues("get").Inc()

	return c.JSON(settings)
}

// UpdateUserSettings handles PUT and PATCH /api/settings
// @Summary Update user settings
// @Description Upsert the provided fields, new rows take the defaults for the rest
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body UpdateUserSettingsRequest true "Fields to change"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /settings [put]
func (h *SettingsHandler) UpdateUserSettings(c *fiber.Ctx) error {
	var req UpdateUserSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	verr := &types.ValidationError{}
	if err := validateUserID(c, req.UserID, verr); err != nil {
		return err
	}
	if req.TimerDuration != nil && *req.TimerDuration <= 0 {
		verr.Add("timer_duration", "must be a positive integer")
	}
	if err := verr.Err(); err != nil {
		return err
	}

	settings, err := services.UpdateUserSettings(withContext(h.DB, c), services.UpdateUserSettingsInput{
		UserID:                    req.UserID,
		TimerDuration:             req.TimerDuration,
		DarkMode:                  req.DarkMode,
		BodyMetricReminderEnabled: req.BodyMetricReminderEnabled,
	})
	if err != nil {
		return err
	}

	h.Metrics.CounterSettingsUpserts.WithLabelValues("update").Inc()

	return c.JSON(settings)
}
