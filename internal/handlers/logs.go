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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/types"
	"github.com/localnerve/workout-tracker/internal/utils"
	"gorm.io/gorm"
)

// LogHandler serves the exercise log routes
type LogHandler struct {
	DB      *gorm.DB
	Metrics *metrics.Manager
}

// CreateUserExerciseLogRequest is the body of POST /api/logs
type CreateUserExerciseLogRequest struct {
	UserID       string           `json:"user_id"`
	ExerciseID   types.FlexUint64 `json:"exercise_id" swaggertype:"integer"`
	SeriesNumber *int             `json:"series_number"`
	Repetitions  *int             `json:"repetitions"`
	Weight       *float64         `json:"weight"`
	CompletedAt  *string          `json:"completed_at,omitempty" example:"2026-05-01T18:30:00Z"`
}

// CreateUserExerciseLog handles POST /api/logs
// @Summary Log a completed set
// @Description Record one performed set. The exercise must exist.
// @Tags Logs
// @Accept json
// @Produce json
// @Param request body CreateUserExerciseLogRequest true "Completed set"
// @Success 201 {object} models.UserExerciseLog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /logs [post]
func (h *LogHandler) CreateUserExerciseLog(c *fiber.Ctx) error {
	var req CreateUserExerciseLogRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	verr := &types.ValidationError{}
	if err := validateUserID(c, req.UserID, verr); err != nil {
		return err
	}
	if req.ExerciseID == 0 {
		verr.Add("exercise_id", "must be a positive integer")
	}
	switch {
	case req.SeriesNumber == nil:
		verr.Add("series_number", "is required")
	case *req.SeriesNumber < 1 || *req.SeriesNumber > 4:
		verr.Add("series_number", "must be between 1 and 4")
	}
	switch {
	case req.Repetitions == nil:
		verr.Add("repetitions", "is required")
	case *req.Repetitions <= 0:
		verr.Add("repetitions", "must be a positive integer")
	}
	switch {
	case req.Weight == nil:
		verr.Add("weight", "is required")
	case *req.Weight < 0:
		verr.Add("weight", "must not be negative")
	}
	completedAt := parseTimestamp("completed_at", req.CompletedAt, verr)
	if err := verr.Err(); err != nil {
		return err
	}

	log, err := services.CreateUserExerciseLog(withContext(h.DB, c), services.CreateUserExerciseLogInput{
		UserID:       req.UserID,
		ExerciseID:   req.ExerciseID.Uint64(),
		SeriesNumber: *req.SeriesNumber,
		Repetitions:  *req.Repetitions,
		Weight:       *req.Weight,
		CompletedAt:  completedAt,
	})
	if err != nil {
		return err
	}

	h.Metrics.CounterSetsLogged.Inc()

	return utils.SuccessResponse(c, log, fiber.StatusCreated)
}

// GetUserExerciseLogs handles GET /api/logs
// @Summary List a user's logged sets
// @Description Get a page of logged sets, newest first
// @Tags Logs
// @Produce json
// @Param user_id query string true "User ID"
// @Param exercise_id query int false "Only this exercise"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.UserExerciseLog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /logs [get]
func (h *LogHandler) GetUserExerciseLogs(c *fiber.Ctx) error {
	verr := &types.ValidationError{}
	userID := c.Query("user_id")
	if err := validateUserID(c, userID, verr); err != nil {
		return err
	}
	exerciseID := parseOptionalID(c, "exercise_id", verr)
	limit, offset := parsePagination(c, verr)
	if err := verr.Err(); err != nil {
		return err
	}

	logs, err := services.GetUserExerciseLogs(withContext(h.DB, c), services.UserExerciseLogQuery{
		UserID:     userID,
		ExerciseID: exerciseID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(logs)
}

// GetLastExercisePerformance handles GET /api/logs/last
// @Summary Last performance of an exercise
// @Description Get every set the user logged at their most recent completion time for the exercise
// @Tags Logs
// @Produce json
// @Param user_id query string true "User ID"
// @Param exercise_id query int true "Exercise ID"
// @Success 200 {array} models.UserExerciseLog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /logs/last [get]
func (h *LogHandler) GetLastExercisePerformance(c *fiber.Ctx) error {
	verr := &types.ValidationError{}
	userID := c.Query("user_id")
	if err := validateUserID(c, userID, verr); err != nil {
		return err
	}
	exerciseID := parseRequiredID(c, "exercise_id", verr)
	if err := verr.Err(); err != nil {
		return err
	}

	logs, err := services.GetLastExercisePerformance(withContext(h.DB, c), userID, exerciseID)
	if err != nil {
		return err
	}
	return c.JSON(logs)
}
