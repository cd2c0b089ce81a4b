package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/types"
	"gorm.io/gorm"
)

// TrainingHandler serves the read only catalog routes
type TrainingHandler struct {
	DB *gorm.DB
}

// GetTrainingSessions handles GET /api/sessions
// @Summary List training sessions
// @Description Get every training session in the catalog
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.TrainingSession
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions [get]
func (h *TrainingHandler) GetTrainingSessions(c *fiber.Ctx) error {
	sessions, err := services.GetTrainingSessions(withContext(h.DB, c))
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

// GetExercisesBySession handles GET /api/sessions/:sessionId/exercises
// @Summary List exercises of a session
// @Description Get the exercises of one training session, empty when the session is unknown
// @Tags Catalog
// @Produce json
// @Param sessionId path int true "Training session ID"
// @Success 200 {array} models.Exercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions/{sessionId}/exercises [get]
func (h *TrainingHandler) GetExercisesBySession(c *fiber.Ctx) error {
	verr := &types.ValidationError{}
	sessionID := parseIDParam(c, "sessionId", verr)
	if err := verr.Err(); err != nil {
		return err
	}

	exercises, err := services.GetExercisesBySession(withContext(h.DB, c), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(exercises)
}

// GetExerciseWithSeries handles GET /api/exercises/:exerciseId
// @Summary Get an exercise with its series
// @Description Get one exercise merged with its target series ordered by series number
// @Tags Catalog
// @Produce json
// @Param exerciseId path int true "Exercise ID"
// @Success 200 {object} services.ExerciseWithSeries
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises/{exerciseId} [get]
func (h *TrainingHandler) GetExerciseWithSeries(c *fiber.Ctx) error {
	verr := &types.ValidationError{}
	exerciseID := parseIDParam(c, "exerciseId", verr)
	if err := verr.Err(); err != nil {
		return err
	}

	exercise, err := services.GetExerciseWithSeries(withContext(h.DB, c), exerciseID)
	if err != nil {
		return err
	}
	return c.JSON(exercise)
}
