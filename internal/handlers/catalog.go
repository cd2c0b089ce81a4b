package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/utils"
	"gorm.io/gorm"
)

// CatalogHandler seeds the training catalog
type CatalogHandler struct {
	DB      *gorm.DB
	Metrics *metrics.Manager
}

// InitializeTrainingData handles POST /api/catalog/initialize
// @Summary Seed the training catalog
// @Description Insert the built-in sessions, exercises and series. Each call inserts a new copy.
// @Tags Catalog
// @Produce json
// @Success 201 {object} services.TrainingData
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/initialize [post]
func (h *CatalogHandler) InitializeTrainingData(c *fiber.Ctx) error {
	data, err := services.InitializeTrainingData(withContext(h.DB, c))
	if err != nil {
		return err
	}

	h.Metrics.CounterCatalogSeeds.Inc()

	return utils.SuccessResponse(c, data, fiber.StatusCreated)
}
