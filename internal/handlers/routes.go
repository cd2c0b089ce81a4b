package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/middleware"
	"gorm.io/gorm"
)

// Dependencies are shared by every handler
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Manager
}

// RegisterRoutes mounts the API on router, normally the /api group
func RegisterRoutes(router fiber.Router, deps Dependencies) {
	health := &HealthHandler{DB: deps.DB, Config: deps.Config}
	training := &TrainingHandler{DB: deps.DB}
	logs := &LogHandler{DB: deps.DB, Metrics: deps.Metrics}
	bodyMetrics := &BodyMetricHandler{DB: deps.DB, Metrics: deps.Metrics}
	settings := &SettingsHandler{DB: deps.DB, Metrics: deps.Metrics}
	catalog := &CatalogHandler{DB: deps.DB, Metrics: deps.Metrics}

	authUser := middleware.AuthUser(deps.Config)
	authAdmin := middleware.AuthAdmin(deps.Config)

	router.Get("/healthcheck", health.Healthcheck)

	// Catalog, public reads
	router.Get("/sessions", training.GetTrainingSessions)
	router.Get("/sessions/:sessionId/exercises", training.GetExercisesBySession)
	router.Get("/exercises/:exerciseId", training.GetExerciseWithSeries)
	router.Post("/catalog/initialize", authAdmin, catalog.InitializeTrainingData)

	// Per user routes
	router.Post("/logs", authUser, logs.CreateUserExerciseLog)
	router.Get("/logs", authUser, logs.GetUserExerciseLogs)
	router.Get("/logs/last", authUser, logs.GetLastExercisePerformance)
	router.Post("/body-metrics", authUser, bodyMetrics.CreateBodyMetric)
	router.Get("/body-metrics", authUser, bodyMetrics.GetBodyMetrics)
	router.Get("/settings", authUser, settings.GetUserSettings)
	router.Put("/settings", authUser, settings.UpdateUserSettings)
	router.Patch("/settings", authUser, settings.UpdateUserSettings)
}
