package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/localnerve/workout-tracker/internal/handlers"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/middleware"
	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	metrics *metrics.Manager
}

// setupTestApp builds the API on a migrated in-memory SQLite database with auth disabled
func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Defaults()
	cfg.DBDatabase = ":memory:"
	cfg.DBLogLevel = "silent"

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db))

	m := metrics.NewTestManager()

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	api := app.Group("/api", middleware.VersionMiddleware())
	handlers.RegisterRoutes(api, handlers.Dependencies{DB: db, Config: cfg, Metrics: m})
	app.Use(handlers.NotFound)

	return &testEnv{app: app, db: db, metrics: m}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(raw)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	Type    string `json:"type"`
	Fields  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func (e errorBody) hasField(name string) bool {
	for _, f := range e.Fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

func newUserID() string {
	return uuid.NewString()
}

func seedExercise(t *testing.T, db *gorm.DB) models.Exercise {
	t.Helper()
	session := models.TrainingSession{Name: "Pull A", Type: models.TrainingTypePull}
	require.NoError(t, db.Create(&session).Error)
	exercise := models.Exercise{TrainingSessionID: session.ID, Name: "Rows", TargetSeries: 3}
	require.NoError(t, db.Create(&exercise).Error)
	series := []models.Series{
		{ExerciseID: exercise.ID, SeriesNumber: 2, TargetRepetitions: 8, TargetWeight: 40},
		{ExerciseID: exercise.ID, SeriesNumber: 1, TargetRepetitions: 10, TargetWeight: 35},
	}
	require.NoError(t, db.Create(&series).Error)
	return exercise
}
