package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/models"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/types"
	"github.com/localnerve/workout-tracker/internal/utils"
	"gorm.io/gorm"
)

// BodyMetricHandler serves the body metric routes
type BodyMetricHandler struct {
	DB      *gorm.DB
	Metrics *metrics.Manager
}

// CreateBodyMetricRequest is the body of POST /api/body-metrics
type CreateBodyMetricRequest struct {
	UserID     string   `json:"user_id"`
	MetricType string   `json:"metric_type" enums:"arms,legs,core,chest,shoulders,waist,weight"`
	Value      *float64 `json:"value"`
	Unit       string   `json:"unit" example:"cm"`
	RecordedAt *string  `json:"recorded_at,omitempty" example:"2026-05-01T07:00:00Z"`
}

// CreateBodyMetric handles POST /api/body-metrics
// @Summary Record a body metric
// @Tags BodyMetrics
// @Accept json
// @Produce json
// @Param request body CreateBodyMetricRequest true "Measurement"
// @Success 201 {object} models.BodyMetric
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /body-metrics [post]
func (h *BodyMetricHandler) CreateBodyMetric(c *fiber.Ctx) error {
	var req CreateBodyMetricRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	verr := &types.ValidationError{}
	if err := validateUserID(c, req.UserID, verr); err != nil {
		return err
	}
	metricType := models.BodyMetricType(req.MetricType)
	if !metricType.IsValid() {
		verr.Add("metric_type", "must be one of %s", joinMetricTypes())
	}
	switch {
	case req.Value == nil:
		verr.Add("value", "is required")
	case *req.Value <= 0:
		verr.Add("value", "must be greater than 0")
	}
	switch {
	case strings.TrimSpace(req.Unit) == "":
		verr.Add("unit", "is required")
	case len(req.Unit) > maxUnitLength:
		verr.Add("unit", "must be at most %d characters", maxUnitLength)
	}
	recordedAt := parseTimestamp("recorded_at", req.RecordedAt, verr)
	if err := verr.Err(); err != nil {
		return err
	}

	metric, err := services.CreateBodyMetric(withContext(h.DB, c), services.CreateBodyMetricInput{
		UserID:     req.UserID,
		MetricType: metricType,
		Value:      *req.Value,
		Unit:       req.Unit,
		RecordedAt: recordedAt,
	})
	if err != nil {
		return err
	}

	h.Metrics.CounterBodyMetricsRecorded.WithLabelValues(string(metricType)).Inc()

	return utils.SuccessResponse(c, metric, fiber.StatusCreated)
}

// GetBodyMetrics handles GET /api/body-metrics
// @Summary List a user's body metrics
// @Description Get a page of measurements, most recent first
// @Tags BodyMetrics
// @Produce json
// @Param user_id query string true "User ID"
// @Param metric_type query string false "Only this metric type" Enums(arms, legs, core, chest, shoulders, waist, weight)
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.BodyMetric
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /body-metrics [get]
func (h *BodyMetricHandler) GetBodyMetrics(c *fiber.Ctx) error {
	verr := &types.ValidationError{}
	userID := c.Query("user_id")
	if err := validateUserID(c, userID, verr); err != nil {
		return err
	}

	var metricType *models.BodyMetricType
	if raw := c.Query("metric_type"); raw != "" {
		mt := models.BodyMetricType(raw)
		if mt.IsValid() {
			metricType = &mt
		} else {
			verr.Add("metric_type", "must be one of %s", joinMetricTypes())
		}
	}
	limit, offset := parsePagination(c, verr)
	if err := verr.Err(); err != nil {
		return err
	}

	result, err := services.GetBodyMetrics(withContext(h.DB, c), services.BodyMetricQuery{
		UserID:     userID,
		MetricType: metricType,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func joinMetricTypes() string {
	names := make([]string, len(models.BodyMetricTypes))
	for i, mt := range models.BodyMetricTypes {
		names[i] = string(mt)
	}
	return strings.Join(names, ", ")
}
