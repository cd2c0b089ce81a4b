package services

import (
	"fmt"
	"time"

	"github.com/localnerve/workout-tracker/internal/models"
	"gorm.io/gorm"
)

// CreateBodyMetricInput is one body measurement
type CreateBodyMetricInput struct {
	UserID     string
	MetricType models.BodyMetricType
	Value      float64
	Unit       string
	RecordedAt *time.Time
}

// BodyMetricQuery filters and pages a user's body metrics
type BodyMetricQuery struct {
	UserID     string
	MetricType *models.BodyMetricType
	Limit      int
	Offset     int
}

// CreateBodyMetric records a measurement
func CreateBodyMetric(db *gorm.DB, input CreateBodyMetricInput) (*models.BodyMetric, error) {
	metric := models.BodyMetric{
		UserID:     input.UserID,
		MetricType: input.MetricType,
		Value:      input.Value,
		Unit:       input.Unit,
		RecordedAt: timestampOrNow(input.RecordedAt),
	}
	if err := db.Create(&metric).Error; err != nil {
		return nil, fmt.Errorf("create body metric: %w", err)
	}
	return &metric, nil
}

// GetBodyMetrics returns a page of measurements, most recent first
func GetBodyMetrics(db *gorm.DB, q BodyMetricQuery) ([]models.BodyMetric, error) {
	limit, offset := pageBounds(q.Limit, q.Offset)

	query := withIndexHint(db.Model(&models.BodyMetric{}), "idx_body_metrics_lookup").
		Where("user_id = ?", q.UserID)
	if q.MetricType != nil {
		query = query.Where("metric_type = ?", *q.MetricType)
	}

	metrics := []models.BodyMetric{}
	err := query.Order("recorded_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("get body metrics: %w", err)
	}

	return metrics, nil
}
