package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Database     string            `json:"database"`
	Authorizer   string            `json:"authorizer"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every checked dependency answered
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "ok"
}

// HealthCheck pings the database and, when configured, the authorizer
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:     "ok",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Authorizer: "disabled",
		Details:    make(map[string]string),
	}

	addError := func(msg string) {
		result.Status = "unhealthy"
		if result.ErrorMessage == "" {
			result.ErrorMessage = msg
		} else {
			result.ErrorMessage += "; " + msg
		}
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		addError(fmt.Sprintf("Database connection error: %v", err))
		logrus.Errorf("health check failed - database connection: %v", err)
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		addError(fmt.Sprintf("Database ping failed: %v", err))
		logrus.Errorf("health check failed - database ping: %v", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
	}

	if cfg.AuthEnabled() {
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			result.Authorizer = "unreachable"
			result.Details["authorizer_error"] = err.Error()
			addError(fmt.Sprintf("Authorizer ping failed: %v", err))
			logrus.Errorf("health check failed - authorizer ping: %v", err)
		} else {
			result.Authorizer = "ok"
		}
	}

	if len(result.Details) == 0 {
		result.Details = nil
	}

	logrus.Debugf("health check: %s", result.Status)
	return result
}
