// main.go
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

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/localnerve/workout-tracker/internal/handlers"
	"github.com/localnerve/workout-tracker/internal/logging"
	"github.com/localnerve/workout-tracker/internal/metrics"
	"github.com/localnerve/workout-tracker/internal/middleware"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "github.com/localnerve/workout-tracker/docs/api" // Swagger docs
)

// @title Workout Tracker API
// @version 1.0.0
// @description Personal workout tracking data service: training catalog, logged sets, body metrics and settings
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/workout-tracker
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	envFile := flag.String("f", "", "path to a .env file")
	flag.Parse()

	if *envFile != "" {
		if err := config.LoadEnvFile(*envFile); err != nil {
			logrus.Fatalf("Failed to load env file: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logWriter := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	metricsManager := metrics.NewManager(cfg.MetricsNamespace, "api", prometheus.DefaultRegisterer)

	if cfg.SeedCatalog {
		seedCatalog(db, metricsManager)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		AppName:      "workout-tracker",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: logWriter}))
	app.Use(compress.New())

	// Prometheus metrics
	prom := fiberprometheus.New(cfg.MetricsNamespace)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api", middleware.VersionMiddleware())
	handlers.RegisterRoutes(api, handlers.Dependencies{
		DB:      db,
		Config:  cfg,
		Metrics: metricsManager,
	})

	app.Use(handlers.NotFound)

	if cfg.AuthEnabled() {
		logrus.Infof("Authorizer %s will be initialized on first authenticated request", cfg.AuthzURL)
	} else {
		logrus.Warn("AUTHZ_URL is not set, requests are not authenticated")
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logrus.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	logrus.Infof("Starting server on port %s (%s, %s)", cfg.Port, cfg.Env, cfg.DBType)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}

	logrus.Info("Server stopped")
}

// seedCatalog inserts the built-in catalog when the database has none
func seedCatalog(db *gorm.DB, m *metrics.Manager) {
	empty, err := services.CatalogIsEmpty(db)
	if err != nil {
		logrus.Fatalf("Failed to inspect training catalog: %v", err)
	}
	if !empty {
		logrus.Debug("Training catalog present, skipping seed")
		return
	}

	data, err := services.InitializeTrainingData(db)
	if err != nil {
		logrus.Fatalf("Failed to seed training catalog: %v", err)
	}
	m.CounterCatalogSeeds.Inc()

	logrus.WithFields(logrus.Fields{
		"sessions":  len(data.TrainingSessions),
		"exercises": len(data.Exercises),
		"series":    len(data.Series),
	}).Info("Seeded training catalog")
}
