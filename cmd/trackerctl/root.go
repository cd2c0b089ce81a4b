package main

import (
	"fmt"

	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/localnerve/workout-tracker/internal/logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "trackerctl",
	Short: "Workout tracker maintenance commands",
	Long: `trackerctl manages the workout tracker database outside the server.

Configuration comes from the same DB_* environment variables the server reads,
optionally loaded from a .env file with --env-file.

EXAMPLES:

  trackerctl migrate -f .env        # create or update the tables
  trackerctl seed -f .env           # insert the training catalog if empty
  trackerctl schema                 # print the SQLite DDL
  trackerctl parse-reps "10 - 12"   # show the parsed target repetitions`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile == "" {
			return nil
		}
		return config.LoadEnvFile(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "f", "", "path to a .env file")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// openDatabase loads the configuration and connects to the configured database
func openDatabase() (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", cfg.DBType, err)
	}
	return db, cfg, nil
}
