package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Run the schema migration against the configured database.

Tables, indexes and check constraints are created when missing. Existing
data is kept. Running it twice is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Migrated %s database %s\n", cfg.DBType, cfg.DBDatabase)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
