package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/spf13/cobra"
)

var schemaDialect string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the table DDL",
	Long: `Migrate a throwaway in-memory SQLite database and print the DDL GORM
created for every table and index.

--dialect sqlite uses the pure Go driver, sqlite3 the cgo one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaDialect != "sqlite" && schemaDialect != "sqlite3" {
			return fmt.Errorf("unsupported dialect: %s", schemaDialect)
		}

		db, err := database.Connect(&config.Config{
			DBType:     schemaDialect,
			DBDatabase: ":memory:",
			DBLogLevel: "silent",
		})
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return err
		}

		var entries []struct {
			Type string
			Name string
			SQL  string
		}
		err = db.Raw("SELECT type, name, sql FROM sqlite_master WHERE sql IS NOT NULL AND name NOT LIKE 'sqlite_%' ORDER BY type DESC, name").
			Scan(&entries).Error
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		heading := color.New(color.FgCyan, color.Bold)
		for _, e := range entries {
			heading.Fprintf(out, "\n=== %s: %s ===\n", e.Type, e.Name)
			fmt.Fprintln(out, e.SQL)
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaDialect, "dialect", "sqlite", "sqlite or sqlite3")
	rootCmd.AddCommand(schemaCmd)
}
