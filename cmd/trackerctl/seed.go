package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/localnerve/workout-tracker/internal/database"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the built-in training catalog",
	Long: `Insert the built-in training sessions, exercises and target series.

Seeding is skipped when the catalog already has sessions. With --force a new
copy is inserted anyway, duplicating the catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		out := cmd.OutOrStdout()

		if !seedForce {
			empty, err := services.CatalogIsEmpty(db)
			if err != nil {
				return err
			}
			if !empty {
				color.New(color.FgYellow).Fprintln(out, "Training catalog already present, use --force to insert another copy")
				return nil
			}
		}

		data, err := services.InitializeTrainingData(db)
		if err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Seeded %d sessions, %d exercises, %d series\n",
			len(data.TrainingSessions), len(data.Exercises), len(data.Series))
		for _, s := range data.TrainingSessions {
			fmt.Fprintf(out, "  %-4d %-6s %s\n", s.ID, s.Type, s.Name)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when a catalog exists")
	rootCmd.AddCommand(seedCmd)
}
