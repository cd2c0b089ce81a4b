package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/spf13/cobra"
)

var parseRepsCmd = &cobra.Command{
	Use:   "parse-reps <descriptor>...",
	Short: "Show the target repetitions parsed from rep descriptors",
	Long: `Print the repetition target the seeder derives from each descriptor.

The leading integer wins: "10 - 12" is 10, "4/6/8" is 4, "5,4,3+ each" is 5.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, arg := range args {
			reps, err := services.ParseRepTarget(arg)
			if err != nil {
				color.New(color.FgRed).Fprintf(out, "%-16q %v\n", arg, err)
				failed++
				continue
			}
			fmt.Fprintf(out, "%-16q %d\n", arg, reps)
		}
		if failed > 0 {
			return fmt.Errorf("%d descriptor(s) could not be parsed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseRepsCmd)
}
