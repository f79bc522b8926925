package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// historyCmd prints the VO2max time series, oldest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the VO2max time series",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := openRepository(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	samples, err := repo.VO2History(ctx)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(samples) == 0 {
		fmt.Println("No VO2 samples yet. Set resting_hr or cooper_distance_m and run \"vitalis compute\".")
		return nil
	}

	for _, s := range samples {
		fmt.Printf("%s  %.1f\n", s.Day, s.Value)
	}
	return nil
}
