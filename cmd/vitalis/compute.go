package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"vitalis/internal/session"
)

// computeCmd prints today's full snapshot as JSON, performing the same
// recomputation and daily VO2 append the HTTP API does.
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Print today's snapshot as JSON",
	RunE:  runCompute,
}

func runCompute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := openRepository(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	sess := session.New(ctx, repo, nil, logger)
	snap := sess.Snapshot(ctx)

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
