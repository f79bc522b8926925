package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vitalis/internal/session"
)

// setCmd edits one profile field from the terminal, through the same
// validate-apply-recompute path the HTTP PATCH uses.
var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one profile field (e.g. set weight 84.5)",
	Long: `Set one profile field by its JSON name and recompute all targets.

Fields: name, gender, age, units, height_ft, height_in, height_cm,
weight, goal_weight, activity_level, cycle_phase, resting_hr,
hrmax_override, cooper_distance_m.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	patch, err := session.FieldPatch(args[0], args[1])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	sess := session.New(ctx, repo, nil, logger)
	snap, err := sess.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", args[0], args[1])
	printTargets(snap)
	return nil
}

// assessCmd records one assessment answer.
var assessCmd = &cobra.Command{
	Use:   "assess <domain> <score>",
	Short: "Record one assessment answer (1-5)",
	Args:  cobra.ExactArgs(2),
	RunE:  runAssess,
}

func runAssess(cmd *cobra.Command, args []string) error {
	score, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("score wants a whole number, got %q", args[1])
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	sess := session.New(ctx, repo, nil, logger)
	snap, err := sess.SetAnswer(ctx, args[0], score)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %d (assessment total %d)\n", args[0], score, snap.Metrics.AssessmentTotal)
	return nil
}

// printTargets prints the headline numbers after an edit.
func printTargets(snap session.Snapshot) {
	m := snap.Metrics
	fmt.Printf("BMR %d  TDEE %d  target %d kcal  protein %dg  water %dml\n",
		m.BMR, m.TDEE, m.TargetCalories, m.Macros.ProteinG, m.Hydration.WaterMl)
}
