// Command vitalis derives daily health targets from one profile and one
// 21-domain self-assessment: calories and macros, hydration and sleep,
// heart-rate zones, a tiered cardio prescription, a VO2max time series, and
// a rotating daily verse and message.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vitalis/internal/config"
	"vitalis/internal/store"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Built in the root PersistentPreRunE, shared by every subcommand.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "vitalis",
	Short: "Personal health-metrics engine",
	Long: `vitalis turns one profile and one 21-domain self-assessment into the
day's numbers: energy and macro targets, hydration and sleep, heart-rate
zones, a tiered cardio prescription, and a VO2max time series, plus a
rotating daily verse and message.

State lives in a local SQLite file by default. Run "vitalis serve" to
expose everything over HTTP for a frontend, or "vitalis compute" to print
today's snapshot to stdout.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so the config loader sees its variables.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level, perr := zapcore.ParseLevel(cfg.Logging.Level)
		if perr != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "vitalis.yaml", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRepository validates the config and builds the selected store backend.
func openRepository(ctx context.Context) (store.Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		return store.NewPostgres(ctx, cfg.Store.DSN, logger)
	case config.BackendMemory:
		return store.NewMemory(), nil
	default:
		return store.NewSQLite(cfg.Store.Path, logger)
	}
}
