package cmd

import (
	"fmt"

	"github.com/weglide/flugfeld/core/config"
	"github.com/weglide/flugfeld/core/logger"
	"github.com/weglide/flugfeld/feature/airport/integrity"
	"github.com/weglide/flugfeld/feature/airport/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd validates the structural guarantees of the CSV snapshot.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run integrity checks on the CSV snapshot",
	Long: `Validate the snapshot without modifying it.

Checks that every record carries a unique, strictly ascending WeGlide id,
a continent consistent with its country, and a known region code.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store := snapshot.NewStore(cfg.Snapshot.CSVPath, cfg.Snapshot.GeoJSONPath, l)

	airports, err := store.ReadCSV()
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	l.Info("Checking snapshot",
		zap.String("path", cfg.Snapshot.CSVPath),
		zap.Int("airports", len(airports)))

	if !integrity.NewService(l).CheckAll(airports) {
		return fmt.Errorf("snapshot %s failed integrity checks", cfg.Snapshot.CSVPath)
	}
	l.Info("Snapshot is clean")
	return nil
}
