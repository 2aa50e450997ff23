package cmd

import (
	"fmt"

	"github.com/weglide/flugfeld/core/config"
	"github.com/weglide/flugfeld/core/logger"
	"github.com/weglide/flugfeld/feature/airport/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishExport bool

// exportCmd re-emits the GeoJSON artifact from the CSV snapshot.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the GeoJSON export from the current CSV snapshot",
	Long: `Regenerate the GeoJSON artifact from the CSV snapshot without
touching any upstream service. With --publish the artifacts are also
uploaded to the configured bucket.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&publishExport, "publish", false, "Upload the artifacts to the configured bucket")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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
	if len(airports) == 0 {
		return fmt.Errorf("snapshot %s is empty", cfg.Snapshot.CSVPath)
	}

	if err := store.WriteGeoJSON(airports); err != nil {
		return fmt.Errorf("failed to write geojson: %w", err)
	}
	l.Info("GeoJSON written",
		zap.String("path", cfg.Snapshot.GeoJSONPath),
		zap.Int("airports", len(airports)))

	if publishExport {
		return publishArtifacts(cmd, cfg, l)
	}
	return nil
}
