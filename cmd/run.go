package cmd

import (
	"fmt"

	"github.com/weglide/flugfeld/core/config"
	"github.com/weglide/flugfeld/core/logger"
	"github.com/weglide/flugfeld/core/storage"
	"github.com/weglide/flugfeld/feature/airport/enrich"
	"github.com/weglide/flugfeld/feature/airport/nominatim"
	"github.com/weglide/flugfeld/feature/airport/openaip"
	"github.com/weglide/flugfeld/feature/airport/reconcile"
	"github.com/weglide/flugfeld/feature/airport/reign"
	"github.com/weglide/flugfeld/feature/airport/snapshot"
	"github.com/weglide/flugfeld/feature/airport/weglide"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the run command
	admitNew      bool
	forceLaunches bool
)

// runCmd executes the full update pipeline.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Update the airport directory from OpenAIP and enrich it",
	Long: `Run the full update pipeline against the CSV snapshot.

Fetches the current OpenAIP airport collection, merges it into the
existing directory, derives names, continents, timezones, sub-regions,
launch counts and reigns, and writes the CSV and GeoJSON artifacts.

New OpenAIP airports are only admitted with --new, so a routine run
never grows the directory by surprise.

Examples:
  # Refresh existing records only
  run

  # Admit airports not seen before
  run --new

  # Re-fetch launch counts that are already present
  run --force-launches`,
	RunE: runUpdate,
}

func init() {
	runCmd.Flags().BoolVar(&admitNew, "new", false, "Admit OpenAIP airports not in the directory yet")
	runCmd.Flags().BoolVar(&forceLaunches, "force-launches", false, "Refresh launch counts that are already present")

	RootCmd.AddCommand(runCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	store := snapshot.NewStore(cfg.Snapshot.CSVPath, cfg.Snapshot.GeoJSONPath, l)

	existing, err := store.ReadCSV()
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	l.Info("Loaded snapshot", zap.Int("airports", len(existing)))

	remote, err := openaip.NewClient(cfg.OpenAIP, l).FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch openaip airports: %w", err)
	}
	remote = reconcile.Filter(remote)
	l.Info("Fetched provider airports", zap.Int("airports", len(remote)))

	merged := reconcile.Merge(existing, remote, reconcile.Options{AdmitNew: admitNew})
	merged = reconcile.SortByID(merged)
	merged, err = reconcile.AssignIDs(merged)
	if err != nil {
		return fmt.Errorf("failed to assign ids: %w", err)
	}

	merged = enrich.AssignNames(merged)
	merged, err = enrich.AssignContinents(merged)
	if err != nil {
		return fmt.Errorf("failed to assign continents: %w", err)
	}

	tz, err := enrich.NewTimezoneSource()
	if err != nil {
		return fmt.Errorf("failed to initialize timezone lookup: %w", err)
	}
	merged = enrich.AssignTimezones(merged, tz)

	// Persist before the slow network passes, so their per-record saves
	// start from a complete base.
	if err := store.WriteCSV(merged); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	merged, err = enrich.AssignRegions(ctx, merged, enrich.RegionConfig{
		Geocoder: nominatim.NewClient(cfg.Nominatim),
		Save:     store.WriteCSV,
		Logger:   l,
		Delay:    cfg.Nominatim.Delay(),
	})
	if err != nil {
		return fmt.Errorf("failed to refine regions: %w", err)
	}

	merged, err = enrich.AssignLaunches(ctx, merged, enrich.LaunchConfig{
		Source: weglide.NewClient(cfg.WeGlide),
		Save:   store.WriteCSV,
		Logger: l,
		Delay:  cfg.WeGlide.Delay(),
		Force:  forceLaunches,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch launch counts: %w", err)
	}

	// Airports WeGlide does not know yet rank as if they had zero launches.
	merged, err = reign.Assign(merged, reign.Options{UnknownAsZero: true})
	if err != nil {
		return fmt.Errorf("failed to compute reigns: %w", err)
	}

	if err := store.WriteCSV(merged); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := store.WriteGeoJSON(merged); err != nil {
		return fmt.Errorf("failed to write geojson: %w", err)
	}
	l.Info("Snapshot written", zap.Int("airports", len(merged)))

	if cfg.Storage.Enabled {
		if err := publishArtifacts(cmd, cfg, l); err != nil {
			return err
		}
	}

	return nil
}

func publishArtifacts(cmd *cobra.Command, cfg *config.Config, l *zap.Logger) error {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	publisher := storage.NewPublisher(client, cfg.Storage.Bucket, l)

	ctx := cmd.Context()
	if err := publisher.PublishFile(ctx, cfg.Snapshot.CSVPath, "airports.csv", "text/csv"); err != nil {
		return err
	}
	return publisher.PublishFile(ctx, cfg.Snapshot.GeoJSONPath, "airports.geojson", "application/geo+json")
}
