package enrich

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// LaunchSource reports the number of recorded launches for a WeGlide id.
// found is false when the airport does not (yet) exist on WeGlide, which is
// an expected answer, not an error.
type LaunchSource interface {
	LaunchesFor(ctx context.Context, weglideID int) (count int, found bool, err error)
}

// LaunchConfig wires the launch assignment pass.
type LaunchConfig struct {
	Source LaunchSource
	Save   Saver
	Logger *zap.Logger

	// Delay is the fixed spacing between lookups.
	Delay time.Duration

	// Force refreshes launch counts that are already present.
	Force bool
}

// AssignLaunches fetches the launch count for every airport with an
// assigned WeGlide id. Known counts are kept unless Force is set. A
// "not found" answer leaves the count nil; any other failure aborts the
// run. The per-record saves make a restart cheap, since populated records
// are skipped next time.
func AssignLaunches(ctx context.Context, airports []models.Airport, cfg LaunchConfig) ([]models.Airport, error) {
	airports = models.Clone(airports)

	for i := range airports {
		airport := &airports[i]
		if airport.ID == nil {
			continue
		}
		if !cfg.Force && airport.Launches != nil {
			continue
		}

		count, found, err := cfg.Source.LaunchesFor(ctx, *airport.ID)
		if err != nil {
			return nil, fmt.Errorf("launches for %q: %w", airport.DisplayName(), err)
		}
		if !found {
			cfg.Logger.Info("Skipped launches (not found on WeGlide)",
				zap.String("airport", airport.DisplayName()))
		} else {
			airport.Launches = models.Ptr(count)
			cfg.Logger.Info("Added launches",
				zap.Int("launches", count),
				zap.String("airport", airport.DisplayName()))

			if err := cfg.Save(airports); err != nil {
				return nil, fmt.Errorf("intermediate save after launch update: %w", err)
			}
		}

		select {
		case <-time.After(cfg.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return airports, nil
}
