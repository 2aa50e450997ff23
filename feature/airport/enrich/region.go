package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/geo"
	"github.com/weglide/flugfeld/feature/airport/models"
)

// Geocoder resolves the ISO-3166-2 sub-region code at a coordinate.
type Geocoder interface {
	ResolveSubregion(ctx context.Context, lon, lat float64) (string, error)
}

// RegionConfig wires the region refinement pass.
type RegionConfig struct {
	Geocoder Geocoder
	Save     Saver
	Logger   *zap.Logger

	// Delay is the minimum spacing between geocoding requests.
	// Nominatim asks for at most one request per second.
	Delay time.Duration
}

// AssignRegions refines bare country codes into full sub-region codes for
// countries that track sub-regions. Records already carrying a sub-region
// are left untouched; precision is never degraded. New Zealand is resolved
// from a coordinate bounding test instead of a geocoding request since
// WeGlide splits it into North and South Island only.
//
// The working set is persisted after every resolved record, so an aborted
// run picks up where it stopped.
func AssignRegions(ctx context.Context, airports []models.Airport, cfg RegionConfig) ([]models.Airport, error) {
	airports = models.Clone(airports)

	var pending []int
	for i := range airports {
		if len(airports[i].Region) == 2 && geo.HasSubregions(airports[i].Region) {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return airports, nil
	}
	cfg.Logger.Info("Resolving sub-regions", zap.Int("airports", len(pending)))

	for n, i := range pending {
		airport := &airports[i]

		region, err := resolveRegion(ctx, cfg.Geocoder, *airport)
		if err != nil {
			return nil, fmt.Errorf("region for %q: %w", airport.DisplayName(), err)
		}
		if !strings.HasPrefix(region, airport.Region+"-") {
			// The geocoder put the airport in another country. That needs
			// human eyes, not a silent correction.
			return nil, fmt.Errorf(
				"resolved region %q does not match country %q for %q",
				region, airport.Region, airport.DisplayName())
		}
		airport.Region = region

		cfg.Logger.Info("Updated region",
			zap.String("region", region),
			zap.String("airport", airport.DisplayName()),
			zap.Int("done", n+1),
			zap.Int("total", len(pending)))

		if err := cfg.Save(airports); err != nil {
			return nil, fmt.Errorf("intermediate save after region update: %w", err)
		}

		if n < len(pending)-1 {
			select {
			case <-time.After(cfg.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return airports, nil
}

func resolveRegion(ctx context.Context, geocoder Geocoder, airport models.Airport) (string, error) {
	if airport.Region == "NZ" {
		return newZealandRegion(airport), nil
	}
	return geocoder.ResolveSubregion(ctx, airport.Longitude, airport.Latitude)
}

// newZealandRegion distinguishes North and South Island by a coordinate
// bounding box instead of a geocoder round-trip.
func newZealandRegion(airport models.Airport) string {
	if airport.Longitude > 165.410156 && airport.Longitude < 174.495850 &&
		airport.Latitude > -48.389419 && airport.Latitude < -40.171149 {
		return "NZ-S"
	}
	return "NZ-N"
}
