package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// WriteGeoJSON dumps the set as a FeatureCollection of points carrying the
// full property bag. Written once at the end of a run for map consumers.
func (s *Store) WriteGeoJSON(airports []models.Airport) error {
	fc := geojson.NewFeatureCollection()
	for _, airport := range airports {
		fc.Append(toFeature(airport))
	}

	data, err := json.MarshalIndent(fc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode geojson: %w", err)
	}

	err = withSignalsDeferred(func() error {
		return os.WriteFile(s.GeoJSONPath, data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("failed to write geojson dump: %w", err)
	}

	s.logger.Info("Wrote geojson dump",
		zap.String("path", s.GeoJSONPath),
		zap.Int("airports", len(airports)))
	return nil
}

func toFeature(a models.Airport) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{a.Longitude, a.Latitude})
	f.Properties = geojson.Properties{
		"lng":               a.Longitude,
		"lat":               a.Latitude,
		"id":                a.ID,
		"openaip_id":        a.OpenAIPID,
		"name":              a.Name,
		"openaip_name":      a.OpenAIPName,
		"kind":              string(a.Kind),
		"region":            a.Region,
		"continent":         a.Continent,
		"launches":          a.Launches,
		"icao":              a.ICAO,
		"reign":             a.Reign,
		"openaip_elevation": a.Elevation,
		"elevation":         a.Elevation,
		"timezone":          a.Timezone,
		"radio_frequency":   a.RadioFrequency,
		"radio_type":        a.RadioType,
		"radio_description": a.RadioDescription,
		"rwy_name":          a.RunwayName,
		"rwy_sfc":           a.RunwaySurface,
		"rwy_direction":     a.RunwayDirection,
		"rwy_length":        a.RunwayLength,
		"rwy_width":         a.RunwayWidth,
	}
	return f
}
