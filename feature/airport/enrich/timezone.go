package enrich

import (
	"fmt"

	"github.com/ringsaturn/tzf"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// TimezoneSource resolves an IANA timezone name from coordinates.
// An empty result means "no timezone here" (open water) and is valid.
type TimezoneSource interface {
	TimezoneAt(lon, lat float64) string
}

// NewTimezoneSource returns a source backed by an in-process
// point-in-polygon lookup over the embedded timezone boundary data.
func NewTimezoneSource() (TimezoneSource, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone data: %w", err)
	}
	return &tzfSource{finder: finder}, nil
}

type tzfSource struct {
	finder tzf.F
}

func (s *tzfSource) TimezoneAt(lon, lat float64) string {
	return s.finder.GetTimezoneName(lon, lat)
}

// AssignTimezones sets the timezone for every airport from its coordinates,
// overwriting existing values. Airports without a resolvable timezone keep
// nil, never an error.
func AssignTimezones(airports []models.Airport, source TimezoneSource) []models.Airport {
	airports = models.Clone(airports)
	for i := range airports {
		tz := source.TimezoneAt(airports[i].Longitude, airports[i].Latitude)
		if tz == "" {
			airports[i].Timezone = nil
			continue
		}
		airports[i].Timezone = models.Ptr(tz)
	}
	return airports
}
