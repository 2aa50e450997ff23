package enrich

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/models"
)

func testAirport(region string, mutate ...func(*models.Airport)) models.Airport {
	a := models.Airport{
		OpenAIPID:   "aip-" + region,
		OpenAIPName: "TEST FIELD",
		Kind:        models.KindGliderSite,
		Longitude:   9.1,
		Latitude:    48.7,
		Region:      region,
	}
	for _, m := range mutate {
		m(&a)
	}
	return a
}

func noopSave([]models.Airport) error { return nil }

func TestAssignContinents(t *testing.T) {
	airports := []models.Airport{
		testAirport("DE-BW"),
		testAirport("NZ"),
		testAirport("US", func(a *models.Airport) { a.Continent = "EU" }), // stale, must be overwritten
	}

	enriched, err := AssignContinents(airports)
	require.NoError(t, err)

	assert.Equal(t, "EU", enriched[0].Continent)
	assert.Equal(t, "OC", enriched[1].Continent)
	assert.Equal(t, "NA", enriched[2].Continent)
	assert.Empty(t, airports[0].Continent, "input must stay untouched")
}

func TestAssignContinents_UnknownCountryFatal(t *testing.T) {
	_, err := AssignContinents([]models.Airport{testAirport("XX")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XX")
	assert.Contains(t, err.Error(), "TEST FIELD")
}

type fakeTimezoneSource map[string]string

func (f fakeTimezoneSource) TimezoneAt(lon, lat float64) string {
	return f[fmt.Sprintf("%.1f,%.1f", lon, lat)]
}

func TestAssignTimezones(t *testing.T) {
	source := fakeTimezoneSource{"9.1,48.7": "Europe/Berlin"}
	airports := []models.Airport{
		testAirport("DE"),
		testAirport("DE", func(a *models.Airport) {
			a.Longitude = -40.0 // mid-Atlantic
			a.Latitude = 30.0
			a.Timezone = models.Ptr("Europe/Paris") // stale value must clear
		}),
	}

	enriched := AssignTimezones(airports, source)

	require.NotNil(t, enriched[0].Timezone)
	assert.Equal(t, "Europe/Berlin", *enriched[0].Timezone)
	assert.Nil(t, enriched[1].Timezone, "unresolvable timezone is nil, not an error")
}

func TestAssignNames(t *testing.T) {
	tests := []struct {
		openaipName string
		want        string
	}{
		{"KIRCHHEIM TECK HAHNWEIDE", "Kirchheim Teck Hahnweide"},
		{"SAINT REMY DE PROVENCE AIRFIELD", "Saint Remy de Provence"},
		{"BLAIRSTOWN AIRPORT", "Blairstown"},
		{"MOUNT BEAUTY AIRPARK", "Mount Beauty"},
		// Stripping everything falls back to the title-cased input.
		{"AIRFIELD", "Airfield"},
	}

	for _, tt := range tests {
		t.Run(tt.openaipName, func(t *testing.T) {
			airports := []models.Airport{
				testAirport("DE", func(a *models.Airport) { a.OpenAIPName = tt.openaipName }),
			}
			enriched := AssignNames(airports)
			require.NotNil(t, enriched[0].Name)
			assert.Equal(t, tt.want, *enriched[0].Name)
		})
	}
}

func TestAssignNames_CuratedNameUntouched(t *testing.T) {
	airports := []models.Airport{
		testAirport("DE", func(a *models.Airport) {
			a.Name = models.Ptr("Hahnweide")
			a.OpenAIPName = "SOMETHING ELSE ENTIRELY"
		}),
	}

	enriched := AssignNames(airports)
	assert.Equal(t, "Hahnweide", *enriched[0].Name)
}

type fakeGeocoder struct {
	region string
	err    error
	calls  int
}

func (f *fakeGeocoder) ResolveSubregion(ctx context.Context, lon, lat float64) (string, error) {
	f.calls++
	return f.region, f.err
}

func TestAssignRegions(t *testing.T) {
	geocoder := &fakeGeocoder{region: "DE-BW"}
	saves := 0
	airports := []models.Airport{
		testAirport("DE"),
		testAirport("DE-BY"), // already refined, must not trigger a lookup
		testAirport("JP"),    // no sub-regions tracked
	}

	cfg := RegionConfig{
		Geocoder: geocoder,
		Save:     func([]models.Airport) error { saves++; return nil },
		Logger:   zap.NewNop(),
	}
	enriched, err := AssignRegions(context.Background(), airports, cfg)
	require.NoError(t, err)

	assert.Equal(t, "DE-BW", enriched[0].Region)
	assert.Equal(t, "DE-BY", enriched[1].Region)
	assert.Equal(t, "JP", enriched[2].Region)
	assert.Equal(t, 1, geocoder.calls, "only the bare tracked country needs a lookup")
	assert.Equal(t, 1, saves, "each resolved record persists immediately")
}

func TestAssignRegions_NewZealandBoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     string
	}{
		{"omarama", 169.97, -44.49, "NZ-S"},
		{"auckland", 174.79, -36.85, "NZ-N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &fakeGeocoder{err: errors.New("must not be called")}
			airports := []models.Airport{
				testAirport("NZ", func(a *models.Airport) {
					a.Longitude = tt.lon
					a.Latitude = tt.lat
				}),
			}

			cfg := RegionConfig{Geocoder: geocoder, Save: noopSave, Logger: zap.NewNop()}
			enriched, err := AssignRegions(context.Background(), airports, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, enriched[0].Region)
			assert.Zero(t, geocoder.calls)
		})
	}
}

func TestAssignRegions_CountryMismatchFatal(t *testing.T) {
	geocoder := &fakeGeocoder{region: "FR-GES"}
	airports := []models.Airport{testAirport("DE")}

	cfg := RegionConfig{Geocoder: geocoder, Save: noopSave, Logger: zap.NewNop()}
	_, err := AssignRegions(context.Background(), airports, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FR-GES")
	assert.Contains(t, err.Error(), "DE")
}

type fakeLaunchSource struct {
	counts map[int]int
	err    error
	calls  int
}

func (f *fakeLaunchSource) LaunchesFor(ctx context.Context, id int) (int, bool, error) {
	f.calls++
	if f.err != nil {
		return 0, false, f.err
	}
	count, ok := f.counts[id]
	return count, ok, nil
}

func TestAssignLaunches(t *testing.T) {
	source := &fakeLaunchSource{counts: map[int]int{1: 250, 3: 0}}
	saves := 0
	airports := []models.Airport{
		testAirport("DE", func(a *models.Airport) { a.ID = models.Ptr(1) }),
		testAirport("DE", func(a *models.Airport) { a.ID = models.Ptr(2) }), // not on WeGlide
		testAirport("DE", func(a *models.Airport) { a.ID = models.Ptr(3) }),
		testAirport("DE", func(a *models.Airport) { a.ID = models.Ptr(4); a.Launches = models.Ptr(99) }),
	}

	cfg := LaunchConfig{
		Source: source,
		Save:   func([]models.Airport) error { saves++; return nil },
		Logger: zap.NewNop(),
	}
	enriched, err := AssignLaunches(context.Background(), airports, cfg)
	require.NoError(t, err)

	assert.Equal(t, 250, *enriched[0].Launches)
	assert.Nil(t, enriched[1].Launches, "not found stays unknown")
	assert.Equal(t, 0, *enriched[2].Launches, "zero launches is a known value")
	assert.Equal(t, 99, *enriched[3].Launches)
	assert.Equal(t, 3, source.calls, "known counts are not re-fetched")
	assert.Equal(t, 2, saves)
}

func TestAssignLaunches_ForceRefreshesKnownCounts(t *testing.T) {
	source := &fakeLaunchSource{counts: map[int]int{4: 120}}
	airports := []models.Airport{
		testAirport("DE", func(a *models.Airport) { a.ID = models.Ptr(4); a.Launches = models.Ptr(99) }),
	}

	cfg := LaunchConfig{Source: source, Save: noopSave, Logger: zap.NewNop(), Force: true}
	enriched, err := AssignLaunches(context.Background(), airports, cfg)
	require.NoError(t, err)
	assert.Equal(t, 120, *enriched[0].Launches)
}

func TestAssignLaunches_UnexpectedErrorFatal(t *testing.T) {
	source := &fakeLaunchSource{err: errors.New("status 500")}
	airports := []models.Airport{
		testAirport("DE", func(a *models.Airport) { a.ID = models.Ptr(1) }),
	}

	cfg := LaunchConfig{Source: source, Save: noopSave, Logger: zap.NewNop()}
	_, err := AssignLaunches(context.Background(), airports, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
