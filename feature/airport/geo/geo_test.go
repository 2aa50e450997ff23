package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinentOf(t *testing.T) {
	tests := []struct {
		country   string
		continent string
	}{
		{"DE", "EU"},
		{"US", "NA"},
		{"NZ", "OC"},
		{"BR", "SA"},
		{"JP", "AS"},
		{"ZA", "AF"},
		{"AQ", "AN"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			continent, err := ContinentOf(tt.country)
			require.NoError(t, err)
			assert.Equal(t, tt.continent, continent)
		})
	}
}

func TestContinentOf_UnknownCountry(t *testing.T) {
	_, err := ContinentOf("XX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XX")
}

func TestHasSubregions(t *testing.T) {
	assert.True(t, HasSubregions("DE"))
	assert.True(t, HasSubregions("NZ"))
	assert.True(t, HasSubregions("US"))
	// Tracked countries only; most of the world has no sub-regions.
	assert.False(t, HasSubregions("IS"))
	assert.False(t, HasSubregions("JP"))
}

func TestKnownRegion(t *testing.T) {
	tests := []struct {
		region string
		known  bool
	}{
		{"DE-BY", true},
		{"DE", true},      // bare code valid before refinement
		{"DE-XX", false},  // no such state
		{"NZ-S", true},
		{"US-OR", true},
		{"JP", true},      // untracked country, bare code only
		{"JP-13", false},  // untracked country may not carry a sub-region
		{"XX", false},
		{"XX-YY", false},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			assert.Equal(t, tt.known, KnownRegion(tt.region))
		})
	}
}

// Every sub-region's country prefix must itself be a known country, otherwise
// the two tables have drifted apart.
func TestTablesConsistent(t *testing.T) {
	load()
	for country, regions := range regionsByCountry {
		require.True(t, KnownCountry(country), "country %s missing from continents table", country)
		for region := range regions {
			assert.True(t, strings.HasPrefix(region, country+"-"),
				"region %s does not belong to country %s", region, country)
		}
	}
}
