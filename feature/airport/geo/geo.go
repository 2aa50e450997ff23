// Package geo holds the static reference tables mapping countries to
// continents and listing the countries for which WeGlide tracks sub-regions.
//
// Both tables ship embedded with the binary. A country missing from the
// continent table is a data-completeness bug: the fix is a table update, not
// a runtime fallback, so lookups fail loudly.
package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed continents.json
var continentsJSON []byte

//go:embed countries.json
var countriesJSON []byte

type countryEntry struct {
	Name    string            `json:"name"`
	Regions map[string]string `json:"regions,omitempty"`
}

type continentEntry struct {
	Regions map[string]countryEntry `json:"regions"`
}

type countriesFile struct {
	Data map[string]continentEntry `json:"data"`
}

var (
	loadOnce sync.Once

	// continentByCountry maps "DE" -> "EU" etc.
	continentByCountry map[string]string

	// regionsByCountry maps "DE" -> {"DE-BY": ..., ...} for countries that
	// declare sub-regions. Countries without sub-regions are absent.
	regionsByCountry map[string]map[string]string
)

func load() {
	loadOnce.Do(func() {
		var continents map[string][]string
		if err := json.Unmarshal(continentsJSON, &continents); err != nil {
			panic(fmt.Sprintf("geo: malformed continents table: %v", err))
		}
		continentByCountry = make(map[string]string)
		for continent, countries := range continents {
			for _, country := range countries {
				continentByCountry[country] = continent
			}
		}

		var file countriesFile
		if err := json.Unmarshal(countriesJSON, &file); err != nil {
			panic(fmt.Sprintf("geo: malformed countries table: %v", err))
		}
		regionsByCountry = make(map[string]map[string]string)
		for _, continent := range file.Data {
			for country, entry := range continent.Regions {
				if len(entry.Regions) > 0 {
					regionsByCountry[country] = entry.Regions
				}
			}
		}
	})
}

// ContinentOf returns the continent code for a 2-letter country code.
// An unknown country is an error, signalling the continents table is stale.
func ContinentOf(country string) (string, error) {
	load()
	continent, ok := continentByCountry[country]
	if !ok {
		return "", fmt.Errorf("no continent found for country %q", country)
	}
	return continent, nil
}

// KnownCountry reports whether the country appears in the continent table.
func KnownCountry(country string) bool {
	load()
	_, ok := continentByCountry[country]
	return ok
}

// HasSubregions reports whether WeGlide tracks sub-regions for the country
// and a bare country code therefore needs refinement.
func HasSubregions(country string) bool {
	load()
	_, ok := regionsByCountry[country]
	return ok
}

// KnownRegion reports whether a region value is valid: the country part must
// be in the continent table, and if the country declares sub-regions and the
// value carries one, the full code must be listed.
func KnownRegion(region string) bool {
	load()
	country := region
	if idx := strings.IndexByte(region, '-'); idx >= 0 {
		country = region[:idx]
	}
	if !KnownCountry(country) {
		return false
	}
	regions, tracked := regionsByCountry[country]
	if !tracked {
		// No sub-regions declared: only the bare country code is valid.
		return country == region
	}
	if country == region {
		// Bare code is still valid; refinement may not have run yet.
		return true
	}
	_, ok := regions[region]
	return ok
}

// Continents returns all continent codes in the table.
func Continents() []string {
	load()
	seen := make(map[string]struct{})
	var out []string
	for _, continent := range continentByCountry {
		if _, ok := seen[continent]; !ok {
			seen[continent] = struct{}{}
			out = append(out, continent)
		}
	}
	return out
}
