package checks

import (
	"fmt"

	"github.com/weglide/flugfeld/feature/airport/geo"
	"github.com/weglide/flugfeld/feature/airport/models"
)

// CheckContinents verifies that every record carries a continent and that
// it matches the continent table for the record's country code.
func CheckContinents(airports []models.Airport) []string {
	var problems []string

	for i, airport := range airports {
		if airport.Continent == "" {
			problems = append(problems, fmt.Sprintf("record %d (%s) has no continent", i, airport.OpenAIPName))
			continue
		}
		want, err := geo.ContinentOf(airport.Country())
		if err != nil {
			problems = append(problems, fmt.Sprintf("record %d (%s): %v", i, airport.OpenAIPName, err))
			continue
		}
		if airport.Continent != want {
			problems = append(problems, fmt.Sprintf("record %d (%s) has continent %s, expected %s",
				i, airport.OpenAIPName, airport.Continent, want))
		}
	}

	return problems
}

// CheckRegions verifies that every region code is valid: the country part
// must be known, and a sub-region suffix must be one the country declares.
// A bare country code for a country with declared sub-regions is flagged as
// unrefined.
func CheckRegions(airports []models.Airport) []string {
	var problems []string

	for i, airport := range airports {
		if airport.Region == "" {
			problems = append(problems, fmt.Sprintf("record %d (%s) has no region", i, airport.OpenAIPName))
			continue
		}
		if !geo.KnownRegion(airport.Region) {
			problems = append(problems, fmt.Sprintf("record %d (%s) has unknown region %s",
				i, airport.OpenAIPName, airport.Region))
			continue
		}
		if airport.Region == airport.Country() && geo.HasSubregions(airport.Country()) {
			problems = append(problems, fmt.Sprintf("record %d (%s) carries unrefined region %s",
				i, airport.OpenAIPName, airport.Region))
		}
	}

	return problems
}
