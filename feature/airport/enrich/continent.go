package enrich

import (
	"fmt"

	"github.com/weglide/flugfeld/feature/airport/geo"
	"github.com/weglide/flugfeld/feature/airport/models"
)

// Saver persists an intermediate state of the working set. Long-running
// passes call it after each record update.
type Saver func([]models.Airport) error

// AssignContinents sets the continent from the country part of the region,
// overwriting any existing value. A country missing from the continent table
// is fatal: the table needs updating, there is no sensible fallback.
func AssignContinents(airports []models.Airport) ([]models.Airport, error) {
	airports = models.Clone(airports)
	for i := range airports {
		continent, err := geo.ContinentOf(airports[i].Country())
		if err != nil {
			return nil, fmt.Errorf("continent for %q: %w", airports[i].DisplayName(), err)
		}
		airports[i].Continent = continent
	}
	return airports, nil
}
