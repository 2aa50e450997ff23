package reconcile

import (
	"fmt"
	"sort"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// AssignIDs gives every airport without a WeGlide id the next free one,
// starting above the highest id already in the set. Existing ids are never
// touched. Ids are handed out in list order, which after a merge is upstream
// arrival order for new records.
//
// Two records holding the same non-nil id is data corruption and fatal.
func AssignIDs(airports []models.Airport) ([]models.Airport, error) {
	airports = models.Clone(airports)

	maxID := 0
	seen := make(map[int]string, len(airports))
	for _, a := range airports {
		if a.ID == nil {
			continue
		}
		if other, dup := seen[*a.ID]; dup {
			return nil, fmt.Errorf(
				"duplicate weglide id %d held by %q and %q", *a.ID, other, a.DisplayName())
		}
		seen[*a.ID] = a.DisplayName()
		if *a.ID > maxID {
			maxID = *a.ID
		}
	}

	for i := range airports {
		if airports[i].ID == nil {
			maxID++
			airports[i].ID = models.Ptr(maxID)
		}
	}

	return airports, nil
}

// SortByID orders airports by WeGlide id ascending with nil ids moved to the
// end, preserving the relative order of unassigned records.
func SortByID(airports []models.Airport) []models.Airport {
	airports = models.Clone(airports)
	sort.SliceStable(airports, func(i, j int) bool {
		a, b := airports[i].ID, airports[j].ID
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
	return airports
}
