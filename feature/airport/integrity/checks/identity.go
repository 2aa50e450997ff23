package checks

import (
	"fmt"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// CheckIdentity verifies that every record carries a WeGlide id and that
// the ids are unique and strictly ascending in file order.
func CheckIdentity(airports []models.Airport) []string {
	var problems []string

	last := 0
	seen := make(map[int]string, len(airports))
	for i, airport := range airports {
		if airport.ID == nil {
			problems = append(problems, fmt.Sprintf("record %d (%s) has no weglide id", i, airport.OpenAIPName))
			continue
		}
		id := *airport.ID
		if holder, ok := seen[id]; ok {
			problems = append(problems, fmt.Sprintf("weglide id %d held by both %q and %q", id, holder, airport.OpenAIPName))
		} else {
			seen[id] = airport.OpenAIPName
		}
		if id <= last {
			problems = append(problems, fmt.Sprintf("weglide id %d at record %d breaks ascending order", id, i))
		}
		last = id
	}

	return problems
}
