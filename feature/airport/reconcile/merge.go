package reconcile

import (
	"github.com/weglide/flugfeld/feature/airport/models"
)

// Options controls merge behavior.
type Options struct {
	// AdmitNew appends upstream records with no matching OpenAIP id.
	// Off by default: new airports enter the directory by explicit opt-in
	// so a noisy upstream batch cannot silently grow the set.
	AdmitNew bool
}

// ignoredKinds are categories of no interest to glider pilots. Records of
// these kinds are dropped before merging.
var ignoredKinds = map[models.Kind]struct{}{
	models.KindHeliportMilitary: {},
	models.KindHeliportCivil:    {},
	models.KindAerodromeClosed:  {},
	models.KindAirfieldWater:    {},
}

// Filter removes irrelevant airports such as heliports and closed
// aerodromes. Returns a new list.
func Filter(airports []models.Airport) []models.Airport {
	out := make([]models.Airport, 0, len(airports))
	for _, a := range airports {
		if _, ignore := ignoredKinds[a.Kind]; ignore {
			continue
		}
		out = append(out, a)
	}
	return out
}

// changed reports whether any provider-controlled field differs between the
// remote and the existing record for the same OpenAIP id.
func changed(remote, existing models.Airport) bool {
	return remote.OpenAIPName != existing.OpenAIPName ||
		remote.Kind != existing.Kind ||
		remote.Longitude != existing.Longitude ||
		remote.Latitude != existing.Latitude ||
		remote.Elevation != existing.Elevation ||
		!models.PtrEq(remote.ICAO, existing.ICAO) ||
		!models.PtrEq(remote.RadioFrequency, existing.RadioFrequency) ||
		!models.PtrEq(remote.RadioType, existing.RadioType) ||
		!models.PtrEq(remote.RadioDescription, existing.RadioDescription) ||
		!models.PtrEq(remote.RunwayName, existing.RunwayName) ||
		!models.PtrEq(remote.RunwaySurface, existing.RunwaySurface) ||
		!models.PtrEq(remote.RunwayDirection, existing.RunwayDirection) ||
		!models.PtrEq(remote.RunwayLength, existing.RunwayLength) ||
		!models.PtrEq(remote.RunwayWidth, existing.RunwayWidth)
}

// Merge folds the remote batch into the existing set.
//
// For each remote record: unknown OpenAIP id appends (when opted in via
// AdmitNew), changed provider data replaces the stored record in place while
// the curated WeGlide name is carried forward, unchanged provider data keeps
// the stored record untouched so its derived fields and id survive.
//
// The relative order of existing records is preserved; admitted records are
// appended in the order they appear in remote. Merging the same batch twice
// is a no-op.
func Merge(existing, remote []models.Airport, opts Options) []models.Airport {
	merged := models.Clone(existing)

	index := make(map[string]int, len(merged))
	for i, a := range merged {
		index[a.OpenAIPID] = i
	}

	for _, remoteAirport := range remote {
		i, ok := index[remoteAirport.OpenAIPID]
		if !ok {
			if opts.AdmitNew {
				index[remoteAirport.OpenAIPID] = len(merged)
				merged = append(merged, remoteAirport)
			}
			continue
		}

		if changed(remoteAirport, merged[i]) {
			// Replace with the remote record, losing derived data except
			// the curated name and the WeGlide id (re-keying the airport
			// would orphan its launch statistics). The physical airport
			// may have moved or changed category, so region, timezone,
			// launches and reign are recomputed by the passes that follow.
			remoteAirport.Name = merged[i].Name
			remoteAirport.ID = merged[i].ID
			merged[i] = remoteAirport
		}
	}

	return merged
}
