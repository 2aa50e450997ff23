package models

// Airport is the single record type flowing through the pipeline.
// The zero value of each pointer field means "unknown".
type Airport struct {
	// ID is the WeGlide id: locally assigned, sequential, never reused.
	// Nil until the id assignment pass has seen the record.
	ID *int `json:"weglide_id"`

	// OpenAIPID is the stable identifier assigned by OpenAIP and the join
	// key for reconciliation. Immutable once set.
	OpenAIPID string `json:"openaip_id"`

	// Name is the curated WeGlide display name. Never overwritten by
	// automated passes once set.
	Name *string `json:"weglide_name"`

	// OpenAIPName is the provider name, replaced on every update.
	OpenAIPName string `json:"openaip_name"`

	// Kind is the airport category, used to filter heliports and closed
	// aerodromes before merging.
	Kind Kind `json:"kind"`

	// Longitude and Latitude are WGS-84 degrees.
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`

	// Elevation is meters above sea level.
	Elevation int `json:"elevation"`

	// Region is a 2-letter country code, optionally refined with a
	// sub-region suffix (e.g. "US-OR"). The country prefix never changes.
	Region string `json:"region"`

	// Continent is the 2-letter continent code derived from the country.
	Continent string `json:"continent"`

	// Timezone is the IANA timezone at the airport coordinates.
	// Nil is valid (open water).
	Timezone *string `json:"timezone"`

	// Launches is the number of glider launches recorded by WeGlide.
	// Nil means the airport is not (yet) known to WeGlide.
	Launches *int `json:"launches"`

	// Reign is the distance in km within which no other airport with an
	// equal or greater number of launches exists. Derived, nil until the
	// reign pass has run.
	Reign *int `json:"reign"`

	// ICAO is the 4-letter ICAO code, if the airport has one.
	ICAO *string `json:"icao"`

	// Main radio, if any.
	RadioFrequency   *string `json:"radio_frequency"`
	RadioType        *string `json:"radio_type"`
	RadioDescription *string `json:"radio_description"`

	// Main runway, if any. Length and width in meters.
	RunwayName      *string `json:"rwy_name"`
	RunwaySurface   *string `json:"rwy_sfc"`
	RunwayDirection *int    `json:"rwy_direction"`
	RunwayLength    *int    `json:"rwy_length"`
	RunwayWidth     *int    `json:"rwy_width"`
}

// Country returns the 2-letter country code part of the region.
func (a Airport) Country() string {
	if len(a.Region) < 2 {
		return a.Region
	}
	return a.Region[:2]
}

// DisplayName returns the curated name if present, the provider name otherwise.
// Used for log and error messages only.
func (a Airport) DisplayName() string {
	if a.Name != nil {
		return *a.Name
	}
	return a.OpenAIPName
}

// Ptr returns a pointer to v. Convenience for building records with
// optional fields.
func Ptr[T any](v T) *T { return &v }

// PtrEq reports whether two optional values are equal, treating nil as a
// distinct value.
func PtrEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a shallow copy of the list. Every pipeline stage clones its
// input before modifying so stages never alias each other's slices.
func Clone(airports []Airport) []Airport {
	return append([]Airport(nil), airports...)
}
