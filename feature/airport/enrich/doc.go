// Package enrich derives secondary airport attributes: continent, timezone,
// sub-region, the curated display name, and the launch count.
//
// Each pass takes the full set and returns a new one; none mutates its
// input. Order mostly does not matter, with two exceptions: region
// refinement needs the continent set, and launch counts must be in place
// before the reign computation downstream.
//
// Passes that call external services (region, launches) persist the working
// set after every single record update so an interrupted run resumes where
// it stopped, and they pace their requests to stay polite to the upstream
// service.
package enrich
