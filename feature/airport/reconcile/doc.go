// Package reconcile merges a freshly fetched OpenAIP batch into the
// persisted airport set without losing locally curated data.
//
// The merge is keyed on the OpenAIP id and is additive: records present in
// the snapshot but absent from the fetch are retained (upstream removals are
// an external curation action, never inferred from a missing page). A record
// whose provider-controlled data changed is replaced wholesale, carrying only
// the curated WeGlide name forward; derived fields become stale and are
// recomputed by the enrichment passes downstream.
//
// The package also owns the WeGlide id assignment: dense, strictly
// increasing, never reassigned. Because the merge keeps existing records in
// place and appends new ones in arrival order, fresh ids follow upstream
// arrival order.
package reconcile
