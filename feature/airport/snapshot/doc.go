// Package snapshot persists the airport set: a CSV file with a stable
// column order that round-trips every field, and a GeoJSON dump for
// downstream map consumers.
//
// The CSV snapshot is rewritten after every significant mutation, not just
// at pipeline end, so an interrupted run never loses completed enrichment
// work. Writes are guarded against termination signals: a SIGINT or SIGTERM
// arriving mid-write is held back until the file is complete, then
// redelivered.
package snapshot
