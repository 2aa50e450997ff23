// Package integrity provides health checks for a published airport snapshot.
//
// Unlike the 'reconcile' package which merges provider data into the
// directory, this package validates that an already written snapshot
// satisfies the structural guarantees downstream consumers rely on.
//
// # Checks Provided
//
//   - Identity: every record carries a WeGlide id, ids are unique and
//     strictly ascending in file order.
//   - Continents: every record carries a continent consistent with its
//     country code.
//   - Regions: every region code belongs to the declared set for its
//     country, or is the bare country code where no subdivision is known.
package integrity
