// Package graphbuilder incrementally builds a core.ConsistencyGraph from a
// slice of matches, caching per-pair consistency results across calls so
// the O(n^2) pairwise test is only paid in full the first time a match's
// identifier pair is seen.
//
// # Cache policy
//
// Three thresholds govern the cache:
//
//   - tau, the strict threshold used for the final graph edge decision.
//   - tauCache = 2*tau, a looser threshold under which a pair is eligible
//     to be recorded as a candidate consistent pair. Overapproximating at
//     write time is what lets small centroid drifts between calls be
//     absorbed without invalidating the cache.
//   - the drift budget (tau), tolerated for a single slot's centroids
//     before the slot is invalidated and its candidate list discarded.
//
// Each call classifies incoming matches into cached (slot present, drift
// within budget), stale (slot present, drift exceeded — freed before
// anything else happens), and new (no slot). Cached matches are resolved by
// replaying their candidate list against the strict threshold; new matches
// pay the full pairwise scan against every other match and populate both
// the graph and, for pairs within the loose threshold, each other's
// candidate lists symmetrically.
package graphbuilder
