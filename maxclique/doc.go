// Package maxclique implements exact maximum-clique search over any
// undirected, integer-indexed graph.
//
// # Degeneracy-ordered branch and bound
//
// FindMaxClique follows the branch-and-bound structure for maximum clique on
// sparse graphs, with the outer loop visiting vertices in increasing
// degeneracy order rather than plain degree order. Degeneracy ordering is
// produced online by a mutating bin-sort as the outer loop proceeds:
//
//  1. Compute every vertex's degree; bin-sort vertices by degree into
//     sortedVertices, tracking each vertex's position in vertexPositions
//     and each degree bin's start offset in binStarts.
//  2. For each vertex v in increasing position order, with residual
//     degree d(v):
//     - Skip v if d(v) < bestSize (cannot beat the current best).
//     - Build the forward candidate set: neighbors u of v with
//     vertexPositions[u] > vertexPositions[v] and d(u) >= bestSize.
//     - Recurse on the candidate set (subset search below); if it beats
//     bestSize, record the new best clique as v plus the recursion's
//     accumulated vertices.
//     - Peel v: for every neighbor u with d(u) > d(v), decrement d(u) and
//     swap it one bin down, keeping the bin-sort invariant intact for
//     vertices not yet visited.
//  3. Subset search pops candidates LIFO, upper-bound-prunes on
//     c + len(S) <= bestSize, and recurses on the intersection of the
//     remaining candidates with v's neighborhood.
//
// Bounding recursion depth by the graph's degeneracy keeps the peel-and-rebin
// bookkeeping at O(E) total across the outer pass and turns what would be
// worst-case exponential behavior into something tractable for the sparse
// consistency graphs this package is built to search.
package maxclique
