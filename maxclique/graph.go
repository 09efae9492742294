package maxclique

// Graph is the minimal contract the search needs: a dense vertex index space
// [0, N()), neighbor iteration, and an edge-existence query. Any undirected,
// integer-indexed graph satisfies this — core.ConsistencyGraph does, and so
// would any other representation (bitset, sorted lists, dense matrix) a
// caller chose instead.
type Graph interface {
	// N returns the number of vertices.
	N() int
	// Neighbors returns v's neighbors. The order is not significant to the
	// search; callers may return any order, sorted or not.
	Neighbors(v int) []int32
	// HasEdge reports whether the undirected edge (u, v) exists.
	HasEdge(u, v int) bool
}
