package maxclique

// engine holds all mutable search state for one FindMaxClique call. We use a
// dedicated struct instead of free functions passing eight parameters around
// so the bin-sort invariant and the running best are each updated in exactly
// one place.
//
// Complexity: O(V + E) for the initial bin-sort, O(E) total for peeling
// across the outer pass, and worst-case exponential (but degeneracy-bounded
// in practice) for the subset recursion.
type engine struct {
	g Graph

	// Bin-sort state: four parallel arrays maintaining vertices in
	// increasing residual-degree order. sortedVertices[binStarts[d]:binStarts[d+1]]
	// holds exactly the not-yet-visited vertices of current degree d.
	sortedVertices  []int32
	vertexPositions []int32
	degrees         []int32
	binStarts       []int32

	bestSize  int
	bestOwner []int32 // committed best clique, root-inclusive
}

// newEngine builds the initial bin-sort over g: computes every vertex's
// degree, then places vertices into sortedVertices grouped by increasing
// degree via a single counting pass.
func newEngine(g Graph) *engine {
	n := g.N()
	degrees := make([]int32, n)
	var maxDeg int32
	for v := 0; v < n; v++ {
		d := int32(len(g.Neighbors(v)))
		degrees[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}

	binCounts := make([]int32, maxDeg+2)
	for v := 0; v < n; v++ {
		binCounts[degrees[v]]++
	}
	binStarts := make([]int32, maxDeg+2)
	var sum int32
	for d := int32(0); d <= maxDeg; d++ {
		binStarts[d] = sum
		sum += binCounts[d]
	}

	cursor := append([]int32(nil), binStarts...)
	sortedVertices := make([]int32, n)
	vertexPositions := make([]int32, n)
	for v := 0; v < n; v++ {
		d := degrees[v]
		p := cursor[d]
		sortedVertices[p] = int32(v)
		vertexPositions[v] = p
		cursor[d]++
	}

	return &engine{
		g:               g,
		sortedVertices:  sortedVertices,
		vertexPositions: vertexPositions,
		degrees:         degrees,
		binStarts:       binStarts,
	}
}

// peel simulates removing v from the graph: every neighbor u with strictly
// greater residual degree drops by one and is swapped to the front of its
// bin, which — because sortedVertices is kept ascending by degree — is
// exactly the position bordering bin d(u)-1. Vertices already visited
// (smaller position than v) are untouched, matching the outer loop's
// guarantee that it never revisits a peeled vertex.
func (e *engine) peel(v int32) {
	dv := e.degrees[v]
	for _, u := range e.g.Neighbors(int(v)) {
		du := e.degrees[u]
		if du <= dv {
			continue
		}
		pu := e.vertexPositions[u]
		pw := e.binStarts[du]
		w := e.sortedVertices[pw]

		e.sortedVertices[pu] = w
		e.vertexPositions[w] = pu
		e.sortedVertices[pw] = u
		e.vertexPositions[u] = pw

		e.binStarts[du]++
		e.degrees[u] = du - 1
	}
}

// run executes the outer degeneracy-ordered pass and returns the best clique
// found, or nil if none reaches minSize.
func (e *engine) run(minSize int) []int32 {
	e.bestSize = minSize - 1

	n := len(e.sortedVertices)
	for i := 0; i < n; i++ {
		v := e.sortedVertices[i]
		dv := int(e.degrees[v])
		if dv < e.bestSize {
			e.peel(v)
			continue
		}

		candidates := e.forwardCandidates(v)
		var acc []int32
		prevBest := e.bestSize
		size := e.findMaxCliqueSubset(candidates, 1, &acc)
		if size > prevBest {
			e.bestSize = size
			e.bestOwner = append(append([]int32(nil), acc...), v)
		}

		e.peel(v)
	}

	if e.bestOwner == nil {
		return nil
	}
	return e.bestOwner
}

// forwardCandidates builds N*(v): neighbors u of v that come after v in the
// current degeneracy ordering and whose residual degree still meets the
// running bound.
func (e *engine) forwardCandidates(v int32) []int32 {
	posV := e.vertexPositions[v]
	nbrs := e.g.Neighbors(int(v))
	out := make([]int32, 0, len(nbrs))
	for _, u := range nbrs {
		if e.vertexPositions[u] > posV && int(e.degrees[u]) >= e.bestSize {
			out = append(out, u)
		}
	}
	return out
}
