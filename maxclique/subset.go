package maxclique

// findMaxCliqueSubset explores candidate list s (a forward cone under the
// current degeneracy ordering) looking for a clique of size c + k for some
// k, updating e.bestSize whenever it finds one larger than the current best.
// acc accumulates the non-root vertices of whichever clique is currently
// winning; it is cleared and rebuilt, never merged, whenever a strictly
// better clique is found — the caller only trusts acc's final contents when
// the return value exceeds the bestSize seen on entry.
//
// s is consumed LIFO: popping from the tail gives the natural recursion
// shape and lets each level build its own reduced candidate list without
// disturbing the caller's slice.
func (e *engine) findMaxCliqueSubset(s []int32, c int, acc *[]int32) int {
	if len(s) == 0 {
		if c > e.bestSize {
			*acc = (*acc)[:0]
			return c
		}
		return e.bestSize
	}

	for len(s) > 0 {
		if c+len(s) <= e.bestSize {
			break
		}

		v := s[len(s)-1]
		s = s[:len(s)-1]

		next := make([]int32, 0, len(s))
		for _, u := range s {
			if int(e.degrees[u]) >= e.bestSize && e.g.HasEdge(int(v), int(u)) {
				next = append(next, u)
			}
		}

		// Snapshot bestSize before recursing: the recursive call may itself
		// bump e.bestSize on the way back up (a deeper frame's improvement),
		// so comparing against the live e.bestSize here would silently drop
		// this level's vertex whenever a descendant already advanced the
		// bound to exactly the returned size.
		prevBest := e.bestSize
		size := e.findMaxCliqueSubset(next, c+1, acc)
		if size > prevBest {
			e.bestSize = size
			*acc = append(*acc, v)
		}
	}

	return e.bestSize
}
