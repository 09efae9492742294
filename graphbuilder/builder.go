package graphbuilder

import (
	"github.com/lovelyyoshino/bron-kerbosch/core"
)

// Builder maintains the identifier-pair-keyed cache across successive calls
// to Build, amortizing the O(n^2) pairwise consistency test as the scene
// grows. A Builder is not safe for concurrent use — it mutates its cache in
// place on every call, mirroring the single recognizer instance it belongs
// to.
type Builder struct {
	tau               float64 // strict threshold
	tauCache          float64 // 2*tau, candidate-eligibility threshold
	driftBudget       float64 // tau, per-slot invalidation budget
	maxTargetDistance float64 // early-reject bound on model-frame distance, 0 = disabled

	slots    []slot
	idToSlot map[core.IdPair]int
	freeList []int
}

// cachedEntry pairs a match index with the slot it was resolved to during
// classification, so processCached need not re-derive the slot from the
// cache index a second time.
type cachedEntry struct {
	matchIdx int
	slot     int
}

// NewBuilder returns a Builder configured from params. params must already
// be valid (Params.Validate returned nil); NewBuilder trusts its caller.
func NewBuilder(params core.Params) *Builder {
	return &Builder{
		tau:               params.Resolution,
		tauCache:          2 * params.Resolution,
		driftBudget:       params.Resolution,
		maxTargetDistance: params.MaxTargetDistance(),
		idToSlot:          make(map[core.IdPair]int),
	}
}

// Build produces a consistency graph on [0, len(matches)) from the current
// matches, updating the cache in place. Vertex i corresponds to matches[i].
func (b *Builder) Build(matches []core.PairwiseMatch) *core.ConsistencyGraph {
	n := len(matches)
	g := core.NewConsistencyGraph(n)
	if n == 0 {
		return g
	}

	matchIndexToSlot := make([]int, n)
	for i := range matchIndexToSlot {
		matchIndexToSlot[i] = noSlot
	}
	slotToMatchIndex := make(map[int]int, n)

	var cached []cachedEntry
	var newIdx []int
	for i, m := range matches {
		s, ok := b.idToSlot[m.Ids]
		if !ok {
			newIdx = append(newIdx, i)
			continue
		}
		if drift(m.Centroids, b.slots[s].centroids) > b.driftBudget {
			b.freeSlot(s)
			newIdx = append(newIdx, i)
			continue
		}
		matchIndexToSlot[i] = s
		slotToMatchIndex[s] = i
		cached = append(cached, cachedEntry{i, s})
	}

	b.processCached(g, matches, cached, slotToMatchIndex)
	b.processNew(g, matches, newIdx, matchIndexToSlot, slotToMatchIndex)

	return g
}

// processCached replays each cached match's candidate list against the
// strict threshold, dropping references to slots that are no longer live
// or no longer present among this call's matches.
func (b *Builder) processCached(g *core.ConsistencyGraph, matches []core.PairwiseMatch, cached []cachedEntry, slotToMatchIndex map[int]int) {
	for _, entry := range cached {
		i, s := entry.matchIdx, entry.slot
		kept := b.slots[s].candidates[:0]
		for _, sp := range b.slots[s].candidates {
			if !b.slots[sp].live {
				continue
			}
			j, ok := slotToMatchIndex[int(sp)]
			if !ok {
				continue
			}
			kept = append(kept, sp)
			if isConsistent(matches[i], matches[j], b.tau) {
				g.AddEdge(i, j)
			}
		}
		b.slots[s].candidates = kept
	}
}

// processNew runs the full pairwise scan for each new match against every
// other match (cached or new), populating graph edges at the strict
// threshold and symmetric candidate-list entries at the loose threshold.
func (b *Builder) processNew(g *core.ConsistencyGraph, matches []core.PairwiseMatch, newIdx []int, matchIndexToSlot []int, slotToMatchIndex map[int]int) {
	n := len(matches)
	for _, i := range newIdx {
		s := b.acquireSlot(matches[i].Ids, matches[i].Centroids)
		matchIndexToSlot[i] = s
		slotToMatchIndex[s] = i

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dist, modelDist := consistencyDistance(matches[i].Centroids, matches[j].Centroids)
			if b.maxTargetDistance > 0 && modelDist > b.maxTargetDistance {
				continue
			}
			if isConsistent(matches[i], matches[j], b.tau) {
				g.AddEdge(i, j)
			}
			if dist <= b.tauCache {
				if sj := matchIndexToSlot[j]; sj != noSlot {
					b.slots[s].candidates = append(b.slots[s].candidates, int32(sj))
					b.slots[sj].candidates = append(b.slots[sj].candidates, int32(s))
				}
			}
		}
	}
}

// acquireSlot returns a slot for id, reusing a free slot when one is
// available and otherwise growing the slot vector.
func (b *Builder) acquireSlot(id core.IdPair, centroids core.PointPair) int {
	var s int
	if n := len(b.freeList); n > 0 {
		s = b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
	} else {
		s = len(b.slots)
		b.slots = append(b.slots, slot{})
	}
	b.slots[s].live = true
	b.slots[s].id = id
	b.slots[s].centroids = centroids
	b.slots[s].candidates = b.slots[s].candidates[:0]
	b.idToSlot[id] = s
	return s
}

// freeSlot returns s to the free list, dropping its cache-index entry. Its
// candidate list is left for lazy cleanup: any other slot still referencing
// s will drop the reference the next time it is itself processed as
// cached (see processCached's live check).
func (b *Builder) freeSlot(s int) {
	delete(b.idToSlot, b.slots[s].id)
	b.slots[s].live = false
	b.freeList = append(b.freeList, s)
}
