package recognizer

import "github.com/lovelyyoshino/bron-kerbosch/core"

// ConsistencyGraphSource produces a consistency graph from the current
// match vector. graphbuilder.Builder is the incremental implementation used
// by default; per §9's design note, the orchestrator is parameterized over
// this capability rather than hard-coding a concrete builder, so a caller
// with different amortization needs (e.g. an exhaustive, non-caching
// builder) can supply one via WithGraphBuilder without touching Recognizer
// itself.
type ConsistencyGraphSource interface {
	Build(matches []core.PairwiseMatch) *core.ConsistencyGraph
}
