package graphbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyyoshino/bron-kerbosch/core"
	"github.com/lovelyyoshino/bron-kerbosch/graphbuilder"
)

func match(modelID, sceneID int64, mx, my, mz, sx, sy, sz float64) core.PairwiseMatch {
	return core.PairwiseMatch{
		Ids: core.IdPair{ID1: core.Identifier(modelID), ID2: core.Identifier(sceneID)},
		Centroids: core.PointPair{
			Model: core.Point{X: mx, Y: my, Z: mz},
			Scene: core.Point{X: sx, Y: sy, Z: sz},
		},
	}
}

func graphEdges(g *core.ConsistencyGraph) map[[2]int]bool {
	edges := make(map[[2]int]bool)
	for u := 0; u < g.N(); u++ {
		for _, v := range g.Neighbors(u) {
			if u < int(v) {
				edges[[2]int{u, int(v)}] = true
			}
		}
	}
	return edges
}

func TestBuilder_SymmetryAndNoSelfLoops(t *testing.T) {
	params := core.Params{Resolution: 0.1, MinClusterSize: 2}
	b := graphbuilder.NewBuilder(params)

	matches := []core.PairwiseMatch{
		match(1, 1, 0, 0, 0, 0, 0, 0),
		match(2, 2, 1, 0, 0, 1, 0, 0),
		match(3, 3, 0, 1, 0, 0, 1, 0),
	}
	g := b.Build(matches)

	for u := 0; u < g.N(); u++ {
		if g.HasEdge(u, u) {
			t.Fatalf("self-loop at %d", u)
		}
		for _, v := range g.Neighbors(u) {
			if !g.HasEdge(int(v), u) {
				t.Fatalf("edge (%d,%d) not symmetric", u, v)
			}
		}
	}
}

func TestBuilder_ConsistentMatchesFormEdges(t *testing.T) {
	params := core.Params{Resolution: 0.01, MinClusterSize: 2}
	b := graphbuilder.NewBuilder(params)

	matches := []core.PairwiseMatch{
		match(1, 1, 0, 0, 0, 0, 0, 0),
		match(2, 2, 1, 0, 0, 1, 0, 0),
		match(3, 3, 0, 1, 0, 0, 1, 0),
	}
	g := b.Build(matches)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(1, 2))
}

func TestBuilder_SameModelIDNeverConsistent(t *testing.T) {
	params := core.Params{Resolution: 100, MinClusterSize: 2}
	b := graphbuilder.NewBuilder(params)

	matches := []core.PairwiseMatch{
		match(1, 1, 0, 0, 0, 0, 0, 0),
		match(1, 2, 0, 0, 0, 5, 5, 5),
	}
	g := b.Build(matches)
	assert.False(t, g.HasEdge(0, 1), "matches sharing a model id must never be consistent")
}

func TestBuilder_SameSceneIDNeverConsistent(t *testing.T) {
	params := core.Params{Resolution: 100, MinClusterSize: 2}
	b := graphbuilder.NewBuilder(params)

	matches := []core.PairwiseMatch{
		match(1, 1, 0, 0, 0, 0, 0, 0),
		match(2, 1, 0, 0, 0, 5, 5, 5),
	}
	g := b.Build(matches)
	assert.False(t, g.HasEdge(0, 1), "matches sharing a scene id must never be consistent")
}

// TestBuilder_IncrementalEquivalence covers scenario E: an incremental
// builder fed a growing match list, and a cold builder fed the equivalent
// final list, must produce edge-identical graphs.
func TestBuilder_IncrementalEquivalence(t *testing.T) {
	params := core.Params{Resolution: 0.05, MinClusterSize: 2}

	base := make([]core.PairwiseMatch, 0, 20)
	for i := int64(0); i < 20; i++ {
		x := float64(i)
		base = append(base, match(i, i, x, 0, 0, x, 0, 0))
	}

	incremental := graphbuilder.NewBuilder(params)
	incremental.Build(base[:15])
	gIncremental := incremental.Build(base)

	cold := graphbuilder.NewBuilder(params)
	gCold := cold.Build(base)

	require.Equal(t, gCold.N(), gIncremental.N())
	assert.Equal(t, graphEdges(gCold), graphEdges(gIncremental))
}

// TestBuilder_DriftInvalidation covers scenario F: a match reappearing with
// centroids shifted beyond the drift budget must have its cache slot
// dropped and its edges recomputed from scratch, not from stale candidates.
func TestBuilder_DriftInvalidation(t *testing.T) {
	params := core.Params{Resolution: 0.05, MinClusterSize: 2}
	b := graphbuilder.NewBuilder(params)

	call1 := []core.PairwiseMatch{
		match(1, 1, 0, 0, 0, 0, 0, 0),
		match(2, 2, 1, 0, 0, 1, 0, 0),
	}
	g1 := b.Build(call1)
	assert.True(t, g1.HasEdge(0, 1))

	// match 0 drifts far beyond the tau drift budget in the model frame; match 1
	// stays put. The pair should no longer be reported consistent.
	call2 := []core.PairwiseMatch{
		match(1, 1, 10, 10, 10, 0, 0, 0),
		match(2, 2, 1, 0, 0, 1, 0, 0),
	}
	g2 := b.Build(call2)
	assert.False(t, g2.HasEdge(0, 1), "drifted pair must be recomputed, not read from stale cache")
}

func TestBuilder_EmptyMatchesProducesEmptyGraph(t *testing.T) {
	params := core.Params{Resolution: 0.1, MinClusterSize: 2}
	b := graphbuilder.NewBuilder(params)
	g := b.Build(nil)
	assert.Equal(t, 0, g.N())
}

func TestBuilder_MaxTargetDistanceEarlyReject(t *testing.T) {
	params := core.Params{Resolution: 100, MinClusterSize: 2, MaxModelRadius: 1}
	b := graphbuilder.NewBuilder(params)

	// model-frame distance is 100, far beyond max_target_distance (2), so
	// this pair must be rejected regardless of the wide resolution.
	matches := []core.PairwiseMatch{
		match(1, 1, 0, 0, 0, 0, 0, 0),
		match(2, 2, 100, 0, 0, 0, 0, 0),
	}
	g := b.Build(matches)
	assert.False(t, g.HasEdge(0, 1))
}
