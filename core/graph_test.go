package core_test

import (
	"testing"

	"github.com/lovelyyoshino/bron-kerbosch/core"
)

func TestConsistencyGraph_AddEdgeAndQuery(t *testing.T) {
	g := core.NewConsistencyGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	if !g.HasEdge(0, 1) {
		t.Fatalf("expected edge (0,1)")
	}
	if !g.HasEdge(1, 0) {
		t.Fatalf("expected edge (1,0) — graph must be undirected")
	}
	if g.HasEdge(0, 2) {
		t.Fatalf("did not expect edge (0,2)")
	}
	if g.HasEdge(3, 0) {
		t.Fatalf("did not expect edge (3,0)")
	}
}

func TestConsistencyGraph_NeighborsSorted(t *testing.T) {
	g := core.NewConsistencyGraph(5)
	g.AddEdge(0, 3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 4)

	nbrs := g.Neighbors(0)
	want := []int32{1, 3, 4}
	if len(nbrs) != len(want) {
		t.Fatalf("got %v, want %v", nbrs, want)
	}
	for i := range want {
		if nbrs[i] != want[i] {
			t.Fatalf("got %v, want %v", nbrs, want)
		}
	}
}

func TestConsistencyGraph_DuplicateEdgeIsNoOp(t *testing.T) {
	g := core.NewConsistencyGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)

	if g.Degree(0) != 1 {
		t.Fatalf("expected degree 1 after duplicate AddEdge, got %d", g.Degree(0))
	}
}

func TestConsistencyGraph_SelfLoopPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on self-loop")
		}
	}()
	g := core.NewConsistencyGraph(2)
	g.AddEdge(0, 0)
}

func TestConsistencyGraph_N(t *testing.T) {
	g := core.NewConsistencyGraph(7)
	if g.N() != 7 {
		t.Fatalf("got N()=%d, want 7", g.N())
	}
}
