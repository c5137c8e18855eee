package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dkvasnikov/hydrocarbon/core"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex (re-add): %v", err)
	}
	if got := g.Vertices(); len(got) != 1 || got[0] != "A" {
		t.Fatalf("Vertices() = %v, want [A]", got)
	}
}

func TestAddVertexEmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); err != core.ErrEmptyVertexID {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
}

func TestAddEdgeMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge("A", "B") || !g.HasEdge("B", "A") {
		t.Fatalf("HasEdge should report true in both directions")
	}
}

func TestAddEdgeRejectsLoop(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "A"); err != core.ErrLoopNotAllowed {
		t.Fatalf("AddEdge(A,A) = %v, want ErrLoopNotAllowed", err)
	}
}

func TestAddEdgeRejectsParallel(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("A", "B"); err != core.ErrMultiEdgeNotAllowed {
		t.Fatalf("AddEdge (parallel) = %v, want ErrMultiEdgeNotAllowed", err)
	}
	if _, err := g.AddEdge("B", "A"); err != core.ErrMultiEdgeNotAllowed {
		t.Fatalf("AddEdge (parallel, reversed) = %v, want ErrMultiEdgeNotAllowed", err)
	}
}

func TestEdgesSortedByID(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")

	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("Edges() returned %d edges, want 3", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i-1].ID >= edges[i].ID {
			t.Fatalf("Edges() not sorted: %s >= %s", edges[i-1].ID, edges[i].ID)
		}
	}
}

func TestNeighborsAndNeighborIDs(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")

	neighbors, err := g.Neighbors("A")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("Neighbors(A) returned %d edges, want 2", len(neighbors))
	}

	ids, err := g.NeighborIDs("A")
	if err != nil {
		t.Fatalf("NeighborIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "B" || ids[1] != "C" {
		t.Fatalf("NeighborIDs(A) = %v, want [B C]", ids)
	}
}

func TestNeighborsMissingVertex(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.Neighbors("missing"); err != core.ErrVertexNotFound {
		t.Fatalf("Neighbors(missing) = %v, want ErrVertexNotFound", err)
	}
}

// TestConcurrentAddEdge exercises the Graph's concurrency-safety guarantee:
// many goroutines adding disjoint edges must never race or corrupt the
// catalog, and the final edge count must match exactly.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := fmt.Sprintf("v%d", i)
			v := fmt.Sprintf("v%d", i+1)
			_, _ = g.AddEdge(u, v)
		}(i)
	}
	wg.Wait()

	if got := len(g.Edges()); got != n {
		t.Fatalf("Edges() count = %d, want %d", got, n)
	}
}
