package adjmat

import (
	"fmt"

	"github.com/dkvasnikov/hydrocarbon/bititer"
	"github.com/dkvasnikov/hydrocarbon/core"
)

// FromCoreGraph converts a core.Graph into a Skeleton, for use by fixture
// builders and oracle tests — never by the core pipeline, which only ever
// produces Skeletons via package skeleton's backtracker.
//
// core.Graph is always simple and undirected, so the only failure mode is
// too many vertices (ErrTooManyVertices). Vertices are indexed in the order
// returned by g.Vertices() (lexicographically ascending, per core's
// documented determinism), and that mapping is returned alongside the
// Skeleton so callers can translate back.
func FromCoreGraph(g *core.Graph) (Skeleton, map[string]int, error) {
	ids := g.Vertices()
	if len(ids) > MaxN {
		return Skeleton{}, nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(ids), MaxN)
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	s := NewSkeleton(len(ids))
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if !s.At(i, j) {
			s.Flip(i, j)
		}
	}
	return s, index, nil
}

// ToCoreGraph renders s as a core.Graph with vertex IDs "0",…,"n-1" in
// index order, for use by the bfs/dfs oracles in tests.
func (s Skeleton) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	ids := make([]string, s.n)
	for i := 0; i < s.n; i++ {
		ids[i] = fmt.Sprintf("%d", i)
		_ = g.AddVertex(ids[i])
	}
	for i := 0; i < s.n; i++ {
		// Mask out columns ≤ i so an undirected edge (i,j) is emitted once,
		// from its lower-indexed endpoint.
		above := s.rows[i] &^ uint16(1<<uint(i+1)-1)
		for j := range bititer.Bits(uint32(above)) {
			_, _ = g.AddEdge(ids[i], ids[j])
		}
	}
	return g
}
