package adjmat_test

import (
	"testing"

	"github.com/dkvasnikov/hydrocarbon/adjmat"
	"github.com/dkvasnikov/hydrocarbon/bfs"
)

// connectedViaBFS cross-validates Skeleton.Connected's bitset BFS against
// bfs.BFS run over the core.Graph bridge: s is connected
// iff a BFS from vertex "0" visits every vertex.
func connectedViaBFS(t *testing.T, s adjmat.Skeleton) bool {
	t.Helper()
	if s.N() == 0 {
		return true
	}
	g := s.ToCoreGraph()
	res, err := bfs.BFS(g, "0")
	if err != nil {
		t.Fatalf("bfs.BFS: %v", err)
	}
	return len(res.Order) == s.N()
}

func TestConnectedAgreesWithBFSOracleTriangle(t *testing.T) {
	tri := triangle()
	if got, want := tri.Connected(), connectedViaBFS(t, tri); got != want {
		t.Fatalf("triangle: Connected()=%v, bfs oracle=%v", got, want)
	}
}

func TestConnectedAgreesWithBFSOracleDisconnected(t *testing.T) {
	disc := adjmat.NewSkeleton(4)
	disc.Flip(0, 1)
	disc.Flip(2, 3)
	if got, want := disc.Connected(), connectedViaBFS(t, disc); got != want {
		t.Fatalf("disconnected: Connected()=%v, bfs oracle=%v", got, want)
	}
}

func TestConnectedAgreesWithBFSOraclePath(t *testing.T) {
	path := adjmat.NewSkeleton(5)
	path.Flip(0, 1)
	path.Flip(1, 2)
	path.Flip(2, 3)
	path.Flip(3, 4)
	if got, want := path.Connected(), connectedViaBFS(t, path); got != want {
		t.Fatalf("path: Connected()=%v, bfs oracle=%v", got, want)
	}
}
