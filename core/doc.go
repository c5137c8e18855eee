// Package core defines the Graph, Vertex, and Edge types used to bridge
// carbon skeletons into graph-theoretic algorithms (bfs, dfs) and back.
//
// Graph models only simple, undirected, unweighted graphs: no directed
// edges, no weights, no self-loops, no parallel edges. That is the single
// mode the carbon-skeleton domain ever produces or consumes, so the wider
// directed/weighted/multigraph machinery a general-purpose graph library
// would carry has no caller here and is not modeled.
//
// Vertices() and Edges() return results sorted by ID for deterministic
// iteration. All operations are safe for concurrent use: muVert guards the
// vertex catalog, muEdgeAdj guards edges and adjacency.
//
// Core methods:
//
//	AddVertex(id string) error                     // O(1)
//	HasVertex(id string) bool                       // O(1)
//	Vertices() []string                             // O(V log V)
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	HasEdge(from, to string) bool                   // O(1)
//	Edges() []*Edge                                 // O(E log E)
//	Neighbors(id string) ([]*Edge, error)            // O(d log d)
//	NeighborIDs(id string) ([]string, error)         // O(d log d), unique, sorted
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - an edge's endpoints are identical.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core
