// Package dfs implements depth‑first search traversal and cycle detection
// on a core.Graph, plus a ring-count supplement (rings.go) over the
// hydrocarbon skeleton bridge.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - DetectCycles: records the cycle closed by each back edge (one per
//     independent ring, not every simple cycle) using vertex coloring
//     (White, Gray, Black) and canonical signature deduplication.
//   - RingCount/RingCountHydrocarbon: the cyclomatic number |E|-|V|+1 of a
//     skeleton's carbon framework, cross-checked against DetectCycles.
//
// Why:
//   - Detect cycles to prevent infinite loops or inconsistent states
//   - Provide a foundation for SCC detection, connectivity, and pathfinding
//   - Report ring counts for the CLI's optional --rings summary
//
// Key Types & Constants:
//
//   - White, Gray, Black: untyped visitation-state constants
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C*L), Memory O(V+L\_max)
//     (C=#cycles, L=avg cycle length; Booth normalization is O(L))
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g \*core.Graph, startID string, opts ...Option) (\*DFSResult, error)
//     perform depth‑first traversal from startID
//   - DetectCycles(g \*core.Graph) (bool, \[]\[]string, error)
//     report existence and the list of back-edge cycles
//   - RingCount(s adjmat.Skeleton) int / RingCountHydrocarbon(h adjmat.Hydrocarbon) int
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterNeighbor()
//
// See docs/DFS.md for detailed tutorial, pseudocode, diagrams, and performance analysis.
package dfs
