// Package adjmat provides the two bit-packed symmetric matrix
// representations the enumeration pipeline is built on:
//
//   - Skeleton (AdjacencyBitMatrix): a simple graph, one bit per cell.
//   - Hydrocarbon (AdjacencyTwoBitsMatrix): a multigraph with bond
//     multiplicities 0..3, two bits per cell.
//
// Both are small, comparable value types — a fixed-size row array plus
// the active vertex count n — so they can be copied freely and used
// directly as map keys, matching the Copy+Eq+Hash discipline the
// algorithms that consume them depend on.
package adjmat
