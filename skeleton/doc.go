// Package skeleton implements the backtracking enumeration of connected
// simple graphs on N vertices with max degree 4 (component E): a
// canonicity-pruned search over the strict upper triangle of the
// adjacency matrix, plus the per-vertex feature computation used to
// bucket the emitted skeletons for isomorph detection downstream.
package skeleton
