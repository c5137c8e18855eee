package dfs

import (
	"fmt"

	"github.com/dkvasnikov/hydrocarbon/adjmat"
)

// RingCount returns the skeleton's cyclomatic number |E| - |V| + 1, i.e.
// the number of independent rings in its carbon framework (0 for an
// acyclic, tree-shaped skeleton).
func RingCount(s adjmat.Skeleton) int {
	n := s.N()
	edges := 0
	for i := 0; i < n; i++ {
		edges += s.Degree(i)
	}
	edges /= 2
	return edges - n + 1
}

// RingCountHydrocarbon returns the ring count of h's underlying carbon
// skeleton: bond order doesn't change which pairs of atoms are bonded, so
// this counts distinct bonded pairs rather than re-deriving a Skeleton.
func RingCountHydrocarbon(h adjmat.Hydrocarbon) int {
	n := h.N()
	edges := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if h.At(i, j) > 0 {
				edges++
			}
		}
	}
	return edges - n + 1
}

// SummarizeRings buckets hydrocarbons by their skeleton's ring count, for
// the --rings CLI summary line.
func SummarizeRings(hydrocarbons []adjmat.Hydrocarbon) map[int]int {
	out := make(map[int]int)
	for _, h := range hydrocarbons {
		out[RingCountHydrocarbon(h)]++
	}
	return out
}

// SummarizeSkeletonRings is SummarizeRings' skeleton-only counterpart, used
// directly by tests that don't want to round-trip through a Hydrocarbon.
func SummarizeSkeletonRings(skeletons []adjmat.Skeleton) map[int]int {
	out := make(map[int]int)
	for _, s := range skeletons {
		out[RingCount(s)]++
	}
	return out
}

// CrossCheckRings re-derives ring presence via DetectCycles over the
// core.Graph bridge and confirms it agrees with RingCount's arithmetic: a
// positive cyclomatic number must come with at least one detected cycle,
// and a zero or negative one must come with none.
func CrossCheckRings(s adjmat.Skeleton) error {
	g := s.ToCoreGraph()
	hasCycle, _, err := DetectCycles(g)
	if err != nil {
		return fmt.Errorf("dfs: CrossCheckRings: %w", err)
	}

	want := RingCount(s) > 0
	if hasCycle != want {
		return fmt.Errorf("dfs: cyclomatic number disagrees with DetectCycles: count=%d hasCycle=%v", RingCount(s), hasCycle)
	}
	return nil
}
