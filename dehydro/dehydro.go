package dehydro

import (
	"github.com/dkvasnikov/hydrocarbon/adjmat"
	"github.com/dkvasnikov/hydrocarbon/bititer"
	"github.com/dkvasnikov/hydrocarbon/orbit"
	"github.com/dkvasnikov/hydrocarbon/permute"
)

// Generate returns every saturated hydrocarbon multigraph reachable from
// skeleton by repeatedly incrementing existing bonds, one non-isomorphic
// representative per orbit under stabilizer. It always includes the
// skeleton itself (every bond at multiplicity 1).
//
// stabilizer should be the generating set of the permutation subgroup that
// fixes skeleton (as returned by orbit.CalcOrbitStabilizer on the
// skeleton's feature-bucket generators). Each level is deduplicated by orbit
// under the given group, so the result holds one hydrocarbon per orbit of
// that group: a smaller subgroup (nil included) can leave several
// isomorphic hydrocarbons in the result.
func Generate(skeleton adjmat.Skeleton, stabilizer []permute.Permutation) []adjmat.Hydrocarbon {
	n := skeleton.N()
	start := adjmat.FromSkeleton(skeleton)

	result := []adjmat.Hydrocarbon{start}
	queue := []adjmat.Hydrocarbon{start}

	for len(queue) > 0 {
		var next []adjmat.Hydrocarbon
		seen := make(map[adjmat.Hydrocarbon]bool)

		for _, h := range queue {
			for _, pair := range possibleIndexPairs(h, n) {
				deh := h
				deh.Increment(pair[0], pair[1])
				if seen[deh] {
					continue
				}
				result = append(result, deh)
				next = append(next, deh)
				for _, o := range orbit.CalcOrbit[adjmat.Hydrocarbon](deh, stabilizer) {
					seen[o] = true
				}
			}
		}
		queue = next
	}
	return result
}

// possibleIndexPairs lists the (row, col) bond positions eligible for an
// increment: existing bonds (element != 0) between two vertices each still
// under the degree cap. The cap is 3, not 4, when n == 2, since a single
// pair of vertices joined by a quadruple bond would overflow the 2-bit
// cell representing it.
//
// ables accumulates the set of rows already confirmed under the degree
// cap; by the time row irow is added to it, every earlier bit in ables
// already passed the same check, so scanning icol over ables validates
// both endpoints' degrees with a single pass.
func possibleIndexPairs(h adjmat.Hydrocarbon, n int) [][2]int {
	maxDegree := 4
	if n == 2 {
		maxDegree = 3
	}

	var ables uint32
	pairs := make([][2]int, 0, 2*n)
	for irow := 0; irow < n; irow++ {
		if h.Degree(irow) >= maxDegree {
			continue
		}
		ables |= 1 << uint(irow)
		for icol := range bititer.Bits(ables) {
			if h.At(irow, icol) != 0 {
				pairs = append(pairs, [2]int{irow, icol})
			}
		}
	}
	return pairs
}
