package orbit

import "github.com/dkvasnikov/hydrocarbon/permute"

// Permutable constrains types that can be relabeled by a Permutation and
// used as the base point of an orbit computation (hence comparable, so
// orbit membership can be tested via a map). adjmat.Skeleton and
// adjmat.Hydrocarbon both satisfy this directly.
type Permutable[T any] interface {
	comparable
	PermuteBy(perm permute.Permutation) T
}

// CalcOrbitStabilizer performs a Schreier-style breadth-first search over
// the orbit of x under the group generated by gens, returning both the
// orbit (every point reachable from x) and a generating set for the
// stabilizer of x within that group (via Schreier's lemma: for each
// non-tree edge found during the BFS, u_y2⁻¹∘g∘u_y stabilizes x).
//
// preAlloc sizes the orbit slice up front; callers that know the orbit's
// exact size (e.g. (N-1)!/2 for a trivial-stabilizer skeleton) avoid
// reallocation by passing it here.
//
// If gens is empty, the orbit is {x} and the stabilizer is empty.
func CalcOrbitStabilizer[T Permutable[T]](x T, gens []permute.Permutation, preAlloc int) ([]T, []permute.Permutation) {
	if len(gens) == 0 {
		return []T{x}, nil
	}
	n := gens[0].N()
	identity := permute.Identity(n)

	transversal := make(map[T]permute.Permutation, preAlloc)
	transversal[x] = identity

	orbit := make([]T, 0, preAlloc)
	orbit = append(orbit, x)

	var stabilizer []permute.Permutation
	seenStab := make(map[permute.Permutation]bool)

	queue := make([]T, 0, preAlloc)
	queue = append(queue, x)
	for len(queue) > 0 {
		y := queue[0]
		queue = queue[1:]
		uY := transversal[y]

		for _, g := range gens {
			y2 := y.PermuteBy(g)
			if uY2, ok := transversal[y2]; ok {
				s := uY2.Inverse().Mul(g.Mul(uY))
				if s != identity && !seenStab[s] {
					seenStab[s] = true
					stabilizer = append(stabilizer, s)
				}
				continue
			}
			transversal[y2] = g.Mul(uY)
			orbit = append(orbit, y2)
			queue = append(queue, y2)
		}
	}
	return orbit, stabilizer
}

// CalcOrbit returns just the orbit of x under gens, without collecting a
// stabilizer generating set. It is the cheaper call used inside
// dehydrogenation's own level-synchronous BFS, where only orbit
// membership (not a further stabilizer) is needed.
func CalcOrbit[T Permutable[T]](x T, gens []permute.Permutation) []T {
	if len(gens) == 0 {
		return []T{x}
	}
	visited := map[T]bool{x: true}
	orbit := []T{x}
	queue := []T{x}
	for len(queue) > 0 {
		y := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			y2 := y.PermuteBy(g)
			if visited[y2] {
				continue
			}
			visited[y2] = true
			orbit = append(orbit, y2)
			queue = append(queue, y2)
		}
	}
	return orbit
}
