package skeleton

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/dkvasnikov/hydrocarbon/adjmat"
	"github.com/dkvasnikov/hydrocarbon/permute"
)

// Features holds one 64-bit feature hash per vertex, in canonical (sorted
// ascending) order. It is the bucketing key the orbit/dedup stage groups
// skeletons by: two skeletons in the same isomorphism class always land in
// the same feature bucket, though a bucket may hold more than one class.
type Features struct {
	raw [permute.MaxN]uint64
	n   int
}

// N returns the vertex count.
func (f Features) N() int { return f.n }

// At returns the feature hash of the i-th vertex in canonical order.
func (f Features) At(i int) uint64 { return f.raw[i] }

// Key reduces Features to a 16-bit block-structure fingerprint: bit i is
// the running XOR of "feature i differs from feature i-1", so contiguous
// runs of equal features (ties) collapse to a single block label. This is
// the key package permute's Store indexes generator sets by.
func (f Features) Key() uint16 {
	var key, bit uint16
	prev := f.raw[0]
	for i := 0; i < f.n; i++ {
		if f.raw[i] != prev {
			bit ^= 1
			prev = f.raw[i]
		}
		key |= bit << uint(i)
	}
	return key
}

// IsMonotonic reports whether every feature strictly exceeds its
// predecessor, i.e. the block structure is all singletons (trivial
// stabilizer): the fast path the parallel orchestrator gives its own
// dedicated worker.
func (f Features) IsMonotonic() bool {
	for i := 1; i < f.n; i++ {
		if f.raw[i] <= f.raw[i-1] {
			return false
		}
	}
	return true
}

// canonicalize relabels s so its vertices are sorted ascending by feature
// hash, returning the relabeled skeleton alongside its sorted Features.
func canonicalize(s adjmat.Skeleton) (adjmat.Skeleton, Features) {
	n := s.N()
	raw := calcRawFeatures(s)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return raw[order[a]] < raw[order[b]] })

	images := make([]int, n)
	var sortedFeat [permute.MaxN]uint64
	for newIdx, oldIdx := range order {
		images[oldIdx] = newIdx
		sortedFeat[newIdx] = raw[oldIdx]
	}

	perm := permute.New(images)
	canon := s.PermuteBy(perm)
	return canon, Features{raw: sortedFeat, n: n}
}

// calcRawFeatures computes an unsorted per-vertex feature hash via three
// rounds of M_k = A·M_{k-1} (M_0 = identity): at each round, vertex i's
// step value is the sum of squares of M_k's i-th row XORed with its
// diagonal entry shifted into the high bits. The three step values are
// hashed together into one 64-bit feature per vertex. This distinguishes
// vertices by their local walk-count structure out to radius 3, which is
// enough to separate almost every non-isomorphic relabeling in practice.
func calcRawFeatures(s adjmat.Skeleton) [permute.MaxN]uint64 {
	n := s.N()
	mat := identityMatrix(n)

	var stepVals [permute.MaxN][3]uint32
	for step := 0; step < 3; step++ {
		mat = matMul(s, mat, n)
		for i := 0; i < n; i++ {
			var sqSum uint32
			for j := 0; j < n; j++ {
				v := mat[i][j]
				sqSum += v * v
			}
			stepVals[i][step] = sqSum ^ (mat[i][i] << 16)
		}
	}

	var out [permute.MaxN]uint64
	for i := 0; i < n; i++ {
		out[i] = hashStepVals(stepVals[i])
	}
	return out
}

func identityMatrix(n int) [permute.MaxN][permute.MaxN]uint32 {
	var m [permute.MaxN][permute.MaxN]uint32
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// matMul computes A·m restricted to the first n rows/columns, using s's
// adjacency bits to select which rows of m to accumulate.
func matMul(s adjmat.Skeleton, m [permute.MaxN][permute.MaxN]uint32, n int) [permute.MaxN][permute.MaxN]uint32 {
	var out [permute.MaxN][permute.MaxN]uint32
	for i := 0; i < n; i++ {
		for j := range s.Neighbors(i) {
			for k := 0; k < n; k++ {
				out[i][k] += m[j][k]
			}
		}
	}
	return out
}

func hashStepVals(v [3]uint32) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], v[0])
	binary.LittleEndian.PutUint32(buf[4:8], v[1])
	binary.LittleEndian.PutUint32(buf[8:12], v[2])
	return xxhash.Sum64(buf[:])
}
