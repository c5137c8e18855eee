package adjmat

import (
	"math/bits"

	"github.com/dkvasnikov/hydrocarbon/bititer"
	"github.com/dkvasnikov/hydrocarbon/permute"
)

const (
	evenBitsMask32 = 0x5555_5555 // low bit of each 2-bit cell
	oddBitsMask32  = 0xaaaa_aaaa // high bit of each 2-bit cell
)

// Hydrocarbon is a symmetric N×N matrix with entries in {0,1,2,3}: a
// multigraph recording bond multiplicities over a carbon skeleton. Row i
// packs two bits per column, column j at bit offset 2j.
type Hydrocarbon struct {
	rows [MaxN]uint32
	n    int
}

// FromSkeleton lifts a Skeleton into a Hydrocarbon: every skeleton edge
// becomes a bond of multiplicity 1, every non-edge stays 0.
func FromSkeleton(s Skeleton) Hydrocarbon {
	h := Hydrocarbon{n: s.N()}
	for i := 0; i < s.N(); i++ {
		for j := range bititer.Bits(uint32(s.Row(i))) {
			h.rows[i] |= 1 << uint(2*j)
		}
	}
	return h
}

// N returns the vertex count.
func (h Hydrocarbon) N() int { return h.n }

// Row returns the raw row word for vertex i (two bits per column).
func (h Hydrocarbon) Row(i int) uint32 { return h.rows[i] }

// At returns the bond multiplicity between i and j, in {0,1,2,3}.
func (h Hydrocarbon) At(i, j int) int {
	return int(h.rows[i] >> uint(2*j) & 0b11)
}

// Increment raises the multiplicity of the existing edge (i,j) by one,
// symmetrically. Callers must ensure (i,j) is already positive and that
// the 2-bit cell will not overflow (both enforced by the degree-4
// eligibility predicate upstream, in package dehydro).
func (h *Hydrocarbon) Increment(i, j int) {
	h.rows[i] += 1 << uint(2*j)
	h.rows[j] += 1 << uint(2*i)
}

// Degree returns the weighted degree of vertex i: popcount of the row's
// low bits plus twice the popcount of its high bits, i.e. the sum of the
// 2-bit cell values across the row.
func (h Hydrocarbon) Degree(i int) int {
	row := h.rows[i]
	return bits.OnesCount32(row&evenBitsMask32) + 2*bits.OnesCount32(row&oddBitsMask32)
}

// CountHydrogen returns 4N − Σdeg(i), the number of hydrogens needed to
// saturate every remaining valence.
func (h Hydrocarbon) CountHydrogen() int {
	sum := 0
	for i := 0; i < h.n; i++ {
		sum += h.Degree(i)
	}
	return 4*h.n - sum
}

// PermuteBy relabels vertices by π, acting on both the bit-pair's column
// position and its row position simultaneously so bond multiplicities
// travel with their endpoints.
func (h Hydrocarbon) PermuteBy(perm permute.Permutation) Hydrocarbon {
	out := Hydrocarbon{n: h.n}
	for oldRow := 0; oldRow < h.n; oldRow++ {
		newRow := perm.At(oldRow)
		oldWord := h.rows[oldRow]
		for bitPos := range bititer.Bits(oldWord) {
			oldCol := bitPos / 2
			newCol := perm.At(oldCol)
			newBitPos := newCol*2 + bitPos%2
			out.rows[newRow] |= 1 << uint(newBitPos)
		}
	}
	return out
}
