// Package bititer walks the set bits of an unsigned word in ascending order.
//
// It underlies every edge/permutation walk in the enumeration pipeline:
// adjacency rows, feature blocks, and orbit frontiers are all plain
// machine words, and bititer is the one place that knows how to iterate them.
package bititer

import (
	"iter"
	"math/bits"
)

// Bits returns a range-over-func iterator yielding the ascending positions
// of the set bits of w. It isolates the lowest set bit via trailing-zero
// count and clears it with w &= w-1, so each call to the inner yield
// function costs O(1) and the whole walk costs O(popcount(w)).
//
// The returned sequence is finite and not restartable: the walk consumes
// the captured w, so ranging over the same Bits(w) result a second time
// continues from where the first range stopped (and yields nothing after a
// complete walk) — callers are expected to range over it exactly once.
func Bits(w uint32) iter.Seq[int] {
	return func(yield func(int) bool) {
		for w != 0 {
			i := bits.TrailingZeros32(w)
			if !yield(i) {
				return
			}
			w &= w - 1
		}
	}
}

// Bits64 is the 64-bit counterpart of Bits, used where a row or feature
// word exceeds 32 bits.
func Bits64(w uint64) iter.Seq[int] {
	return func(yield func(int) bool) {
		for w != 0 {
			i := bits.TrailingZeros64(w)
			if !yield(i) {
				return
			}
			w &= w - 1
		}
	}
}

// Count returns the number of set bits in w (its popcount).
func Count(w uint32) int {
	return bits.OnesCount32(w)
}

// Count64 returns the number of set bits in w (its popcount).
func Count64(w uint64) int {
	return bits.OnesCount64(w)
}
