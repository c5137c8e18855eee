package skeleton

import "github.com/dkvasnikov/hydrocarbon/adjmat"

// rowLexSentinel stands in for "no row above" when checking the very first
// row: it is 4<<16 | 0xffff, the largest fat row value (popcount<<16 | row)
// a row of degree ≤ 4 can have. Rows above degree 4 are rejected before this
// comparison, so the sentinel never rejects row 0 on that basis alone.
const rowLexSentinel = 0x0004ffff

// Generator walks the strict upper triangle of an N×N adjacency matrix in
// row-major order, backtracking whenever the partial matrix can no longer
// be completed into a row-lex-canonical, connected, max-degree-4 skeleton.
// Row-lex canonicity (each row's fat-row value no greater than the row
// above) is a necessary but not sufficient condition for the skeleton to be
// the lexicographically-least member of its relabeling class; the
// remaining duplicates are filtered downstream by the orbit/dedup stage.
//
// A Generator is single-use and not safe for concurrent calls to Next.
type Generator struct {
	n       int
	total   int // number of strict-upper-triangle cells, n*(n-1)/2
	current adjmat.Skeleton

	curIdx   int // current cell, as a linear index into the row-major flattening
	floorIdx int // cells below this index are a fixed prefix; never backtracked past
	forward  bool

	static     bool // every cell is part of the fixed prefix: no freedom to search
	staticDone bool
}

// NewGenerator returns the unsharded generator for connected, max-degree-4
// skeletons on n vertices (n ≥ 2).
func NewGenerator(n int) *Generator {
	total := n * (n - 1) / 2
	g := &Generator{n: n, total: total, current: adjmat.NewSkeleton(n)}
	g.forward = g.curIdx != total-1
	return g
}

// NewSharded partitions the search into 2^fixedDigits independent
// generators, one per assignment of the first fixedDigits upper-triangle
// cells (in row-major order). Each shard's cursor starts just past its
// fixed prefix and never backtracks into it, so the shards' outputs are
// disjoint and their union is exactly NewGenerator(n)'s output. fixedDigits
// is clamped to n*(n-1)/2 when n is too small to support it.
func NewSharded(n, fixedDigits int) []*Generator {
	total := n * (n - 1) / 2
	if fixedDigits < 0 {
		fixedDigits = 0
	}
	if fixedDigits > total {
		fixedDigits = total
	}

	shardCount := 1 << uint(fixedDigits)
	gens := make([]*Generator, shardCount)
	for pattern := 0; pattern < shardCount; pattern++ {
		s := adjmat.NewSkeleton(n)
		for bitPos := 0; bitPos < fixedDigits; bitPos++ {
			if (pattern>>uint(bitPos))&1 == 1 {
				i, j := cellAt(n, bitPos)
				s.Flip(i, j)
			}
		}

		g := &Generator{n: n, total: total, current: s}
		if fixedDigits == total {
			g.static = true
		} else {
			g.floorIdx = fixedDigits
			g.curIdx = fixedDigits
			g.forward = g.curIdx != total-1
		}
		gens[pattern] = g
	}
	return gens
}

// Next produces the next accepted skeleton and its canonical (sorted)
// Features, or ok=false once the shard is exhausted.
func (g *Generator) Next() (adjmat.Skeleton, Features, bool) {
	raw, ok := g.nextRaw()
	if !ok {
		return adjmat.Skeleton{}, Features{}, false
	}
	canon, feat := canonicalize(raw)
	return canon, feat, true
}

func (g *Generator) nextRaw() (adjmat.Skeleton, bool) {
	if g.static {
		if g.staticDone {
			return adjmat.Skeleton{}, false
		}
		g.staticDone = true
		if g.checkCurrentFrom(0) {
			return g.current, true
		}
		return adjmat.Skeleton{}, false
	}

	for {
		if g.forward {
			if g.checkCurrent() {
				g.forward = false
				return g.current, true
			}
			g.forward = false
			continue
		}

		i, j := cellAt(g.n, g.curIdx)
		g.current.Flip(i, j)
		if g.current.At(i, j) {
			// Max degree 4: an edge that would overload either endpoint's
			// valence is never a viable assignment, so undo it immediately
			// instead of spending a forward pass to discover the same thing.
			if g.current.Degree(i) > 4 || g.current.Degree(j) > 4 {
				g.current.Flip(i, j)
				if g.curIdx == g.floorIdx {
					return adjmat.Skeleton{}, false
				}
				g.curIdx--
				continue
			}
			g.forward = true
			continue
		}
		if g.curIdx == g.floorIdx {
			return adjmat.Skeleton{}, false
		}
		g.curIdx--
	}
}

// checkCurrent re-validates every row from the cursor's row downward
// against the row above it, and relocates the cursor to the terminal cell
// of the earliest violating row (or the last row, if none violate) so the
// next backtrack step undoes exactly the offending suffix. It reports
// whether the full matrix is currently row-lex canonical and connected —
// the two conditions for accepting (emitting) it.
func (g *Generator) checkCurrent() bool {
	curRow, _ := cellAt(g.n, g.curIdx)
	return g.checkCurrentFrom(curRow)
}

func (g *Generator) checkCurrentFrom(curRow int) bool {
	var prevFatRow uint32
	if curRow == 0 {
		prevFatRow = rowLexSentinel
	} else {
		prevFatRow = g.current.FatRow(curRow - 1)
	}

	fatRows := make([]uint32, g.n)
	for i := curRow; i < g.n; i++ {
		if g.current.Degree(i) > 4 {
			return false
		}
		fr := g.current.FatRow(i)
		if fr > prevFatRow {
			return false
		}
		fatRows[i] = fr
	}

	irowBadMin := g.n
	maxFatRow := fatRows[g.n-1]
	for i := g.n - 2; i >= curRow; i-- {
		fr := fatRows[i]
		if fr < maxFatRow {
			irowBadMin = i
		}
		if fr > maxFatRow {
			maxFatRow = fr
		}
	}

	if !g.static {
		target := irowBadMin
		if target > g.n-2 {
			target = g.n - 2
		}
		g.curIdx = cellIndex(g.n, target, g.n-1)
	}
	return irowBadMin == g.n && g.current.Connected()
}
