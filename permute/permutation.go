package permute

// MaxN is the largest vertex count supported by the fixed-size row/image
// arrays used throughout this module (adjmat, permute, skeleton). Matrices
// and permutations are plain comparable values precisely because they are
// arrays, not slices; MaxN bounds the array size.
const MaxN = 16

// Permutation is a bijection on {0,…,n-1}, stored as an array of images:
// raw[i] is the image of i. Only the first n entries are meaningful; the
// remainder of the backing array is zeroed and ignored.
//
// Permutation is a plain comparable value (no pointers), so it can be used
// directly as a map key and copied cheaply across goroutines.
type Permutation struct {
	raw [MaxN]uint8
	n   int
}

// Identity returns the identity permutation on {0,…,n-1}.
func Identity(n int) Permutation {
	p := Permutation{n: n}
	for i := 0; i < n; i++ {
		p.raw[i] = uint8(i)
	}
	return p
}

// NewCyclic returns the cycle (start start+1 … end), built as the product
// of adjacent transpositions (start,start+1)·(start+1,start+2)·…·(end-1,end).
// When end == start+1 this is a plain transposition.
func NewCyclic(n, start, end int) Permutation {
	p := Identity(n)
	for i := start; i < end; i++ {
		p.raw[i], p.raw[i+1] = p.raw[i+1], p.raw[i]
	}
	return p
}

// New builds a Permutation on {0,…,len(images)-1} from an explicit image
// array: the returned permutation maps i to images[i]. Callers must pass a
// genuine bijection; New does not validate this.
func New(images []int) Permutation {
	p := Permutation{n: len(images)}
	for i, v := range images {
		p.raw[i] = uint8(v)
	}
	return p
}

// N returns the size of the ground set this permutation acts on.
func (p Permutation) N() int { return p.n }

// At returns the image of i under p.
func (p Permutation) At(i int) int { return int(p.raw[i]) }

// Mul returns p∘q, the permutation i ↦ p(q(i)).
func (p Permutation) Mul(q Permutation) Permutation {
	out := Permutation{n: p.n}
	for i := 0; i < p.n; i++ {
		out.raw[i] = p.raw[q.raw[i]]
	}
	return out
}

// Inverse returns p⁻¹.
func (p Permutation) Inverse() Permutation {
	out := Permutation{n: p.n}
	for i := 0; i < p.n; i++ {
		out.raw[p.raw[i]] = uint8(i)
	}
	return out
}
