package permute_test

import (
	"testing"

	"github.com/dkvasnikov/hydrocarbon/permute"
)

func TestIdentityMulInverse(t *testing.T) {
	id := permute.Identity(5)
	for i := 0; i < 5; i++ {
		if id.At(i) != i {
			t.Fatalf("identity.At(%d) = %d, want %d", i, id.At(i), i)
		}
	}
	inv := id.Inverse()
	if inv != id {
		t.Fatalf("identity inverse should equal itself")
	}
}

func TestCyclicAndInverse(t *testing.T) {
	c := permute.NewCyclic(4, 0, 2) // cycle (0 1 2)
	inv := c.Inverse()
	comp := c.Mul(inv)
	want := permute.Identity(4)
	if comp != want {
		t.Fatalf("p * p^-1 should be identity, got %+v", comp)
	}
}

func TestMulAssociativityLike(t *testing.T) {
	a := permute.NewCyclic(5, 0, 1)
	b := permute.NewCyclic(5, 1, 3)
	c := permute.NewCyclic(5, 2, 4)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if left != right {
		t.Fatalf("composition must be associative: %+v != %+v", left, right)
	}
}

func TestStoreSingleBlockTwoGenerators(t *testing.T) {
	s := permute.NewStore(4)
	// key 0 with all bits 0 means one uniform label across all indices => single block of size n.
	gens, ok := s.Get(0)
	if !ok {
		t.Fatal("Get(0) should always succeed")
	}
	// block size 4 (>=3): expect transposition + full cycle => 2 generators
	if len(gens) != 2 {
		t.Fatalf("expected 2 generators for one block of size 4, got %d", len(gens))
	}
}

func TestStoreAllSingletonKey(t *testing.T) {
	s := permute.NewStore(4)
	// alternating toggling key produces blocks of size 1 each => no generators
	// key bits: 0,1,0,1 -> label changes every index => all singleton blocks
	gens, _ := s.Get(0b1010)
	if len(gens) != 0 {
		t.Fatalf("expected 0 generators for all-singleton blocks, got %d", len(gens))
	}
}
