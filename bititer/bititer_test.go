package bititer_test

import (
	"testing"

	"github.com/dkvasnikov/hydrocarbon/bititer"
)

func TestBitsAscending(t *testing.T) {
	var got []int
	for i := range bititer.Bits(0b1011010) {
		got = append(got, i)
	}
	want := []int{1, 3, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("Bits: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bits: got %v, want %v", got, want)
		}
	}
}

func TestBitsEmpty(t *testing.T) {
	for range bititer.Bits(0) {
		t.Fatal("Bits(0) should yield nothing")
	}
}

func TestBitsEarlyStop(t *testing.T) {
	var got []int
	for i := range bititer.Bits(0xFFFF) {
		got = append(got, i)
		if len(got) == 3 {
			break
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected early stop after 3 items, got %d", len(got))
	}
}

func TestCount(t *testing.T) {
	if got := bititer.Count(0b1011010); got != 4 {
		t.Errorf("Count: got %d, want 4", got)
	}
	if got := bititer.Count(0); got != 0 {
		t.Errorf("Count(0): got %d, want 0", got)
	}
}

func TestBits64(t *testing.T) {
	var got []int
	for i := range bititer.Bits64(1 << 40) {
		got = append(got, i)
	}
	if len(got) != 1 || got[0] != 40 {
		t.Fatalf("Bits64: got %v, want [40]", got)
	}
}
