// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// assertPanics runs f and asserts that it panics with a message containing wantSubstr.
func assertPanics(t *testing.T, f func(), wantSubstr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", wantSubstr)
			return
		}
		got := fmt.Sprint(r)
		if wantSubstr != "" && !strings.Contains(got, wantSubstr) {
			t.Fatalf("panic mismatch: want substring %q, got %q", wantSubstr, got)
		}
	}()
	f()
}

// TestIDSchemeOptions verifies that ID scheme options are applied in order
// and that nil schemes are ignored (no-op).
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	// 1. Default configuration: IDFn should be DefaultIDFn
	cfgDefault := newBuilderConfig()
	// call idFn on a sample index
	if got := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs should override to SymbolIDFn
	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. WithExcelColumnIDs should override to ExcelColumnIDFn
	cfgExcel := newBuilderConfig(WithExcelColumnIDs())
	if got := cfgExcel.idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}

	// 4. WithAlphanumericIDs should override to AlphanumericIDFn
	cfgAlpha := newBuilderConfig(WithAlphanumericIDs())
	if got := cfgAlpha.idFn(35); got != "z" {
		t.Errorf("WithAlphanumericIDs: expected \"z\", got %q", got)
	}

	// 5. WithDefaultIDs after another option should reset to DefaultIDFn
	cfgReset := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	if got := cfgReset.idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}

	// 6. WithIDScheme(nil) is a no-op: the previously applied scheme stays in place
	if got := newBuilderConfig(WithSymbolIDs(), WithIDScheme(nil)).idFn(0); got != "A" {
		t.Errorf("WithIDScheme(nil): expected no-op keeping \"A\", got %q", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and ignoring nil in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) is a no-op: the previously set rng stays in place
	if got := newBuilderConfig(WithRand(expRNG), WithRand(nil)).rng; got != expRNG {
		t.Errorf("WithRand(nil): expected no-op keeping rng %v, got %v", expRNG, got)
	}

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}
