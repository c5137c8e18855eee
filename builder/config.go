// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator and vertex ID scheme to keep builder implementations DRY and
// consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds:
//   - rng:  *rand.Rand source for randomness (nil → deterministic).
//   - idFn: IDFn to produce vertex identifiers from integer indices.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// As a rule, option constructors never panic at runtime, and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:  source of randomness (nil means deterministic).
//   - idFn: function mapping index→vertex ID (IDFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng         *rand.Rand // optional RNG; nil means deterministic behavior
	idFn        IDFn       // function to generate vertex IDs from indices
	leftPrefix  string     // bipartite left-partition ID prefix ("" → default "L")
	rightPrefix string     // bipartite right-partition ID prefix ("" → default "R")
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	// Initialize defaults
	cfg := &builderConfig{
		rng:  nil,         // no RNG → deterministic ID generation
		idFn: DefaultIDFn, // decimal IDs "0","1",…
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	// Resolve bipartite prefix defaults once, after all options are applied.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = "L"
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = "R"
	}

	return cfg
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values are allowed and interpreted as "use defaults" ("L"/"R").
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.leftPrefix, cfg.rightPrefix = left, right
	}
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// If idFn is nil, this option is a no-op.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// If rng is nil, this option is a no-op and leaves the original RNG.
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
