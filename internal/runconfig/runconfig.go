// Package runconfig resolves and validates the tuning knobs cmd/hydrocarbon
// exposes as cobra flags, in the same functional-options shape used
// elsewhere in this module: a defaulted Config, mutated by Option values,
// then checked once before the driver loop starts.
package runconfig

import (
	"fmt"
	"runtime"

	"github.com/dkvasnikov/hydrocarbon/adjmat"
)

// Config holds one run's worth of tuning knobs for the enumeration driver.
type Config struct {
	MinN        int
	MaxN        int
	FixedDigits int
	MaxNumFeats int
	Workers     int
	LogLevel    string
	Rings       bool
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithRange sets the inclusive [minN, maxN] carbon-count sweep the driver
// loops over.
func WithRange(minN, maxN int) Option {
	return func(c *Config) { c.MinN, c.MaxN = minN, maxN }
}

// WithFixedDigits sets how many upper-triangle bits the skeleton search
// fixes per shard.
func WithFixedDigits(digits int) Option {
	return func(c *Config) { c.FixedDigits = digits }
}

// WithMaxNumFeats sets the divisor stage 2 uses to size its pool for
// non-monotonic feature buckets: ceil(numBuckets / maxNumFeats) goroutines.
func WithMaxNumFeats(maxNumFeats int) Option {
	return func(c *Config) { c.MaxNumFeats = maxNumFeats }
}

// WithWorkers caps the number of goroutines each enumerate.All errgroup
// stage may run concurrently; defaults to runtime.NumCPU().
func WithWorkers(workers int) Option {
	return func(c *Config) { c.Workers = workers }
}

// WithLogLevel sets the logrus level string (see internal/obslog).
func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

// WithRings turns on the optional ring-count summary line (component N).
func WithRings(enabled bool) Option {
	return func(c *Config) { c.Rings = enabled }
}

// New returns a Config with sensible defaults, applies opts in order, then
// validates the result. Unlike builder's options (which
// silently ignore invalid input), runconfig is driver-facing: a bad flag
// value is a reportable user error, so New returns it instead.
func New(opts ...Option) (Config, error) {
	cfg := Config{
		MinN:        2,
		MaxN:        10,
		FixedDigits: 7,
		MaxNumFeats: 1024,
		Workers:     runtime.NumCPU(),
		LogLevel:    "info",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MinN < 2 {
		return fmt.Errorf("runconfig: min-n must be ≥ 2, got %d", c.MinN)
	}
	if c.MaxN < c.MinN {
		return fmt.Errorf("runconfig: max-n (%d) must be ≥ min-n (%d)", c.MaxN, c.MinN)
	}
	if c.MaxN > adjmat.MaxN {
		return fmt.Errorf("runconfig: max-n must be ≤ %d, got %d", adjmat.MaxN, c.MaxN)
	}
	if c.FixedDigits < 0 {
		return fmt.Errorf("runconfig: fixed-digits must be ≥ 0, got %d", c.FixedDigits)
	}
	if c.MaxNumFeats < 1 {
		return fmt.Errorf("runconfig: max-num-feats must be ≥ 1, got %d", c.MaxNumFeats)
	}
	if c.Workers < 1 {
		return fmt.Errorf("runconfig: workers must be ≥ 1, got %d", c.Workers)
	}
	return nil
}
