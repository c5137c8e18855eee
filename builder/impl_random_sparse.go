// SPDX-License-Identifier: MIT
// Package: hydrocarbon/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model (approved in Ta-builder V1):
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials / edge checks.
//   - Space: O(1) extra (no global buffers).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable edge-trial order: i asc, j>i asc.
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/dkvasnikov/hydrocarbon/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).

		// Validate vertex count domain: n must be at least 1.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}

		// Validate probability: must lie in the closed interval [0,1].
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		for i := 0; i < n; i++ {
			id := cfg.idFn(i) // compute deterministic vertex ID
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		rng := cfg.rng // local alias for RNG (may be nil when p ∈ {0,1})

		var u, v string // edge endpoints
		// 3) Sample unordered pairs {i,j}, i<j, with a stable, documented order.
		for i := 0; i < n; i++ { // stable i asc
			u = cfg.idFn(i)             // left endpoint ID
			for j := i + 1; j < n; j++ { // j strictly greater than i
				// Bernoulli trial: include edge with probability p.
				if rng == nil {
					// Deterministic edge set for p == 1.0 (p == 0.0 adds nothing).
					if p == 1.0 {
						v = cfg.idFn(j)
						if _, err := g.AddEdge(u, v); err != nil {
							return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
						}
					}
					continue
				}
				if rng.Float64() <= p {
					v = cfg.idFn(j) // right endpoint ID

					// Add edge u-v.
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w",
							methodRandomSparse, u, v, err)
					}
				}
			}
		}

		// 4) Success: random sparse graph sampled deterministically for a fixed seed.
		return nil
	}
}
