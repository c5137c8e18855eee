// SPDX-License-Identifier: MIT
// Package: hydrocarbon/builder
//
// sequence_primitives.go - small shared helpers used by topology constructors.
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math/rand"
)

// centerVertexID is a fixed, documented hub ID used by Star/Wheel/Platonic(withCenter).
const centerVertexID = "Center"

// chord represents an undirected shell edge between two vertex indices U<V.
// Used by the Platonic-solid constructors to enumerate fixed edge sets.
type chord struct {
	U int // first endpoint index (0-based)
	V int // second endpoint index (0-based), strictly greater than U
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
