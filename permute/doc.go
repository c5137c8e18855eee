// Package permute implements the permutation algebra and the permutation
// store used to dedupe isomorphic skeletons within a feature bucket.
//
// Permutation is a small, comparable value type (a fixed-size array of
// vertex images) so it can be copied freely and used as a map key.
// Store maps a 16-bit feature key — the block structure produced by
// skeleton.Features.Key — to a small generator set for the Young subgroup
// Sσ1 × Sσ2 × … of that block structure: no generator for a singleton
// block, one transposition for a size-2 block, a transposition plus the
// full cycle for a block of size 3 or more. That pair generates the full
// symmetric group on the block.
package permute
