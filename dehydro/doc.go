// Package dehydro grows a carbon skeleton into every non-isomorphic
// saturated hydrocarbon multigraph reachable from it by raising bond
// multiplicities (component G): a level-synchronous breadth-first search
// over "increment one bond" moves, deduplicated each level by the orbit of
// the skeleton's own stabilizer subgroup rather than the full symmetric
// group — the stabilizer is exactly the set of relabelings the skeleton
// itself admits, so it is the correct (and cheapest) group to dedupe
// hydrocarbons derived from it.
package dehydro
