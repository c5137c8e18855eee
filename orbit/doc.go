// Package orbit computes group orbits and stabilizers of permutable
// objects under a generator set, via Schreier-style breadth-first search
// (component F). It is generic over any type implementing Permutable, so
// the same code serves both adjmat.Skeleton (stabilizer computation, used
// to seed dehydrogenation) and adjmat.Hydrocarbon (plain orbit membership
// tests during dehydrogenation's own BFS).
package orbit
