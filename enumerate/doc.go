// Package enumerate orchestrates the full pipeline — skeleton generation,
// feature bucketing, stabilizer-aware dehydrogenation — across goroutines
// (component H). Stage 1 shards skeleton production by a fixed bit
// prefix; stage 2 gives every monotonic-feature bucket (trivial
// stabilizer) its own goroutine, and round-robins the rest across a
// bounded worker pool, so that the handful of buckets whose stabilizer
// computation is cheap don't starve behind the handful that are
// expensive.
package enumerate
