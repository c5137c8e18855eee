package enumerate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dkvasnikov/hydrocarbon/adjmat"
	"github.com/dkvasnikov/hydrocarbon/dehydro"
	"github.com/dkvasnikov/hydrocarbon/orbit"
	"github.com/dkvasnikov/hydrocarbon/permute"
	"github.com/dkvasnikov/hydrocarbon/skeleton"
)

// All enumerates every saturated hydrocarbon multigraph on n carbon atoms,
// one representative per isomorphism class, up to max degree 4.
//
// fixedDigits controls how many strict-upper-triangle bits the skeleton
// search fixes per shard (2^fixedDigits goroutines in stage 1); stage 2
// spreads the non-monotonic feature buckets round-robin over
// ceil(numBuckets / maxNumFeats) goroutines, so a larger maxNumFeats means
// fewer goroutines (monotonic buckets always get their own goroutine, since
// they are the cheap, common case). workers caps how many of those goroutines may run
// concurrently in each stage; workers <= 0 means unlimited.
func All(ctx context.Context, n, fixedDigits, maxNumFeats, workers int) ([]adjmat.Hydrocarbon, error) {
	feat2skeletons, err := createFeat2Skeletons(ctx, n, fixedDigits, workers)
	if err != nil {
		return nil, err
	}
	store := permute.NewStore(n)
	return dehydrogenateFeat2Skeletons(ctx, feat2skeletons, store, maxNumFeats, n, workers)
}

type skelFeatPair struct {
	skel adjmat.Skeleton
	feat skeleton.Features
}

// createFeat2Skeletons is stage 1: every shard runs its own backtracking
// generator to exhaustion in its own goroutine and sends its batch of
// results over a shared channel; a single consumer reads until the
// channel closes (which happens once every producer goroutine has
// returned, the errgroup analogue of Rust's "drop the sender") and groups
// everything by Features.
func createFeat2Skeletons(ctx context.Context, n, fixedDigits, workers int) (map[skeleton.Features][]adjmat.Skeleton, error) {
	gens := skeleton.NewSharded(n, fixedDigits)
	batches := make(chan []skelFeatPair, len(gens))

	g, _ := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, gen := range gens {
		gen := gen
		g.Go(func() error {
			var local []skelFeatPair
			for {
				s, f, ok := gen.Next()
				if !ok {
					break
				}
				local = append(local, skelFeatPair{skel: s, feat: f})
			}
			batches <- local
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(batches)
	}()

	out := make(map[skeleton.Features][]adjmat.Skeleton)
	for local := range batches {
		for _, pr := range local {
			out[pr.feat] = append(out[pr.feat], pr.skel)
		}
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	return out, nil
}

// dehydrogenateFeat2Skeletons is stage 2: every monotonic-feature bucket
// (trivial stabilizer — the common case) gets a dedicated goroutine,
// preallocated to (n-1)!/2 (the orbit size a trivial stabilizer implies).
// The remaining buckets are round-robined across ceil(numBuckets /
// maxNumFeats) goroutines. Every goroutine sends its batch over a shared
// channel; a single consumer drains it until close.
func dehydrogenateFeat2Skeletons(ctx context.Context, feat2skeletons map[skeleton.Features][]adjmat.Skeleton, store *permute.Store, maxNumFeats, n, workers int) ([]adjmat.Hydrocarbon, error) {
	type bucket struct {
		feat  skeleton.Features
		skels []adjmat.Skeleton
	}

	var monotonic, rest []bucket
	for f, skels := range feat2skeletons {
		b := bucket{feat: f, skels: skels}
		if f.IsMonotonic() {
			monotonic = append(monotonic, b)
		} else {
			rest = append(rest, b)
		}
	}

	trivialPreAlloc := monotonicPreAlloc(n)
	numThreads := ceilDiv(len(feat2skeletons), maxNumFeats)
	batches := make(chan []adjmat.Hydrocarbon, len(monotonic)+numThreads)

	g, _ := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, b := range monotonic {
		b := b
		g.Go(func() error {
			batches <- dehydrogenateBucket(b.feat, b.skels, store, trivialPreAlloc)
			return nil
		})
	}

	for ith := 0; ith < numThreads; ith++ {
		ith := ith
		g.Go(func() error {
			var local []adjmat.Hydrocarbon
			for idx, b := range rest {
				if idx%numThreads != ith {
					continue
				}
				local = append(local, dehydrogenateBucket(b.feat, b.skels, store, 0)...)
			}
			batches <- local
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(batches)
	}()

	var hydrocarbons []adjmat.Hydrocarbon
	for local := range batches {
		hydrocarbons = append(hydrocarbons, local...)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	return hydrocarbons, nil
}

// dehydrogenateBucket deduplicates the skeletons sharing one feature
// bucket by orbit (under that feature's Young-subgroup generators), then
// dehydrogenates each surviving representative using its own stabilizer.
func dehydrogenateBucket(feat skeleton.Features, skeletons []adjmat.Skeleton, store *permute.Store, preAlloc int) []adjmat.Hydrocarbon {
	gens, _ := store.Get(feat.Key())

	seen := make(map[adjmat.Skeleton]bool)
	var out []adjmat.Hydrocarbon
	for _, sk := range skeletons {
		if seen[sk] {
			continue
		}
		o, stabilizer := orbit.CalcOrbitStabilizer[adjmat.Skeleton](sk, gens, preAlloc)
		for _, member := range o {
			seen[member] = true
		}
		out = append(out, dehydro.Generate(sk, stabilizer)...)
	}
	return out
}

// monotonicPreAlloc returns (n-1)!/2, the orbit size implied by a trivial
// stabilizer, computed as the product of 3..n-1 inclusive (empty for n<4,
// i.e. 1).
func monotonicPreAlloc(n int) int {
	p := 1
	for k := 3; k < n; k++ {
		p *= k
	}
	return p
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}
