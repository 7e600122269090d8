package dungeon

import (
	"math/rand"

	"github.com/katalvlaran/bspdungeon/corridor"
	"github.com/katalvlaran/bspdungeon/geom"
	"github.com/katalvlaran/bspdungeon/partition"
	"github.com/katalvlaran/bspdungeon/room"
)

// Generate validates opts and runs a full generation pass seeded from
// opts.Seed. The same Options always produce the same Layout.
func Generate(opts Options) (*Layout, error) {
	return GenerateWithRand(opts, rngFromSeed(opts.Seed))
}

// GenerateWithRand is Generate with a caller-owned generator; opts.Seed is
// ignored. rng is consumed by the partition, then rooms, then corridors.
// Returns no partial Layout on error.
func GenerateWithRand(opts Options, rng *rand.Rand) (*Layout, error) {
	if err := opts.Validate(); err != nil {
		return nil, dungeonErrorf(MethodGenerate, err, "options")
	}
	if rng == nil {
		return nil, dungeonErrorf(MethodGenerate, ErrNeedRandSource, "nil rng")
	}

	tree, err := partition.Build(geom.Pt(0, 0), opts.Size(), opts.MinCell(), rng,
		partition.WithMaxDepth(opts.maxDepth()))
	if err != nil {
		return nil, dungeonErrorf(MethodGenerate, err, "partition")
	}
	leaves := tree.Leaves()

	rooms, err := room.PlaceAll(leaves, opts.BiasRatio, opts.BiasStrength, rng)
	if err != nil {
		return nil, dungeonErrorf(MethodGenerate, err, "rooms")
	}

	hops, err := corridor.RouteHops(rooms, opts.MaxCorridorWidth, rng,
		corridor.WithZeroGapPolicy(opts.zeroGapPolicy()))
	if err != nil {
		return nil, dungeonErrorf(MethodGenerate, err, "corridors")
	}

	return &Layout{
		Options:   opts,
		Tree:      tree,
		Leaves:    leaves,
		Rooms:     rooms,
		Hops:      hops,
		Corridors: corridor.Flatten(hops),
	}, nil
}

// GenerateUntil retries generation with seeds DeriveSeed(opts.Seed, attempt)
// for attempt = 0..maxAttempts-1 and returns the first layout accepted by
// accept, along with the seed that produced it. A typical accept is
// (*Layout).Connected. Validation errors are returned immediately since no
// reseed can fix them.
func GenerateUntil(opts Options, maxAttempts int, accept func(*Layout) bool) (*Layout, int64, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, dungeonErrorf(MethodUntil, err, "options")
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		seed := DeriveSeed(opts.Seed, uint64(attempt))
		run := opts
		run.Seed = seed
		layout, err := Generate(run)
		if err != nil {
			return nil, 0, dungeonErrorf(MethodUntil, err, "attempt %d", attempt)
		}
		if accept == nil || accept(layout) {
			return layout, seed, nil
		}
	}
	return nil, 0, dungeonErrorf(MethodUntil, ErrAttemptsExhausted, "%d attempts", maxAttempts)
}
