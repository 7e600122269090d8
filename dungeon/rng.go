// Package dungeon - RNG policy shared by Generate and GenerateUntil.
//
// Goals:
//   - Determinism: same seed ⇒ identical layout.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Give every concurrent generation
//     its own generator; Generate does this by constructing one per call.
package dungeon

import "math/rand"

// defaultSeed is the fixed seed used when Options.Seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a base seed and an attempt number into a new seed with a
// SplitMix64 finalizer, so consecutive attempts get decorrelated streams.
// DeriveSeed(base, 0) returns base unchanged.
func DeriveSeed(base int64, attempt uint64) int64 {
	if attempt == 0 {
		return base
	}
	var x uint64
	x = uint64(base) ^ (attempt + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
