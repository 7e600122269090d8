// Package dungeon wires partitioning, room placement and corridor routing
// into one generation pass and analyzes the resulting layout.
//
// Data flow:
//
//	size + min cell ─► partition.Build ─► leaves ─► room.PlaceAll ─► rooms
//	                                                                   │
//	                                     corridors ◄─ corridor.RouteHops
//
// A single *rand.Rand is threaded through every stage in that order, so one
// seed reproduces the whole layout. Two runs with distinct generators never
// interfere.
//
// Configuration:
//
//   - Options holds the whole configuration surface; DefaultOptions gives a
//     100×100 dungeon with 20×20 minimum cells.
//   - LoadOptions reads Options from YAML on top of the defaults.
//   - Seed 0 selects a fixed default seed (see rng.go), never the clock.
//
// Analysis:
//
//   - Layout.Connectivity groups rooms joined by emitted geometry. It exposes
//     zero-gap hops that were chained without a corridor.
//   - Layout.RoomsAt answers point queries through an R-tree.
//   - Layout.Rasterize produces a floor/wall grid (package raster).
//
// Errors:
//
//   - ErrInvalidDimension, ErrInvalidBias, ErrInvalidWidth, ErrInvalidDepth,
//     ErrInvalidPolicy: configuration outside the accepted ranges.
//   - ErrInvalidConfig: a YAML document that cannot be decoded.
//   - ErrAttemptsExhausted: GenerateUntil found no acceptable layout.
package dungeon
