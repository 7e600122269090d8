// Package corridor joins placed rooms into a single chain of orthogonal
// corridors.
//
// What:
//
//   - Route chains rooms greedily: starting at rooms[0], it repeatedly hops to
//     the unvisited room whose center is closest (Euclidean, via orb/planar)
//     to the current room's center and bridges the two. N rooms yield exactly
//     N-1 hops forming one path. This is nearest-neighbor chaining, not a
//     minimum spanning tree.
//   - Bridge builds one Z/S-shaped corridor between two rooms: a stub leaving
//     the start room, a bar at a random midpoint between the facing edges, and
//     a stub entering the end room. Each piece is widened by a random
//     half-thickness in [0, maxWidth].
//
// Zero gaps:
//
//   - When the gap between the rooms is exactly zero on either axis, the pair is
//     treated as already connected and Bridge returns no segments (ZeroGapSkip,
//     the default). Rooms that only touch at a corner, or overlap, then end up
//     chained without any connecting geometry. WithZeroGapPolicy(ZeroGapBridge)
//     emits a corridor for such pairs instead.
//
// Complexity:
//
//   - Bridge: O(1).
//   - Route:  O(N²) distance evaluations for N rooms.
//
// Errors:
//
//   - ErrInvalidWidth:   maxWidth < 0 or maxWidth > MaxWidth.
//   - ErrInvalidRoom:    a room has non-positive width or height.
//   - ErrNeedRandSource: rng is nil.
package corridor
