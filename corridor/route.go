package corridor

import (
	"math/rand"

	"github.com/katalvlaran/bspdungeon/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Route chains rooms by nearest unvisited center and returns every corridor
// segment in path order. See RouteHops for the per-hop breakdown.
func Route(rooms []geom.Rect, maxWidth int, rng *rand.Rand, opts ...Option) ([]geom.Rect, error) {
	hops, err := RouteHops(rooms, maxWidth, rng, opts...)
	if err != nil {
		return nil, err
	}
	return Flatten(hops), nil
}

// RouteHops chains rooms greedily starting from rooms[0] and returns the
// len(rooms)-1 hops in path order. Each hop goes from the current room to the
// unvisited room with the closest center; ties go to the room that comes
// first in the input order. Empty input yields no hops.
// Complexity: O(N²) time, O(N) memory.
func RouteHops(rooms []geom.Rect, maxWidth int, rng *rand.Rand, opts ...Option) ([]Hop, error) {
	if err := validate(MethodRoute, maxWidth, rng); err != nil {
		return nil, err
	}
	for i, r := range rooms {
		if !r.Valid() {
			return nil, corridorErrorf(MethodRoute, ErrInvalidRoom, "room[%d] %v", i, r)
		}
	}
	if len(rooms) < 2 {
		return nil, nil
	}
	cfg := newConfig(opts...)

	centers := make([]orb.Point, len(rooms))
	for i, r := range rooms {
		centers[i] = r.Center()
	}

	// unvisited keeps input order; removal preserves it for tie-breaking.
	unvisited := make([]int, 0, len(rooms)-1)
	for i := 1; i < len(rooms); i++ {
		unvisited = append(unvisited, i)
	}

	hops := make([]Hop, 0, len(rooms)-1)
	current := 0
	for len(unvisited) > 0 {
		k := nearest(centers[current], centers, unvisited)
		next := unvisited[k]
		hops = append(hops, Hop{
			From:     current,
			To:       next,
			Segments: bridge(rooms[current], rooms[next], maxWidth, rng, cfg),
		})
		unvisited = append(unvisited[:k], unvisited[k+1:]...)
		current = next
	}
	return hops, nil
}

// Flatten concatenates the segments of hops in order.
func Flatten(hops []Hop) []geom.Rect {
	var out []geom.Rect
	for _, h := range hops {
		out = append(out, h.Segments...)
	}
	return out
}

// nearest returns the position in candidates of the center closest to from.
// Strict comparison keeps the first of equally distant candidates.
// TODO: swap the linear scan for a spatial index once room counts reach the thousands.
func nearest(from orb.Point, centers []orb.Point, candidates []int) int {
	best, bestDist := 0, planar.Distance(from, centers[candidates[0]])
	for k := 1; k < len(candidates); k++ {
		if d := planar.Distance(from, centers[candidates[k]]); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
