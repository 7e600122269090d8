package corridor

import (
	"math/rand"

	"github.com/katalvlaran/bspdungeon/geom"
)

// Bridge returns the corridor segments joining rooms a and b: zero segments
// for a zero-gap pair under ZeroGapSkip, otherwise exactly three.
//
// The gap vector is (b.X0-a.X1, b.Y0-a.Y1). The bridge travels along the axis
// with the smaller absolute gap (Horizontal on ties). A negative gap on that
// axis means b lies left of (or above) a, so b becomes the start of the bridge.
//
// Draw order: half-width in [0,maxWidth], the start room's anchor, the end
// room's anchor, then the midpoint strictly between the facing edges.
// Complexity: O(1).
func Bridge(a, b geom.Rect, maxWidth int, rng *rand.Rand, opts ...Option) ([]geom.Rect, error) {
	if err := validate(MethodBridge, maxWidth, rng); err != nil {
		return nil, err
	}
	if !a.Valid() || !b.Valid() {
		return nil, corridorErrorf(MethodBridge, ErrInvalidRoom, "rooms %v, %v", a, b)
	}
	return bridge(a, b, maxWidth, rng, newConfig(opts...)), nil
}

// MaxWidth is the largest accepted corridor half-width. It keeps the
// anchor±width corner arithmetic and the width draw far from int overflow.
const MaxWidth = 1 << 16

// validate checks the arguments shared by Bridge and RouteHops.
func validate(method string, maxWidth int, rng *rand.Rand) error {
	if maxWidth < 0 || maxWidth > MaxWidth {
		return corridorErrorf(method, ErrInvalidWidth, "max width %d", maxWidth)
	}
	if rng == nil {
		return corridorErrorf(method, ErrNeedRandSource, "nil rng")
	}
	return nil
}

// bridge builds the segments for a validated pair; see Bridge for the rules.
func bridge(a, b geom.Rect, maxWidth int, rng *rand.Rand, cfg config) []geom.Rect {
	dx, dy := b.X0-a.X1, b.Y0-a.Y1
	if (dx == 0 || dy == 0) && cfg.zeroGap == ZeroGapSkip {
		return nil
	}

	o, gap := Horizontal, dx
	if abs(dy) < abs(dx) {
		o, gap = Vertical, dy
	}
	from, to := a, b
	if gap < 0 {
		from, to = b, a
	}

	width := rng.Intn(maxWidth + 1)

	_, lo, fc0, fc1 := project(from, o)
	hi, _, tc0, tc1 := project(to, o)
	anchorFrom := fc0 + rng.Intn(fc1-fc0)
	anchorTo := tc0 + rng.Intn(tc1-tc0)
	mid := between(lo, hi, rng)

	stubFrom := piece(o, lo, mid, anchorFrom-width, anchorFrom+width+1)
	bar := piece(o, mid-width, mid+width+1,
		min(anchorFrom, anchorTo)-width, max(anchorFrom, anchorTo)+width+1)
	stubTo := piece(o, mid, hi, anchorTo-width, anchorTo+width+1)

	return []geom.Rect{stubFrom, bar, stubTo}
}

// project returns r's span along the travel axis and across it.
func project(r geom.Rect, o Orientation) (along0, along1, across0, across1 int) {
	if o == Horizontal {
		return r.X0, r.X1, r.Y0, r.Y1
	}
	return r.Y0, r.Y1, r.X0, r.X1
}

// piece builds the rectangle spanning p..q along the travel axis and c0..c1
// across it. The travel span is normalized and never shorter than 1.
func piece(o Orientation, p, q, c0, c1 int) geom.Rect {
	a0, a1 := min(p, q), max(p, q)
	if a1 == a0 {
		a1++
	}
	if o == Horizontal {
		return geom.R(a0, c0, a1, c1)
	}
	return geom.R(c0, a0, c1, a1)
}

// between draws a coordinate strictly between lo and hi. When no integer
// fits, it returns the smaller edge without consuming a draw.
func between(lo, hi int, rng *rand.Rand) int {
	l, h := min(lo, hi), max(lo, hi)
	if h-l < 2 {
		return l
	}
	return l + 1 + rng.Intn(h-l-1)
}

// abs returns |v|.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
