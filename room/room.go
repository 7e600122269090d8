package room

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/bspdungeon/geom"
)

// Generate returns a room inside cell. See the package documentation for the
// meaning of biasRatio and biasStrength.
//
// The x axis is drawn before the y axis, and on each axis the start before
// the end, so a seeded rng reproduces the same room.
// Complexity: O(1).
func Generate(cell geom.Rect, biasRatio, biasStrength float64, rng *rand.Rand) (geom.Rect, error) {
	if err := validate(MethodGenerate, biasRatio, biasStrength, rng); err != nil {
		return geom.Rect{}, err
	}
	if !cell.Valid() {
		return geom.Rect{}, roomErrorf(MethodGenerate, ErrInvalidCell, "cell %v", cell)
	}
	return generate(cell, biasRatio, biasStrength, rng), nil
}

// PlaceAll generates one room per cell, in the same order as cells.
// Returns ErrInvalidCell (wrapped with the offending index) if any cell is
// degenerate; no partial result is returned.
// Complexity: O(len(cells)).
func PlaceAll(cells []geom.Rect, biasRatio, biasStrength float64, rng *rand.Rand) ([]geom.Rect, error) {
	if err := validate(MethodPlaceAll, biasRatio, biasStrength, rng); err != nil {
		return nil, err
	}
	for i, cell := range cells {
		if !cell.Valid() {
			return nil, roomErrorf(MethodPlaceAll, ErrInvalidCell, "cell[%d] %v", i, cell)
		}
	}

	rooms := make([]geom.Rect, len(cells))
	for i, cell := range cells {
		rooms[i] = generate(cell, biasRatio, biasStrength, rng)
	}
	return rooms, nil
}

// validate checks the bias pair and the generator.
func validate(method string, biasRatio, biasStrength float64, rng *rand.Rand) error {
	if !unit(biasRatio) {
		return roomErrorf(method, ErrInvalidBias, "ratio %v", biasRatio)
	}
	if !unit(biasStrength) {
		return roomErrorf(method, ErrInvalidBias, "strength %v", biasStrength)
	}
	if rng == nil {
		return roomErrorf(method, ErrNeedRandSource, "nil rng")
	}
	return nil
}

// unit reports v ∈ [0,1]; NaN fails.
func unit(v float64) bool {
	return v >= 0 && v <= 1
}

// generate places one room in cell, x axis first.
func generate(cell geom.Rect, ratio, strength float64, rng *rand.Rand) geom.Rect {
	x0, x1 := span(cell.X0, cell.X1, ratio, strength, rng)
	y0, y1 := span(cell.Y0, cell.Y1, ratio, strength, rng)
	return geom.R(x0, y0, x1, y1)
}

// span places the room on one axis of the cell [start,end).
func span(start, end int, ratio, strength float64, rng *rand.Rand) (int, int) {
	var (
		mid    = start + (end-start)/2
		center = float64(start+end) / 2
		drawLo = start
		drawHi int
	)
	if mid > start {
		drawLo = start + rng.Intn(mid-start)
	}
	drawHi = mid + rng.Intn(end-mid)

	targetLo := lerp(float64(start), center, 1-ratio)
	targetHi := lerp(float64(end), center, 1-ratio)

	lo := int(math.Floor(lerp(float64(drawLo), targetLo, strength)))
	hi := int(math.Floor(lerp(float64(drawHi), targetHi, strength)))
	return clampSpan(lo, hi, start, end)
}

// clampSpan forces [lo,hi) inside [start,end) with hi-lo >= 1.
func clampSpan(lo, hi, start, end int) (int, int) {
	lo = min(max(lo, start), end-1)
	hi = min(max(hi, lo+1), end)
	return lo, hi
}

// lerp interpolates from a (t=0) to b (t=1).
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
