// Package room places one axis-aligned room inside each partition cell.
//
// What:
//
//   - Generate draws a room inside a single cell. On each axis the room's
//     start is drawn uniformly from the lower half of the cell and its end
//     from the upper half, then each coordinate is pulled toward a bias
//     target by biasStrength.
//   - PlaceAll applies Generate to an ordered list of cells.
//
// Bias knobs:
//
//   - biasRatio ∈ [0,1] is the target share of the cell the room should span.
//     Targets sit (1-biasRatio)/2 of the extent in from each edge, so the
//     target room is centered.
//   - biasStrength ∈ [0,1] interpolates between the random draw (0) and the
//     target (1). Strength 1 yields a centered room of ratio·extent (±1 from
//     rounding down); strength 0 ignores the ratio entirely.
//
// Guarantees:
//
//   - The room is always contained in its cell and at least 1×1, even where
//     interpolation would push a coordinate past the midpoint or an edge.
//   - RNG draws do not depend on the bias knobs, so changing only the bias
//     changes sizes but not the random stream.
//
// Errors:
//
//   - ErrInvalidBias:    biasRatio or biasStrength outside [0,1] (or NaN).
//   - ErrInvalidCell:    the cell has non-positive width or height.
//   - ErrNeedRandSource: rng is nil.
package room
