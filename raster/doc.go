// Package raster turns room and corridor rectangles into a floor/wall grid
// and analyzes the result as a graph of cells.
//
// What:
//
//   - Fill marks every cell covered by any rectangle as Floor, everything else
//     as Wall. Rectangles are clipped to the grid bounds.
//   - Components finds contiguous floor regions with 4- or 8-connectivity.
//   - String renders the grid as ASCII: '#' for wall, '.' for floor.
//
// Why:
//
//   - A generated layout is only useful if a walker can get from every room to
//     every other one; counting floor components on the rasterized grid is the
//     ground truth for that.
//
// Complexity:
//
//   - Fill:       O(W×H + Σ area of rectangles).
//   - Components: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: the grid bounds have non-positive width or height.
package raster
