// Package geom provides the integer rectangle value type shared by every
// stage of dungeon generation.
//
// What:
//
//   - Rect is an axis-aligned rectangle (X0,Y0)-(X1,Y1) on an integer grid.
//     The far edges are exclusive: a rasterizer covers cells x∈[X0,X1), y∈[Y0,Y1).
//   - Point is an integer (X,Y) pair used for origins, sizes and min cell sizes.
//   - Center and Bound bridge into github.com/paulmach/orb for distance math.
//
// Why:
//
//   - Partitions, rooms and corridor segments are all plain rectangles with no
//     identity beyond their coordinates, so they are passed and compared by value.
//
// Complexity:
//
//   - Every method is O(1) and allocation-free.
package geom
