package raster

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Components finds all contiguous regions of Floor cells under conn.
// Each component is a slice of row-major cell indices in BFS order;
// components are ordered by their first cell in row-major order.
// Use Coordinate to convert an index back to (x,y).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(conn Connectivity) [][]int {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	seen := make([]bool, len(g.Tiles))
	var comps [][]int

	for i0, t := range g.Tiles {
		if t != Floor || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if g.At(vx, vy) != Floor {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
