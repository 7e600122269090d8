package raster

import (
	"strings"

	"github.com/katalvlaran/bspdungeon/geom"
)

// Fill rasterizes rects into a new grid covering bounds. Parts of rectangles
// outside bounds are ignored; invalid rectangles are skipped.
// Returns ErrEmptyGrid if bounds is not a valid rectangle.
func Fill(bounds geom.Rect, rects ...geom.Rect) (*Grid, error) {
	if !bounds.Valid() {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Bounds: bounds,
		Width:  bounds.Width(),
		Height: bounds.Height(),
		Tiles:  make([]Tile, bounds.Area()),
	}
	for _, r := range rects {
		x0, x1 := max(r.X0, bounds.X0), min(r.X1, bounds.X1)
		y0, y1 := max(r.Y0, bounds.Y0), min(r.Y1, bounds.Y1)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				g.Tiles[g.index(x, y)] = Floor
			}
		}
	}
	return g, nil
}

// InBounds reports whether world cell (x,y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.Bounds.ContainsCell(x, y)
}

// At returns the tile at world cell (x,y); cells off the grid are Wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.Tiles[g.index(x, y)]
}

// FloorCount returns the number of Floor cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, t := range g.Tiles {
		if t == Floor {
			n++
		}
	}
	return n
}

// Coordinate converts a row-major index back to world (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return g.Bounds.X0 + idx%g.Width, g.Bounds.Y0 + idx/g.Width
}

// String renders one line per row: '#' for Wall, '.' for Floor.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for i, t := range g.Tiles {
		if t == Floor {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('#')
		}
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// index maps world (x,y) to a row-major index. Caller checks bounds.
func (g *Grid) index(x, y int) int {
	return (y-g.Bounds.Y0)*g.Width + (x - g.Bounds.X0)
}
