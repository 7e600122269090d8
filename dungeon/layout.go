package dungeon

import (
	"github.com/katalvlaran/bspdungeon/corridor"
	"github.com/katalvlaran/bspdungeon/geom"
	"github.com/katalvlaran/bspdungeon/partition"
	"github.com/katalvlaran/bspdungeon/raster"
	"github.com/paulmach/orb"
)

// Layout is the result of one generation pass. Rooms[i] was placed inside
// Leaves[i]; Hops index into Rooms; Corridors is the flattened segment list
// in path order. A Layout is never mutated after Generate returns it.
type Layout struct {
	Options   Options
	Tree      *partition.Tree
	Leaves    []geom.Rect
	Rooms     []geom.Rect
	Hops      []corridor.Hop
	Corridors []geom.Rect
}

// Index builds an R-tree over the layout's rooms and corridors.
func (l *Layout) Index() *Index {
	return NewIndex(l.Rooms, l.Corridors)
}

// Connectivity groups room indices that are joined through rooms or
// corridor segments. A fully connected layout yields a single group.
func (l *Layout) Connectivity() [][]int {
	return l.Index().RoomGroups()
}

// Connected reports whether every room can reach every other room.
func (l *Layout) Connected() bool {
	return len(l.Connectivity()) <= 1
}

// RoomsAt returns the indices of rooms covering cell (x,y). Each call builds
// a fresh Index; for repeated lookups build one with Index and query that.
func (l *Layout) RoomsAt(x, y int) []int {
	return l.Index().RoomsAt(x, y)
}

// Bounds returns the bounding box of the dungeon area and every corridor
// segment. Corridors may poke out of the area by up to their half-width.
func (l *Layout) Bounds() orb.Bound {
	var b orb.Bound
	if l.Tree != nil {
		b = l.Tree.Bounds().Bound()
	} else {
		b = geom.FromOriginSize(geom.Pt(0, 0), l.Options.Size()).Bound()
	}
	for _, c := range l.Corridors {
		b = b.Union(c.Bound())
	}
	return b
}

// Rasterize fills rooms and corridors into a grid covering the dungeon area.
func (l *Layout) Rasterize() (*raster.Grid, error) {
	area := geom.FromOriginSize(geom.Pt(0, 0), l.Options.Size())
	if l.Tree != nil {
		area = l.Tree.Bounds()
	}
	rects := make([]geom.Rect, 0, len(l.Rooms)+len(l.Corridors))
	rects = append(rects, l.Rooms...)
	rects = append(rects, l.Corridors...)
	return raster.Fill(area, rects...)
}

// String renders the rasterized layout. Layouts returned by Generate always
// rasterize; a hand-built Layout with no Tree and a non-positive Options size
// renders as "".
func (l *Layout) String() string {
	g, err := l.Rasterize()
	if err != nil {
		return ""
	}
	return g.String()
}
