package dungeon

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/bspdungeon/geom"
)

// PieceKind tells rooms and corridor segments apart inside an Index.
type PieceKind int

const (
	// RoomPiece is a room rectangle.
	RoomPiece PieceKind = iota
	// CorridorPiece is a corridor segment.
	CorridorPiece
)

// touchSlack widens query boxes so that rectangles sharing only an edge are
// returned as candidates; Rect.Touches makes the exact call.
const touchSlack = 0.5

// piece wraps a rectangle for R-tree storage.
type piece struct {
	Kind  PieceKind
	Index int
	Rect  geom.Rect
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (p *piece) Bounds() rtreego.Rect {
	return p.bbox
}

// Index is an R-tree over the rooms and corridor segments of a layout.
type Index struct {
	tree   *rtreego.Rtree
	pieces []*piece
	rooms  int
}

// NewIndex indexes rooms and corridors. Invalid rectangles are skipped.
func NewIndex(rooms, corridors []geom.Rect) *Index {
	idx := &Index{
		tree:  rtreego.NewTree(2, 25, 50), // 2D, min 25, max 50 entries per node
		rooms: len(rooms),
	}
	add := func(kind PieceKind, i int, r geom.Rect) {
		bbox, err := boxOf(r, 0)
		if err != nil {
			return
		}
		p := &piece{Kind: kind, Index: i, Rect: r, bbox: bbox}
		idx.pieces = append(idx.pieces, p)
		idx.tree.Insert(p)
	}
	for i, r := range rooms {
		add(RoomPiece, i, r)
	}
	for i, r := range corridors {
		add(CorridorPiece, i, r)
	}
	return idx
}

// Size returns the number of indexed rectangles.
func (idx *Index) Size() int {
	return len(idx.pieces)
}

// RoomsAt returns the indices of rooms covering cell (x,y), ascending.
func (idx *Index) RoomsAt(x, y int) []int {
	q, err := rtreego.NewRect(rtreego.Point{float64(x) + 0.25, float64(y) + 0.25}, []float64{0.5, 0.5})
	if err != nil {
		return nil
	}
	var out []int
	for _, s := range idx.tree.SearchIntersect(q) {
		p := s.(*piece)
		if p.Kind == RoomPiece && p.Rect.ContainsCell(x, y) {
			out = append(out, p.Index)
		}
	}
	sort.Ints(out)
	return out
}

// RoomGroups partitions rooms into groups connected through touching
// rectangles (rooms or corridor segments), using union-find over R-tree
// neighbor queries. Groups are sorted internally and ordered by their
// smallest room index.
// Complexity: O(P·(log P + k)) for P pieces with k candidates per query.
func (idx *Index) RoomGroups() [][]int {
	n := len(idx.pieces)
	parent := make([]int, n)
	rank := make([]int, n)
	slot := make(map[*piece]int, n)
	for i, p := range idx.pieces {
		parent[i] = i
		slot[p] = i
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	// Union by rank.
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	for i, p := range idx.pieces {
		q, err := boxOf(p.Rect, touchSlack)
		if err != nil {
			continue
		}
		for _, s := range idx.tree.SearchIntersect(q) {
			other := s.(*piece)
			if other != p && p.Rect.Touches(other.Rect) {
				union(i, slot[other])
			}
		}
	}

	byRoot := make(map[int][]int)
	var roots []int
	for i, p := range idx.pieces {
		if p.Kind != RoomPiece {
			continue
		}
		r := find(i)
		if _, ok := byRoot[r]; !ok {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], p.Index)
	}

	groups := make([][]int, 0, len(roots))
	for _, r := range roots {
		g := byRoot[r]
		sort.Ints(g)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// boxOf converts r into an rtreego.Rect grown by slack on every side.
func boxOf(r geom.Rect, slack float64) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(r.X0) - slack, float64(r.Y0) - slack},
		[]float64{float64(r.Width()) + 2*slack, float64(r.Height()) + 2*slack},
	)
}
