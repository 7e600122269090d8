package partition

import (
	"math/rand"

	"github.com/katalvlaran/bspdungeon/geom"
)

// Build partitions the rectangle origin..origin+size into a BSP tree whose
// leaves are never split below minCell on the axis they were cut along.
//
// Per node: a fair coin (rng.Float64() >= 0.5) picks Horizontal, otherwise
// Vertical. With [start,end) the node's extent on that axis and m the matching
// minCell component, the node stays a leaf when start+m >= end-m; otherwise it
// splits at a uniform integer in [start+m, end-m] (inclusive).
//
// Returns ErrInvalidDimension if size or minCell has a non-positive component
// and ErrNeedRandSource if rng is nil.
// Complexity: O(N) time and memory for N nodes; no recursion.
func Build(origin, size, minCell geom.Point, rng *rand.Rand, opts ...Option) (*Tree, error) {
	if !size.Positive() {
		return nil, partitionErrorf(MethodBuild, ErrInvalidDimension, "size %v", size)
	}
	if !minCell.Positive() {
		return nil, partitionErrorf(MethodBuild, ErrInvalidDimension, "min cell %v", minCell)
	}
	if rng == nil {
		return nil, partitionErrorf(MethodBuild, ErrNeedRandSource, "nil rng")
	}
	cfg := newBuildConfig(opts...)

	root := &Node{Rect: geom.FromOriginSize(origin, size)}

	// LIFO worklist; After is pushed before Before so that Before's subtree is
	// fully built (and draws from rng) first, exactly as recursion would.
	stack := []*Node{root}
	var n *Node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Depth >= cfg.maxDepth {
			continue
		}
		if !split(n, minCell, rng) {
			continue
		}
		stack = append(stack, n.After, n.Before)
	}

	return &Tree{Root: root, MinCell: minCell}, nil
}

// split draws an axis and a split coordinate for n and attaches the two
// children. It reports false (leaving n a leaf) when n is too small.
func split(n *Node, minCell geom.Point, rng *rand.Rand) bool {
	r := n.Rect
	horizontal := rng.Float64() >= 0.5

	var start, end, spacing int
	if horizontal {
		start, end, spacing = r.Y0, r.Y1, minCell.Y
	} else {
		start, end, spacing = r.X0, r.X1, minCell.X
	}
	lo, hi := start+spacing, end-spacing
	if lo >= hi {
		return false
	}
	at := lo + rng.Intn(hi-lo+1)

	before, after := r, r
	if horizontal {
		n.Axis = Horizontal
		before.Y1, after.Y0 = at, at
	} else {
		n.Axis = Vertical
		before.X1, after.X0 = at, at
	}
	n.SplitAt = at
	n.Before = &Node{Rect: before, Depth: n.Depth + 1}
	n.After = &Node{Rect: after, Depth: n.Depth + 1}
	return true
}
