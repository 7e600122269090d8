package partition_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bspdungeon/geom"
	"github.com/katalvlaran/bspdungeon/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeds used by the property loops below.
var seeds = []int64{1, 2, 3, 7, 42, 1337, 20240101, 987654321}

// build is a helper that builds a tree from a fixed seed and fails on error.
func build(t *testing.T, seed int64, size, minCell geom.Point, opts ...partition.Option) *partition.Tree {
	t.Helper()
	tree, err := partition.Build(geom.Pt(0, 0), size, minCell, rand.New(rand.NewSource(seed)), opts...)
	require.NoError(t, err)
	require.NotNil(t, tree)
	return tree
}

// TestBuild_InvalidDimension verifies fail-fast on non-positive inputs.
func TestBuild_InvalidDimension(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name          string
		size, minCell geom.Point
	}{
		{"zero width", geom.Pt(0, 10), geom.Pt(2, 2)},
		{"negative height", geom.Pt(10, -1), geom.Pt(2, 2)},
		{"zero min width", geom.Pt(10, 10), geom.Pt(0, 2)},
		{"negative min height", geom.Pt(10, 10), geom.Pt(2, -3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := partition.Build(geom.Pt(0, 0), tc.size, tc.minCell, rng)
			assert.ErrorIs(t, err, partition.ErrInvalidDimension)
			assert.Nil(t, tree, "no partial tree on invalid input")
		})
	}
}

// TestBuild_NilRand verifies that a nil RNG is rejected.
func TestBuild_NilRand(t *testing.T) {
	_, err := partition.Build(geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(2, 2), nil)
	assert.ErrorIs(t, err, partition.ErrNeedRandSource)
}

// TestBuild_SingleLeaf checks that a min cell at least as large as the area
// yields one leaf equal to the whole area.
func TestBuild_SingleLeaf(t *testing.T) {
	tree := build(t, 1, geom.Pt(30, 20), geom.Pt(30, 20))
	leaves := tree.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, geom.R(0, 0, 30, 20), leaves[0])
	assert.True(t, tree.Root.IsLeaf())
	assert.Equal(t, 0, tree.MaxDepth())
}

// TestBuild_ScenarioForty: 40×40 with 20×20 min cells cannot split at all
// (20+20 >= 40-20), so the result always has between 1 and 4 leaves.
func TestBuild_ScenarioForty(t *testing.T) {
	for _, seed := range seeds {
		tree := build(t, seed, geom.Pt(40, 40), geom.Pt(20, 20))
		n := len(tree.Leaves())
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 4)
	}
}

// TestBuild_Tiling checks that leaves exactly tile the root: their areas sum
// to the root area, they stay inside it, and no two overlap.
func TestBuild_Tiling(t *testing.T) {
	origin := geom.Pt(5, -3)
	for _, seed := range seeds {
		tree, err := partition.Build(origin, geom.Pt(97, 61), geom.Pt(6, 4), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		root := tree.Bounds()
		assert.Equal(t, geom.R(5, -3, 102, 58), root)

		leaves := tree.Leaves()
		require.Greater(t, len(leaves), 1, "seed %d should split at least once", seed)
		total := 0
		for i, a := range leaves {
			require.True(t, a.Valid(), "leaf %v invalid", a)
			require.True(t, root.Contains(a), "leaf %v escapes root", a)
			total += a.Area()
			for _, b := range leaves[i+1:] {
				require.False(t, a.Overlaps(b), "leaves %v and %v overlap", a, b)
			}
		}
		assert.Equal(t, root.Area(), total, "seed %d: leaves must cover the root", seed)
	}
}

// TestBuild_ChildrenTileParent checks the per-node invariant: two children
// split the parent along one axis at SplitAt.
func TestBuild_ChildrenTileParent(t *testing.T) {
	tree := build(t, 42, geom.Pt(120, 80), geom.Pt(8, 8))
	tree.Walk(func(n *partition.Node) bool {
		if n.IsLeaf() {
			assert.Equal(t, partition.NoSplit, n.Axis)
			return true
		}
		require.NotNil(t, n.Before)
		require.NotNil(t, n.After)
		assert.Equal(t, n.Depth+1, n.Before.Depth)
		assert.Equal(t, n.Depth+1, n.After.Depth)
		switch n.Axis {
		case partition.Horizontal:
			assert.Equal(t, geom.R(n.Rect.X0, n.Rect.Y0, n.Rect.X1, n.SplitAt), n.Before.Rect)
			assert.Equal(t, geom.R(n.Rect.X0, n.SplitAt, n.Rect.X1, n.Rect.Y1), n.After.Rect)
		case partition.Vertical:
			assert.Equal(t, geom.R(n.Rect.X0, n.Rect.Y0, n.SplitAt, n.Rect.Y1), n.Before.Rect)
			assert.Equal(t, geom.R(n.SplitAt, n.Rect.Y0, n.Rect.X1, n.Rect.Y1), n.After.Rect)
		default:
			t.Fatalf("inner node without axis: %v", n.Rect)
		}
		return true
	})
}

// TestBuild_MinSize checks that both children of every split are at least the
// min spacing on the split axis, and that every leaf is at least the min size
// unless the root itself was smaller on that axis.
func TestBuild_MinSize(t *testing.T) {
	minCell := geom.Pt(7, 5)
	for _, seed := range seeds {
		tree := build(t, seed, geom.Pt(100, 9), minCell)
		tree.Walk(func(n *partition.Node) bool {
			switch n.Axis {
			case partition.Horizontal:
				assert.GreaterOrEqual(t, n.Before.Rect.Height(), minCell.Y)
				assert.GreaterOrEqual(t, n.After.Rect.Height(), minCell.Y)
			case partition.Vertical:
				assert.GreaterOrEqual(t, n.Before.Rect.Width(), minCell.X)
				assert.GreaterOrEqual(t, n.After.Rect.Width(), minCell.X)
			}
			return true
		})
		for _, leaf := range tree.Leaves() {
			assert.GreaterOrEqual(t, leaf.Width(), minCell.X)
			// The root is only 9 tall: it can never split horizontally (5 >= 4).
			assert.Equal(t, 9, leaf.Height())
		}
	}
}

// TestBuild_Determinism verifies identical seeds produce identical trees and
// different seeds are allowed to diverge.
func TestBuild_Determinism(t *testing.T) {
	size, minCell := geom.Pt(200, 150), geom.Pt(10, 10)
	first := build(t, 99, size, minCell)
	for i := 0; i < 3; i++ {
		again := build(t, 99, size, minCell)
		assert.Equal(t, first.Leaves(), again.Leaves())
		assert.Equal(t, first.Root.String(), again.Root.String())
	}

	other := build(t, 100, size, minCell)
	assert.NotEqual(t, first.Root.String(), other.Root.String(), "different seeds should differ on a 200×150 area")
}

// TestBuild_IndependentGenerators checks that interleaving two runs with their
// own generators does not change either result.
func TestBuild_IndependentGenerators(t *testing.T) {
	size, minCell := geom.Pt(90, 90), geom.Pt(9, 9)
	solo := build(t, 5, size, minCell).Leaves()

	a := rand.New(rand.NewSource(5))
	b := rand.New(rand.NewSource(6))
	_, err := partition.Build(geom.Pt(0, 0), size, minCell, b)
	require.NoError(t, err)
	interleaved, err := partition.Build(geom.Pt(0, 0), size, minCell, a)
	require.NoError(t, err)
	assert.Equal(t, solo, interleaved.Leaves())
}

// TestBuild_MaxDepth verifies the depth cap.
func TestBuild_MaxDepth(t *testing.T) {
	for _, seed := range seeds {
		tree := build(t, seed, geom.Pt(500, 500), geom.Pt(1, 1), partition.WithMaxDepth(3))
		assert.LessOrEqual(t, tree.MaxDepth(), 3)
		assert.LessOrEqual(t, tree.LeafCount(), 8)
	}

	capped := build(t, 1, geom.Pt(500, 500), geom.Pt(1, 1), partition.WithMaxDepth(0))
	assert.Equal(t, 1, capped.LeafCount(), "depth 0 keeps the root as the only leaf")

	assert.Panics(t, func() { partition.WithMaxDepth(-1) })
}

// TestBuild_FineGrained exercises a deep tree (min cell 1×1) to make sure the
// worklist handles large node counts without recursion.
func TestBuild_FineGrained(t *testing.T) {
	tree := build(t, 11, geom.Pt(256, 256), geom.Pt(1, 1))
	leaves := tree.Leaves()
	total := 0
	for _, l := range leaves {
		total += l.Area()
	}
	assert.Equal(t, 256*256, total)
	assert.Equal(t, len(leaves), tree.LeafCount())
	assert.LessOrEqual(t, tree.MaxDepth(), partition.DefaultMaxDepth)
}

// TestTree_WalkSkip verifies that returning false prunes a subtree.
func TestTree_WalkSkip(t *testing.T) {
	tree := build(t, 3, geom.Pt(100, 100), geom.Pt(10, 10))
	require.False(t, tree.Root.IsLeaf())

	visited := 0
	tree.Walk(func(n *partition.Node) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited, "pruning at the root visits only the root")
}

// TestTree_LeavesPreOrder checks that the first leaf is reached by always
// following Before, and the last by always following After.
func TestTree_LeavesPreOrder(t *testing.T) {
	tree := build(t, 8, geom.Pt(100, 100), geom.Pt(10, 10))
	leaves := tree.Leaves()

	first, last := tree.Root, tree.Root
	for !first.IsLeaf() {
		first = first.Before
	}
	for !last.IsLeaf() {
		last = last.After
	}
	assert.Equal(t, first.Rect, leaves[0])
	assert.Equal(t, last.Rect, leaves[len(leaves)-1])
}

// TestAxis_String covers the axis names used by Node.String.
func TestAxis_String(t *testing.T) {
	assert.Equal(t, "none", partition.NoSplit.String())
	assert.Equal(t, "horizontal", partition.Horizontal.String())
	assert.Equal(t, "vertical", partition.Vertical.String())
}
