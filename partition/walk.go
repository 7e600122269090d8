package partition

import "github.com/katalvlaran/bspdungeon/geom"

// Leaves returns the leaf rectangles in pre-order: a leaf yields itself,
// an inner node yields Before's leaves then After's. The slice is freshly
// allocated on every call.
// Complexity: O(N) time.
func (t *Tree) Leaves() []geom.Rect {
	var out []geom.Rect
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			out = append(out, n.Rect)
		}
		return true
	})
	return out
}

// Walk visits every node in pre-order. Returning false from fn skips the
// node's children but continues with the rest of the tree.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root, fn)
}

// LeafCount returns the number of leaves.
func (t *Tree) LeafCount() int {
	count := 0
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// MaxDepth returns the depth of the deepest node (0 for a single leaf).
func (t *Tree) MaxDepth() int {
	deepest := 0
	t.Walk(func(n *Node) bool {
		deepest = max(deepest, n.Depth)
		return true
	})
	return deepest
}

// walk is the iterative pre-order traversal shared by Tree and Node.
func walk(root *Node, fn func(*Node) bool) {
	stack := []*Node{root}
	var n *Node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) || n.IsLeaf() {
			continue
		}
		stack = append(stack, n.After, n.Before)
	}
}
