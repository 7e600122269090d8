package partition

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bspdungeon/geom"
)

// Axis records how a node was split.
type Axis int

const (
	// NoSplit marks a leaf.
	NoSplit Axis = iota
	// Horizontal splits along the y axis: Before is the upper band [Y0,at), After is [at,Y1).
	Horizontal
	// Vertical splits along the x axis: Before is the left band [X0,at), After is [at,X1).
	Vertical
)

// String returns a short axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// Node is one cell of the partition. A node has either no children (leaf)
// or exactly two whose rectangles tile Rect along Axis at SplitAt.
// Nodes exclusively own their children and are never mutated after Build.
type Node struct {
	Rect    geom.Rect
	Depth   int
	Axis    Axis
	SplitAt int
	Before  *Node
	After   *Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Before == nil && n.After == nil
}

// Origin returns the (X0,Y0) corner of the node.
func (n *Node) Origin() geom.Point { return n.Rect.Origin() }

// Bound returns the exclusive (X1,Y1) corner of the node.
func (n *Node) Bound() geom.Point { return n.Rect.Far() }

// String dumps the subtree rooted at n, one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	walk(n, func(m *Node) bool {
		sb.WriteString(strings.Repeat("  ", m.Depth-n.Depth))
		if m.IsLeaf() {
			fmt.Fprintf(&sb, "leaf d=%d origin=%v bound=%v\n", m.Depth, m.Origin(), m.Bound())
		} else {
			fmt.Fprintf(&sb, "node d=%d origin=%v bound=%v split=%s@%d\n",
				m.Depth, m.Origin(), m.Bound(), m.Axis, m.SplitAt)
		}
		return true
	})
	return sb.String()
}

// Tree is an immutable BSP tree produced by Build.
type Tree struct {
	Root    *Node
	MinCell geom.Point
}

// Bounds returns the root rectangle.
func (t *Tree) Bounds() geom.Rect {
	return t.Root.Rect
}
