// Package partition implements binary space partitioning (BSP) of an integer
// rectangle into a tree of non-overlapping cells.
//
// What:
//
//   - Build splits a root rectangle recursively: each node picks a split axis
//     with a fair coin, and splits at a uniformly random coordinate that keeps
//     both children at least the configured minimum cell size on that axis.
//     A node that cannot host two such children becomes a leaf.
//   - Tree.Leaves lists the leaf rectangles in pre-order (Before, then After).
//   - Tree.Walk visits every node in the same pre-order.
//
// Guarantees:
//
//   - Tiling: the leaves exactly tile the root rectangle without gaps or overlap.
//   - Min size: every split leaves both children ≥ min cell size on the split axis.
//   - Determinism: a tree depends only on its inputs and the state of the
//     supplied *rand.Rand. The RNG is consumed in depth-first pre-order.
//   - Bounded depth: the build uses an explicit worklist (no recursion) and
//     stops splitting at WithMaxDepth (DefaultMaxDepth unless overridden).
//
// Complexity:
//
//   - Build:  O(N) time and memory for N nodes.
//   - Leaves: O(N) time, O(depth) auxiliary memory.
//
// Errors:
//
//   - ErrInvalidDimension: size or min cell size has a non-positive component.
//   - ErrNeedRandSource:   rng is nil.
package partition
