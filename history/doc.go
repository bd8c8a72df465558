// Package history implements a branching undo tree for stroke-based
// raster drawing, in the style of Emacs' undo-tree: every committed
// stroke becomes a node, undo moves toward the root, and drawing after
// an undo creates a sibling branch instead of discarding the redone
// future. All branches are preserved until the node budget forces the
// oldest history out.
//
// # Storage policy
//
// Keeping a full canvas copy per stroke would be prohibitive, so the
// tree uses a hybrid: a snapshot of the canvas is attached to every
// N-th node along a path (the snapshot interval), and the states in
// between are reconstructed by deterministically replaying the recorded
// strokes from the nearest ancestor snapshot. Fewer snapshots save
// memory but lengthen replay chains.
//
// # Budget
//
// After every recorded stroke the tree trims itself back under its
// node budget: the oldest leaf off the current path is removed first;
// on a purely linear tree, where no such leaf exists, the oldest stroke
// next to the root is folded away by re-parenting its children onto the
// root. Both paths strictly decrease the node count, so the trim loop
// always terminates. The root and the current node are never removed.
//
// # Threading
//
// The tree is single-threaded and cooperative with the render thread:
// every operation runs to completion on the caller's goroutine, and all
// canvas work happens through the easel.CanvasHost callbacks, which may
// touch GPU-resident memory and therefore must stay on the thread that
// owns the drawing context.
package history
