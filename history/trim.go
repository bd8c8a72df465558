package history

import "github.com/gogpu/easel"

// Budget enforcement. Trimming is a maintenance operation, never a
// user-visible error: it silently discards the oldest reachable history
// when the node budget is exceeded. Nodes on the root-to-current path
// are protected, so trimming prefers the oldest leaf outside that path;
// on a purely linear tree it instead folds the oldest stroke into the
// root. Either way a successful step strictly decreases totalNodes,
// which is what keeps the enforcement loop finite. An earlier revision
// of this engine looped forever when the budget was hit on a linear
// tree; the fold-into-root fallback exists to close exactly that hole.

// enforceBudget trims until the tree fits the budget. If a trim step
// reports no progress the loop stops and the violation is logged,
// rather than spinning.
func (t *Tree) enforceBudget() {
	for t.totalNodes > t.maxNodes {
		if !t.trimOnce() {
			easel.Logger().Error("history: trim made no progress, budget not met",
				"total", t.totalNodes, "max", t.maxNodes)
			return
		}
	}
}

// trimOnce removes exactly one node and reports whether it did.
func (t *Tree) trimOnce() bool {
	if t.totalNodes <= 1 {
		return false
	}

	if leaf := t.oldestUnprotectedLeaf(); leaf != nil {
		t.removeLeaf(leaf)
		return true
	}

	// No off-path leaves: every node lies on the root-to-current path,
	// i.e. the tree is linear. Fold the oldest stroke (the node right
	// after the root) into the root instead.
	return t.foldOldestIntoRoot()
}

// oldestUnprotectedLeaf returns the leaf with the smallest timestamp
// that is not on the root-to-current path, or nil. Ties break on the
// smaller (older) node ID so the choice is deterministic.
func (t *Tree) oldestUnprotectedLeaf() *Node {
	protected := make(map[*Node]struct{})
	for n := t.current; n != nil; n = n.parent {
		protected[n] = struct{}{}
	}

	var oldest *Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			if _, ok := protected[n]; ok {
				return
			}
			if oldest == nil ||
				n.timestamp < oldest.timestamp ||
				(n.timestamp == oldest.timestamp && n.id < oldest.id) {
				oldest = n
			}
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return oldest
}

// removeLeaf detaches a leaf from its parent, releases its snapshot,
// and fixes up the parent's branch selection.
func (t *Tree) removeLeaf(leaf *Node) {
	parent := leaf.parent
	idx := parent.childIndex(leaf)
	parent.children = append(parent.children[:idx], parent.children[idx+1:]...)

	switch {
	case parent.activeChild == idx:
		// The removed branch was selected; fall back to the last
		// remaining branch, or -1 when none are left.
		parent.activeChild = len(parent.children) - 1
	case parent.activeChild > idx:
		parent.activeChild--
	}

	leaf.parent = nil
	leaf.snapshot = nil // release pixel buffer immediately
	leaf.stroke = nil
	t.totalNodes--

	easel.Logger().Debug("history: trimmed leaf", "node", leaf.id, "total", t.totalNodes)
}

// foldOldestIntoRoot removes the node immediately after the root on the
// current path by splicing its children onto the root in its place.
// The root and the current node are never deleted: if the oldest stroke
// is the current node, no progress is possible and false is returned
// (only reachable with a budget below the clamp, i.e. a bug).
func (t *Tree) foldOldestIntoRoot() bool {
	if t.current == t.root || len(t.root.children) == 0 {
		return false
	}

	// The oldest stroke on a linear tree is the root's child on the
	// path to current.
	oldest := t.current
	for oldest.parent != t.root {
		oldest = oldest.parent
	}
	if oldest == t.current {
		return false
	}

	idx := t.root.childIndex(oldest)

	// Splice oldest's children into the root at oldest's position,
	// preserving order.
	merged := make([]*Node, 0, len(t.root.children)-1+len(oldest.children))
	merged = append(merged, t.root.children[:idx]...)
	merged = append(merged, oldest.children...)
	merged = append(merged, t.root.children[idx+1:]...)
	for _, c := range oldest.children {
		c.parent = t.root
	}
	t.root.children = merged

	// Keep the root's branch selection pointing along the current path.
	pathChild := t.current
	for pathChild.parent != t.root {
		pathChild = pathChild.parent
	}
	t.root.activeChild = t.root.childIndex(pathChild)

	oldest.parent = nil
	oldest.children = nil
	oldest.snapshot = nil // release pixel buffer immediately
	oldest.stroke = nil
	t.totalNodes--

	easel.Logger().Debug("history: folded oldest stroke into root",
		"node", oldest.id, "total", t.totalNodes)
	return true
}
