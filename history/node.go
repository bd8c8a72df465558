package history

import "github.com/gogpu/easel"

// NodeID uniquely identifies a node within one tree.
// IDs are monotonic and never reused, so a stale ID held by a UI layer
// (e.g. a history visualization) safely fails to resolve after trimming.
type NodeID uint64

// InvalidNode is returned by operations that did not create or find a node.
const InvalidNode NodeID = 0

// Node is a single point in the history tree. The root node represents
// the empty canvas and carries no stroke; every other node records
// exactly one stroke and owns at most one canvas snapshot.
type Node struct {
	id        NodeID
	timestamp uint64

	parent      *Node
	children    []*Node
	activeChild int // index into children, -1 when no branch is selected

	stroke   *easel.StrokeData
	snapshot *easel.CanvasSnapshot
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Timestamp returns when the node's stroke began, in milliseconds.
// The root's timestamp is zero.
func (n *Node) Timestamp() uint64 { return n.timestamp }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether the node is the tree's root.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// BranchCount returns the number of child branches.
func (n *Node) BranchCount() int { return len(n.children) }

// Child returns the i-th child branch, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// ActiveChild returns the index of the branch a redo would follow,
// or -1 when none is selected.
func (n *Node) ActiveChild() int { return n.activeChild }

// Stroke returns the stroke that created this state, nil for the root.
func (n *Node) Stroke() *easel.StrokeData { return n.stroke }

// HasSnapshot reports whether the node owns a canvas snapshot.
func (n *Node) HasSnapshot() bool { return n.snapshot != nil }

// Depth returns the node's distance from the root (root = 0).
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// childIndex returns the position of child in n's children, or -1.
func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
