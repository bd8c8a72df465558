package history

import (
	"fmt"

	"github.com/gogpu/easel"
)

// Default budget settings. The snapshot interval deliberately does not
// default to 1: a snapshot per stroke is a full canvas copy per stroke
// and exhausts memory on large canvases.
const (
	DefaultMaxNodes         = 250
	DefaultSnapshotInterval = 25
)

// minMaxNodes is the smallest usable budget: the root plus the current
// node can never be trimmed, so a budget below 2 could never be met.
const minMaxNodes = 2

// Tree is the complete undo history for one canvas.
//
// Each open drawing owns its own Tree instance; there is no process
// global. All canvas side effects go through the easel.CanvasHost the
// tree was created with.
//
// The Tree is not safe for concurrent use, and navigation must not be
// invoked while a stroke is being recorded (the session package
// enforces this for interactive use).
type Tree struct {
	host easel.CanvasHost

	root    *Node
	current *Node

	nextID     NodeID
	totalNodes int

	maxNodes         int
	snapshotInterval int
}

// Option configures a Tree.
type Option func(*Tree)

// WithMaxNodes sets the node budget. Values below 2 are clamped.
func WithMaxNodes(n int) Option {
	return func(t *Tree) { t.maxNodes = clampMaxNodes(n) }
}

// WithSnapshotInterval sets how many strokes apart snapshots are taken
// along a path. Zero disables periodic snapshots entirely (every
// restore then replays from the root baseline).
func WithSnapshotInterval(n int) Option {
	return func(t *Tree) { t.snapshotInterval = clampInterval(n) }
}

// NewTree creates an empty history whose root represents the blank
// canvas. All canvas operations are pushed through host.
func NewTree(host easel.CanvasHost, opts ...Option) *Tree {
	t := &Tree{
		host:             host,
		maxNodes:         DefaultMaxNodes,
		snapshotInterval: DefaultSnapshotInterval,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()
	return t
}

// reset installs a fresh root and points current at it.
func (t *Tree) reset() {
	t.nextID++
	t.root = &Node{id: t.nextID, activeChild: -1}
	t.current = t.root
	t.totalNodes = 1
}

// RecordStroke appends a stroke to the history as a new child of the
// current node and moves the current cursor onto it. The stroke is
// assumed to already be rendered on the canvas; RecordStroke never
// repaints, it only records (and may capture a snapshot).
//
// Returns the new node's ID, or InvalidNode if the stroke is empty.
func (t *Tree) RecordStroke(stroke easel.StrokeData) NodeID {
	if stroke.IsEmpty() {
		easel.Logger().Warn("history: ignoring empty stroke")
		return InvalidNode
	}

	t.nextID++
	node := &Node{
		id:          t.nextID,
		timestamp:   stroke.StartTime,
		parent:      t.current,
		activeChild: -1,
		stroke:      &stroke,
	}

	t.current.children = append(t.current.children, node)
	t.current.activeChild = len(t.current.children) - 1
	t.current = node
	t.totalNodes++

	// Periodic snapshot for fast restoration. Captured synchronously:
	// the host must not return until the pixels are complete.
	if depth := node.Depth(); t.snapshotInterval > 0 && depth%t.snapshotInterval == 0 {
		node.snapshot = t.host.CaptureSnapshot()
		easel.Logger().Debug("history: captured snapshot",
			"node", node.id, "depth", depth)
	}

	t.enforceBudget()

	easel.Logger().Debug("history: recorded stroke",
		"node", node.id, "points", stroke.PointCount(), "total", t.totalNodes)
	return node.id
}

// Undo moves the current cursor to its parent and restores the canvas
// to that state. Returns false, with no state change, at the root.
func (t *Tree) Undo() bool {
	if t.current.parent == nil {
		return false
	}
	t.current = t.current.parent
	t.restoreTo(t.current)
	easel.Logger().Debug("history: undo", "node", t.current.id, "depth", t.current.Depth())
	return true
}

// Redo moves the current cursor to its active child branch and applies
// that one stroke onto the canvas. No full restore is needed: undo
// always leaves the canvas at the current node's state, so redo is a
// single incremental replay.
//
// Returns false, with no state change, when no branch is selected.
func (t *Tree) Redo() bool {
	idx := t.current.activeChild
	if idx < 0 || idx >= len(t.current.children) {
		return false
	}
	t.current = t.current.children[idx]
	t.applyStroke(t.current.stroke)
	easel.Logger().Debug("history: redo", "node", t.current.id,
		"branch", idx+1, "branches", t.current.parent.BranchCount())
	return true
}

// SwitchBranch selects which child branch of the current node a
// subsequent Redo will follow. The cursor does not move and the canvas
// is untouched. Returns false if the index is out of range.
func (t *Tree) SwitchBranch(index int) bool {
	if index < 0 || index >= len(t.current.children) {
		return false
	}
	t.current.activeChild = index
	return true
}

// RedoBranch selects the given branch and immediately redoes into it.
func (t *Tree) RedoBranch(index int) bool {
	if !t.SwitchBranch(index) {
		return false
	}
	return t.Redo()
}

// JumpTo navigates directly to the node with the given ID, restoring
// the canvas to its state. Branch selections along the root-to-target
// path are updated so that undo/redo afterwards walk the same path.
// Returns false if the ID does not resolve.
func (t *Tree) JumpTo(id NodeID) bool {
	target := t.Find(id)
	if target == nil {
		easel.Logger().Warn("history: jump to unknown node", "node", id)
		return false
	}
	if target == t.current {
		return true
	}

	t.restoreTo(target)
	t.current = target
	for n := target; n.parent != nil; n = n.parent {
		n.parent.activeChild = n.parent.childIndex(n)
	}
	easel.Logger().Debug("history: jumped", "node", id)
	return true
}

// RestoreCurrent re-renders the canvas to the current node's state.
// Sessions use this to wipe a cancelled stroke's pixels off the canvas.
func (t *Tree) RestoreCurrent() {
	t.restoreTo(t.current)
}

// CanUndo reports whether the current node has a parent.
func (t *Tree) CanUndo() bool {
	return t.current.parent != nil
}

// CanRedo reports whether a redo branch is selected on the current node.
func (t *Tree) CanRedo() bool {
	idx := t.current.activeChild
	return idx >= 0 && idx < len(t.current.children)
}

// BranchCount returns the number of redo branches at the current node.
func (t *Tree) BranchCount() int {
	return len(t.current.children)
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Current returns the node the history cursor is on.
func (t *Tree) Current() *Node { return t.current }

// CurrentID returns the ID of the current node.
func (t *Tree) CurrentID() NodeID { return t.current.id }

// CurrentDepth returns the depth of the current node (root = 0).
func (t *Tree) CurrentDepth() int { return t.current.Depth() }

// TotalNodes returns the number of live nodes including the root.
func (t *Tree) TotalNodes() int { return t.totalNodes }

// MaxNodes returns the node budget.
func (t *Tree) MaxNodes() int { return t.maxNodes }

// SetMaxNodes changes the node budget and immediately trims back under
// it. Values below 2 are clamped.
func (t *Tree) SetMaxNodes(n int) {
	t.maxNodes = clampMaxNodes(n)
	t.enforceBudget()
}

// SnapshotInterval returns the stroke count between snapshots.
func (t *Tree) SnapshotInterval() int { return t.snapshotInterval }

// SetSnapshotInterval changes how often snapshots are captured along a
// path. Zero disables periodic snapshots. Existing snapshots are kept.
func (t *Tree) SetSnapshotInterval(n int) {
	t.snapshotInterval = clampInterval(n)
}

// Find returns the node with the given ID, or nil.
func (t *Tree) Find(id NodeID) *Node {
	return findNode(t.root, id)
}

func findNode(n *Node, id NodeID) *Node {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if found := findNode(c, id); found != nil {
			return found
		}
	}
	return nil
}

// AllNodes returns every live node in preorder, root first.
// Useful for history visualizations.
func (t *Tree) AllNodes() []*Node {
	result := make([]*Node, 0, t.totalNodes)
	collectNodes(t.root, &result)
	return result
}

func collectNodes(n *Node, out *[]*Node) {
	*out = append(*out, n)
	for _, c := range n.children {
		collectNodes(c, out)
	}
}

// PathTo returns the chain of nodes from the root to node, inclusive.
func (t *Tree) PathTo(node *Node) []*Node {
	var path []*Node
	for n := node; n != nil; n = n.parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MemoryUsage returns the approximate total footprint of the tree:
// node overhead, stroke points, and snapshot pixel buffers.
func (t *Tree) MemoryUsage() uintptr {
	const nodeOverhead = 96
	var total uintptr
	for _, n := range t.AllNodes() {
		total += nodeOverhead
		if n.stroke != nil {
			total += n.stroke.ByteSize()
		}
		if n.snapshot != nil {
			total += n.snapshot.ByteSize()
		}
	}
	return total
}

// Clear discards all history and recreates an empty root. The canvas
// is left untouched; clearing pixels is the caller's decision.
func (t *Tree) Clear() {
	t.reset()
	easel.Logger().Info("history: cleared")
}

// Validate checks the structural invariants of the tree. It returns
// nil on a healthy tree and a descriptive error on the first violation
// found. Tests and debug builds call this after mutating operations;
// a non-nil result always indicates a bug in the engine.
func (t *Tree) Validate() error {
	if t.root == nil {
		return fmt.Errorf("history: tree has no root")
	}
	if t.root.parent != nil {
		return fmt.Errorf("history: root has a parent")
	}
	if t.root.stroke != nil {
		return fmt.Errorf("history: root carries a stroke")
	}

	count := 0
	currentSeen := false
	var walk func(n *Node) error
	walk = func(n *Node) error {
		count++
		if n == t.current {
			currentSeen = true
		}
		if n != t.root {
			if n.parent == nil {
				return fmt.Errorf("history: node %d has no parent", n.id)
			}
			if n.parent.childIndex(n) < 0 {
				return fmt.Errorf("history: node %d missing from its parent's children", n.id)
			}
			if n.stroke == nil {
				return fmt.Errorf("history: node %d has no stroke", n.id)
			}
		}
		if n.activeChild < -1 || n.activeChild >= len(n.children) {
			return fmt.Errorf("history: node %d active child %d out of range (%d children)",
				n.id, n.activeChild, len(n.children))
		}
		for _, c := range n.children {
			if c.parent != n {
				return fmt.Errorf("history: node %d has wrong parent link", c.id)
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root); err != nil {
		return err
	}

	if !currentSeen {
		return fmt.Errorf("history: current node %d unreachable from root", t.current.id)
	}
	if count != t.totalNodes {
		return fmt.Errorf("history: totalNodes = %d, counted %d", t.totalNodes, count)
	}
	return nil
}

func clampMaxNodes(n int) int {
	if n < minMaxNodes {
		return minMaxNodes
	}
	return n
}

func clampInterval(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
