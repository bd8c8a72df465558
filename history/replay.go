package history

import "github.com/gogpu/easel"

// Replay reconstructs canvas state at an arbitrary node. The strategy:
// restore the nearest ancestor snapshot (or clear to the empty-canvas
// baseline at the root), then deterministically re-execute every stroke
// between that ancestor and the target. Determinism rests on two host
// guarantees: the per-stroke random seed is honored, and the host's
// render cursor resets at BeginStroke so each point paints exactly once.

// restoreTo makes the visible canvas match the historical state of target.
func (t *Tree) restoreTo(target *Node) {
	base := nearestSnapshotAncestor(target)
	if base != nil {
		t.host.RestoreSnapshot(base.snapshot)
	} else {
		// No snapshot above the target: the root is the implicit
		// empty-canvas baseline.
		t.host.ClearCanvas()
		base = t.root
	}

	if base == target {
		return
	}

	// Collect nodes strictly between base and target, inclusive of
	// target, then replay them in root-to-leaf order.
	var chain []*Node
	for n := target; n != nil && n != base; n = n.parent {
		chain = append(chain, n)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		t.applyStroke(chain[i].stroke)
	}

	easel.Logger().Debug("history: restored",
		"node", target.id, "replayed", len(chain), "fromSnapshot", base.snapshot != nil)
}

// applyStroke replays one recorded stroke through the host callbacks.
// The full brush settings and the stroke's own seed are applied first,
// so scatter and jitter land exactly where they did live.
func (t *Tree) applyStroke(stroke *easel.StrokeData) {
	if stroke == nil || stroke.IsEmpty() {
		return
	}
	t.host.SetRandomSeed(stroke.RandomSeed)
	t.host.SetBrush(stroke.Brush)

	first := stroke.Points[0]
	t.host.BeginStroke(first.X, first.Y, first.Pressure)
	for _, p := range stroke.Points[1:] {
		t.host.AddStrokePoint(p.X, p.Y, p.Pressure)
	}
	t.host.EndStroke()
}

// nearestSnapshotAncestor walks from node toward the root, inclusive of
// node itself, and returns the first node owning a snapshot, or nil.
func nearestSnapshotAncestor(node *Node) *Node {
	for n := node; n != nil; n = n.parent {
		if n.snapshot != nil {
			return n
		}
	}
	return nil
}
