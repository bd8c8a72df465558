package history

import (
	"reflect"
	"testing"
)

func TestRestoreUsesNearestSnapshot(t *testing.T) {
	host := newFakeHost()
	tree := NewTree(host, WithSnapshotInterval(2))

	for i := 1; i <= 5; i++ {
		record(tree, host, i)
	}
	// Snapshots sit at depths 2 and 4. Undoing from depth 5 lands on
	// depth 4, which has its own snapshot: restore, zero replays.
	applied := len(host.applied)
	restores := host.restores
	if !tree.Undo() {
		t.Fatal("Undo failed")
	}
	if host.restores != restores+1 {
		t.Error("restore did not use the snapshot")
	}
	if len(host.applied) != applied {
		t.Errorf("replayed %d strokes, want 0", len(host.applied)-applied)
	}

	// Undoing to depth 3 restores the depth-2 snapshot and replays one.
	applied = len(host.applied)
	if !tree.Undo() {
		t.Fatal("Undo failed")
	}
	if len(host.applied) != applied+1 {
		t.Errorf("replayed %d strokes, want 1", len(host.applied)-applied)
	}
}

func TestRestoreFallsBackToEmptyBaseline(t *testing.T) {
	host := newFakeHost()
	tree := NewTree(host, WithSnapshotInterval(0))

	record(tree, host, 1)
	record(tree, host, 2)
	record(tree, host, 3)

	clears := host.clears
	applied := len(host.applied)
	if !tree.Undo() {
		t.Fatal("Undo failed")
	}
	// No snapshots anywhere: clear to baseline, replay both remaining
	// strokes from the root.
	if host.clears != clears+1 {
		t.Error("restore did not clear to the empty baseline")
	}
	if len(host.applied) != applied+2 {
		t.Errorf("replayed %d strokes, want 2", len(host.applied)-applied)
	}
}

func TestReplayHonorsSeedAndBrush(t *testing.T) {
	host := newFakeHost()
	tree := NewTree(host, WithSnapshotInterval(0))

	strokes := []int{1, 2, 3}
	for _, seq := range strokes {
		stroke := testStroke(seq, 5)
		host.drawLive(stroke)
		tree.RecordStroke(stroke)
	}

	host.applied = nil
	tree.Undo() // replays strokes 1 and 2 from the baseline

	if len(host.applied) != 2 {
		t.Fatalf("replayed %d strokes, want 2", len(host.applied))
	}
	for i, got := range host.applied {
		want := testStroke(strokes[i], 5)
		if got.seed != want.RandomSeed {
			t.Errorf("replay %d used seed %d, want %d", i, got.seed, want.RandomSeed)
		}
		if !reflect.DeepEqual(got.brush, want.Brush) {
			t.Errorf("replay %d brush = %+v, want %+v", i, got.brush, want.Brush)
		}
	}
}

func TestReplayRendersEachPointOnce(t *testing.T) {
	host := newFakeHost()
	tree := NewTree(host, WithSnapshotInterval(0))

	const points = 7
	stroke := testStroke(1, points)
	host.drawLive(stroke)
	tree.RecordStroke(stroke)
	record(tree, host, 2)

	host.applied = nil
	tree.Undo() // replays the 7-point stroke

	if len(host.applied) != 1 {
		t.Fatalf("replayed %d strokes, want 1", len(host.applied))
	}
	if host.applied[0].points != points {
		t.Errorf("replay rendered %d points, want exactly %d", host.applied[0].points, points)
	}
}

func TestReplayDeterministicAcrossRepeats(t *testing.T) {
	host := newFakeHost()
	tree := NewTree(host, WithSnapshotInterval(0))

	// A scatter/jitter brush: determinism must hold regardless.
	stroke := testStroke(1, 6)
	stroke.Brush = stroke.Brush.WithScatter(0.5).WithJitter(0.3, 0.2)
	host.drawLive(stroke)
	tree.RecordStroke(stroke)
	record(tree, host, 2)

	tree.Undo()
	first := host.state()
	tree.Redo()
	tree.Undo()
	second := host.state()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two replays diverged:\n%v\n%v", first, second)
	}
}
