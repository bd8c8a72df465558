package session

import (
	"bytes"
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/history"
	"github.com/gogpu/easel/softcanvas"
)

func newTestProject(t *testing.T, opts ...Option) (*Project, *softcanvas.Canvas) {
	t.Helper()
	canvas := softcanvas.New(96, 96)
	opts = append(opts, WithRecorderOptions(
		easel.WithSeedSource(func() uint32 { return 1234 }),
		easel.WithClock(func() uint64 { return 0 }),
	))
	return NewProject("test", 96, 96, canvas, opts...), canvas
}

func drag(p *Project, x0, y0, x1, y1 float32) history.NodeID {
	p.PointerDown(x0, y0, 0.8)
	p.PointerMove((x0+x1)/2, (y0+y1)/2, 1.0)
	return p.PointerUp(x1, y1, 0.6)
}

func TestProjectIdentity(t *testing.T) {
	p, _ := newTestProject(t)
	q, _ := newTestProject(t)

	if p.ID() == q.ID() {
		t.Error("two projects share an ID")
	}
	if p.Name() != "test" || p.Width() != 96 || p.Height() != 96 {
		t.Errorf("project metadata wrong: %q %dx%d", p.Name(), p.Width(), p.Height())
	}
	if p.CreatedAt().IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestPointerSequenceRecordsStroke(t *testing.T) {
	p, canvas := newTestProject(t)

	blank := append([]uint8(nil), canvas.Pixmap().Data()...)
	id := drag(p, 10, 10, 60, 60)
	if id == history.InvalidNode {
		t.Fatal("PointerUp did not record a stroke")
	}
	if p.History().TotalNodes() != 2 {
		t.Errorf("TotalNodes = %d, want 2", p.History().TotalNodes())
	}
	if bytes.Equal(blank, canvas.Pixmap().Data()) {
		t.Error("live drawing painted nothing")
	}
	if p.Drawing() {
		t.Error("still drawing after PointerUp")
	}
}

func TestLiveDrawMatchesReplay(t *testing.T) {
	// The whole design hinges on this: what the pointer painted live is
	// exactly what the history engine reproduces on undo+redo.
	p, canvas := newTestProject(t, WithBrush(
		easel.DefaultBrush().WithSize(14).WithScatter(0.5).WithJitter(0.3, 0.2)))

	drag(p, 12, 20, 70, 50)
	want := append([]uint8(nil), canvas.Pixmap().Data()...)

	if !p.Undo() {
		t.Fatal("Undo failed")
	}
	if !p.Redo() {
		t.Fatal("Redo failed")
	}
	if !bytes.Equal(want, canvas.Pixmap().Data()) {
		t.Error("replayed stroke differs from the live stroke")
	}
}

func TestNavigationRejectedWhileDrawing(t *testing.T) {
	p, _ := newTestProject(t)
	drag(p, 10, 10, 40, 40)

	p.PointerDown(50, 50, 1.0)
	if p.Undo() {
		t.Error("Undo succeeded mid-stroke")
	}
	if p.Redo() {
		t.Error("Redo succeeded mid-stroke")
	}
	if p.SwitchBranch(0) {
		t.Error("SwitchBranch succeeded mid-stroke")
	}
	if p.CanUndo() || p.CanRedo() {
		t.Error("CanUndo/CanRedo true mid-stroke")
	}
	p.PointerUp(60, 60, 0.5)

	if !p.CanUndo() {
		t.Error("CanUndo false after stroke finished")
	}
}

func TestCancelStrokeRestoresCanvas(t *testing.T) {
	p, canvas := newTestProject(t)
	drag(p, 10, 10, 40, 40)
	want := append([]uint8(nil), canvas.Pixmap().Data()...)

	p.PointerDown(60, 20, 1.0)
	p.PointerMove(70, 70, 1.0)
	p.CancelStroke()

	if p.Drawing() {
		t.Error("still drawing after cancel")
	}
	if p.History().TotalNodes() != 2 {
		t.Errorf("cancelled stroke was recorded: %d nodes", p.History().TotalNodes())
	}
	if !bytes.Equal(want, canvas.Pixmap().Data()) {
		t.Error("cancel did not wipe the abandoned paint")
	}
}

func TestBrushChangeDoesNotAffectActiveStroke(t *testing.T) {
	p, canvas := newTestProject(t)

	p.PointerDown(10, 48, 1.0)
	p.SetBrush(easel.DefaultBrush().WithSize(40).WithColor(easel.RGB(1, 0, 0)))
	p.PointerMove(48, 48, 1.0)
	p.PointerUp(86, 48, 1.0)
	want := append([]uint8(nil), canvas.Pixmap().Data()...)

	// Replay must reproduce the stroke with the settings it began with.
	p.Undo()
	p.Redo()
	if !bytes.Equal(want, canvas.Pixmap().Data()) {
		t.Error("brush change mid-stroke broke replay")
	}
}

func TestPointerMoveWithoutDownIsIgnored(t *testing.T) {
	p, canvas := newTestProject(t)
	blank := append([]uint8(nil), canvas.Pixmap().Data()...)

	p.PointerMove(30, 30, 1.0)
	if id := p.PointerUp(40, 40, 1.0); id != history.InvalidNode {
		t.Error("PointerUp without PointerDown recorded a stroke")
	}
	if !bytes.Equal(blank, canvas.Pixmap().Data()) {
		t.Error("orphan pointer events painted")
	}
}
