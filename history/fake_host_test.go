package history

import (
	"fmt"

	"github.com/gogpu/easel"
)

// fakeHost is an in-memory CanvasHost for engine tests. Instead of
// rasterizing, it models the canvas as the ordered list of stroke
// signatures applied since the last baseline, which makes "the canvas
// matches state X" assertions exact without any pixels.
type fakeHost struct {
	canvas []string // applied stroke signatures since baseline
	brush  easel.BrushSettings
	seed   uint32

	strokePoints []easel.StrokePoint

	// snapshots maps captured snapshots back to the canvas state they
	// were taken from.
	snapshots map[*easel.CanvasSnapshot][]string

	captures int
	restores int
	clears   int
	applied  []appliedStroke
}

// appliedStroke records how one stroke arrived through the callbacks.
type appliedStroke struct {
	seed   uint32
	brush  easel.BrushSettings
	points int
}

func newFakeHost() *fakeHost {
	return &fakeHost{snapshots: make(map[*easel.CanvasSnapshot][]string)}
}

func (h *fakeHost) BeginStroke(x, y, pressure float32) {
	h.strokePoints = h.strokePoints[:0]
	h.strokePoints = append(h.strokePoints, easel.Pt(x, y, pressure))
}

func (h *fakeHost) AddStrokePoint(x, y, pressure float32) {
	h.strokePoints = append(h.strokePoints, easel.Pt(x, y, pressure))
}

func (h *fakeHost) EndStroke() {
	sig := fmt.Sprintf("seed=%d points=%d size=%g", h.seed, len(h.strokePoints), h.brush.Size)
	h.canvas = append(h.canvas, sig)
	h.applied = append(h.applied, appliedStroke{
		seed:   h.seed,
		brush:  h.brush,
		points: len(h.strokePoints),
	})
}

func (h *fakeHost) CaptureSnapshot() *easel.CanvasSnapshot {
	snap := easel.NewCanvasSnapshot(make([]uint8, 4), 1, 1)
	state := make([]string, len(h.canvas))
	copy(state, h.canvas)
	h.snapshots[snap] = state
	h.captures++
	return snap
}

func (h *fakeHost) RestoreSnapshot(snap *easel.CanvasSnapshot) {
	state, ok := h.snapshots[snap]
	if !ok {
		panic("fakeHost: restore of unknown snapshot")
	}
	h.canvas = append(h.canvas[:0], state...)
	h.restores++
}

func (h *fakeHost) ClearCanvas() {
	h.canvas = h.canvas[:0]
	h.clears++
}

func (h *fakeHost) SetBrush(settings easel.BrushSettings) {
	h.brush = settings
}

func (h *fakeHost) SetRandomSeed(seed uint32) {
	h.seed = seed
}

// state returns a copy of the modeled canvas contents.
func (h *fakeHost) state() []string {
	out := make([]string, len(h.canvas))
	copy(out, h.canvas)
	return out
}

// drawLive simulates the live render the caller performs before
// RecordStroke: the stroke is pushed through the same callback path a
// replay would use.
func (h *fakeHost) drawLive(stroke easel.StrokeData) {
	h.SetRandomSeed(stroke.RandomSeed)
	h.SetBrush(stroke.Brush)
	h.BeginStroke(stroke.Points[0].X, stroke.Points[0].Y, stroke.Points[0].Pressure)
	for _, p := range stroke.Points[1:] {
		h.AddStrokePoint(p.X, p.Y, p.Pressure)
	}
	h.EndStroke()
}

// testStroke builds a distinct stroke; seq doubles as seed, timestamp,
// and a coordinate offset so signatures and trim ordering are unique.
func testStroke(seq int, points int) easel.StrokeData {
	if points < 1 {
		points = 1
	}
	pts := make([]easel.StrokePoint, points)
	for i := range pts {
		pts[i] = easel.StrokePoint{
			X:         float32(seq*10 + i),
			Y:         float32(seq * 5),
			Pressure:  1,
			Timestamp: uint64(i * 8),
		}
	}
	return easel.StrokeData{
		Points:     pts,
		Brush:      easel.DefaultBrush().WithSize(float32(10 + seq)),
		RandomSeed: uint32(1000 + seq),
		StartTime:  uint64(seq),
	}
}

// record draws the stroke live and commits it, the way the session
// layer does during interactive drawing.
func record(t *Tree, h *fakeHost, seq int) NodeID {
	stroke := testStroke(seq, 4)
	h.drawLive(stroke)
	return t.RecordStroke(stroke)
}
