package easel

// CanvasHost is the callback surface the history engine requires from
// the renderer that owns the canvas. The engine pushes strokes and
// snapshot operations through this interface; it never touches pixels
// itself.
//
// Hosts are created via the registry using NewHost(name, w, h) and
// registered via RegisterHost in their init() functions. The softcanvas
// package registers the deterministic software renderer under "soft".
//
// # Implementation Contract
//
// Each host must:
//  1. Execute all calls on the thread that owns the canvas. The engine
//     is single-threaded and cooperative; it provides no locking.
//  2. Copy pixels on CaptureSnapshot and RestoreSnapshot, never alias
//     the live canvas buffer into a snapshot.
//  3. Reset its per-stroke render cursor in BeginStroke, so that live
//     incremental rendering and one-shot replay share the same path
//     and each point is rendered exactly once.
//  4. Derive all stochastic stamp behavior from the seed given to
//     SetRandomSeed, consumed in a fixed order per stamp.
type CanvasHost interface {
	// Stroke rendering

	// BeginStroke starts a new stroke at the given position.
	// Any per-stroke state (render cursor, spacing residual, PRNG
	// counter) is reset here.
	BeginStroke(x, y, pressure float32)

	// AddStrokePoint extends the current stroke by one sample.
	AddStrokePoint(x, y, pressure float32)

	// EndStroke commits the current stroke to the canvas.
	EndStroke()

	// Canvas state

	// CaptureSnapshot returns a full RGBA copy of the current canvas.
	// It may block on a GPU readback; it must not return before the
	// pixels are complete.
	CaptureSnapshot() *CanvasSnapshot

	// RestoreSnapshot blits the snapshot back as the new canvas contents.
	RestoreSnapshot(snap *CanvasSnapshot)

	// ClearCanvas resets the canvas to the background color.
	ClearCanvas()

	// Replay configuration

	// SetBrush applies the full brush settings, including textures and
	// the shape-inverted flag, before a replayed stroke begins.
	SetBrush(settings BrushSettings)

	// SetRandomSeed seeds the host's deterministic stamp PRNG and
	// resets its draw counter.
	SetRandomSeed(seed uint32)
}
