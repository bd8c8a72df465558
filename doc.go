// Package easel provides the core data model for a stroke-based raster
// drawing engine with branching undo history.
//
// # Overview
//
// easel is the shared vocabulary between the pieces of a drawing
// application: recorded stroke data, brush settings, canvas pixel
// buffers, and the CanvasHost callback surface a renderer must provide.
// The history engine itself lives in the history subpackage; a
// deterministic software renderer lives in softcanvas.
//
// # Quick Start
//
//	host := softcanvas.New(512, 512)
//	tree := history.NewTree(host)
//
//	rec := easel.NewStrokeRecorder()
//	rec.Begin(easel.DefaultBrush(), 100, 100, 1.0)
//	rec.Add(180, 140, 0.9)
//	tree.RecordStroke(rec.Finish())
//
//	tree.Undo() // canvas restored to the empty baseline
//	tree.Redo() // stroke replayed, pixel-identical
//
// # Architecture
//
// The library is organized into:
//   - Public API: StrokeData, BrushSettings, CanvasSnapshot, CanvasHost
//   - history: branching undo tree, replay engine, node budget trimming
//   - softcanvas: deterministic stamp rasterizer (CanvasHost over a Pixmap)
//   - session: per-project ownership of canvas + history + recorder
//   - export: PNG and PDF output of canvas snapshots
//
// # Determinism
//
// Every stochastic brush behavior (scatter, jitter) is driven by a pure
// counter-based hash seeded per stroke. Replaying a recorded stroke with
// its stored seed reproduces stamp placement and opacity bit-identically,
// which is what makes snapshot-plus-replay history restoration sound.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package easel

// Version is the current version of the library.
const Version = "0.1.0"
