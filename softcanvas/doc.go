// Package softcanvas is a pure-software canvas host: a deterministic,
// stamp-based stroke rasterizer over an RGBA pixel buffer.
//
// It implements easel.CanvasHost, so the history engine can drive it
// exactly like a GPU renderer, and it is the reference for the replay
// determinism contract: given the same brush, seed, and input points,
// the rendered pixels are bit-identical on every run. That property is
// what lets undo/redo reconstruct canvas states by replaying strokes.
//
// Strokes are rendered Procreate-style as a chain of circular stamps
// spaced along the input polyline. Pressure scales stamp size and
// opacity; scatter and jitter are driven by a counter-based hash of the
// stroke seed, consumed in a fixed order per stamp.
//
// The package registers itself with the easel host registry under the
// name "soft":
//
//	import _ "github.com/gogpu/easel/softcanvas"
//
//	host, err := easel.NewHost("soft", 1024, 768)
package softcanvas
