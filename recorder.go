package easel

import (
	"math/rand/v2"
	"time"
)

// StrokeRecorder accumulates timestamped input samples into a single
// stroke while the user is actively drawing. It owns the deterministic
// seed for that stroke: the seed is fixed at Begin and never recomputed,
// so the live render and every later replay draw from the same random
// sequence.
//
// The recorder only records; rendering happens in the CanvasHost. The
// caller forwards each input sample to both, and passes the recorder's
// seed to the host before the stroke starts:
//
//	rec.Begin(brush, x, y, p)
//	host.SetRandomSeed(rec.Seed())
//	host.SetBrush(brush)
//	host.BeginStroke(x, y, p)
//
// The StrokeRecorder is not safe for concurrent use.
type StrokeRecorder struct {
	points    []StrokePoint
	brush     BrushSettings
	seed      uint32
	startTime uint64
	active    bool

	seedSource func() uint32
	clock      func() uint64
}

// RecorderOption configures a StrokeRecorder.
type RecorderOption func(*StrokeRecorder)

// WithSeedSource overrides how per-stroke seeds are generated.
// Tests use this to make recorded strokes fully reproducible.
func WithSeedSource(src func() uint32) RecorderOption {
	return func(r *StrokeRecorder) { r.seedSource = src }
}

// WithClock overrides the wall-clock used for stroke timestamps.
// The clock returns milliseconds.
func WithClock(clock func() uint64) RecorderOption {
	return func(r *StrokeRecorder) { r.clock = clock }
}

// NewStrokeRecorder creates a recorder ready for its first stroke.
func NewStrokeRecorder(opts ...RecorderOption) *StrokeRecorder {
	r := &StrokeRecorder{
		seedSource: rand.Uint32,
		clock: func() uint64 {
			return uint64(time.Now().UnixMilli())
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin starts recording a new stroke with a frozen copy of the brush
// settings and a freshly drawn seed. The first sample carries
// timestamp 0; all later samples are relative to it.
// Beginning while a stroke is active discards the unfinished stroke.
func (r *StrokeRecorder) Begin(brush BrushSettings, x, y, pressure float32) {
	if r.active {
		Logger().Warn("recorder: Begin while a stroke is active, discarding unfinished stroke",
			"points", len(r.points))
	}
	r.points = r.points[:0]
	r.brush = brush
	r.seed = r.seedSource()
	r.startTime = r.clock()
	r.active = true
	r.points = append(r.points, StrokePoint{X: x, Y: y, Pressure: pressure})
}

// Add appends one input sample to the active stroke.
// Samples arriving while no stroke is active are dropped.
func (r *StrokeRecorder) Add(x, y, pressure float32) {
	if !r.active {
		return
	}
	r.points = append(r.points, StrokePoint{
		X:         x,
		Y:         y,
		Pressure:  pressure,
		Timestamp: r.clock() - r.startTime,
	})
}

// Finish ends the stroke and returns the recorded data.
// The returned StrokeData owns its own point slice; the recorder can
// immediately begin the next stroke.
func (r *StrokeRecorder) Finish() StrokeData {
	points := make([]StrokePoint, len(r.points))
	copy(points, r.points)
	r.active = false
	return StrokeData{
		Points:     points,
		Brush:      r.brush,
		RandomSeed: r.seed,
		StartTime:  r.startTime,
	}
}

// Cancel discards the active stroke without producing data.
func (r *StrokeRecorder) Cancel() {
	r.points = r.points[:0]
	r.active = false
}

// Active reports whether a stroke is currently being recorded.
func (r *StrokeRecorder) Active() bool {
	return r.active
}

// Seed returns the random seed of the active (or last) stroke.
func (r *StrokeRecorder) Seed() uint32 {
	return r.seed
}

// PointCount returns the number of samples recorded so far.
func (r *StrokeRecorder) PointCount() int {
	return len(r.points)
}
