package easel

import "math"

// StrokePoint is a single timestamped input sample within a stroke.
// Points are immutable once recorded.
type StrokePoint struct {
	// X, Y are canvas coordinates in pixels.
	X, Y float32

	// Pressure is the input pressure in the 0-1 range.
	// Mouse input records a constant 1.0.
	Pressure float32

	// Timestamp is milliseconds since the start of the stroke.
	Timestamp uint64
}

// Pt is a convenience constructor for a StrokePoint without timing.
func Pt(x, y, pressure float32) StrokePoint {
	return StrokePoint{X: x, Y: y, Pressure: pressure}
}

// Dist returns the euclidean distance to another point.
func (p StrokePoint) Dist(q StrokePoint) float32 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return float32(math.Hypot(dx, dy))
}

// Lerp interpolates position and pressure between two points.
// The timestamp is interpolated as well so that replay-driven animation
// keeps sample timing consistent.
func (p StrokePoint) Lerp(q StrokePoint, t float32) StrokePoint {
	return StrokePoint{
		X:         p.X + (q.X-p.X)*t,
		Y:         p.Y + (q.Y-p.Y)*t,
		Pressure:  p.Pressure + (q.Pressure-p.Pressure)*t,
		Timestamp: p.Timestamp + uint64(float32(q.Timestamp-p.Timestamp)*t),
	}
}
