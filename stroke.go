package easel

// StrokeData is the replayable record of a single committed stroke.
// It is the unit stored in undo history: the input samples, a frozen
// copy of the brush, and the random seed that drove any scatter or
// jitter while the stroke was drawn live.
//
// Replaying a StrokeData with its stored seed reproduces stamp
// placement and opacity bit-identically, no matter how many times it
// is replayed.
type StrokeData struct {
	// Points are the recorded input samples, in draw order.
	Points []StrokePoint

	// Brush is the full brush configuration at stroke begin.
	Brush BrushSettings

	// RandomSeed is fixed when the stroke begins and is the sole
	// source of stochastic behavior, live and on replay.
	RandomSeed uint32

	// StartTime is the absolute wall-clock time the stroke began,
	// in milliseconds.
	StartTime uint64
}

// IsEmpty reports whether the stroke has no recorded points.
func (s StrokeData) IsEmpty() bool {
	return len(s.Points) == 0
}

// PointCount returns the number of recorded samples.
func (s StrokeData) PointCount() int {
	return len(s.Points)
}

// Clone returns a deep copy of the stroke.
func (s StrokeData) Clone() StrokeData {
	out := s
	out.Points = make([]StrokePoint, len(s.Points))
	copy(out.Points, s.Points)
	return out
}

// ByteSize returns the approximate memory footprint of the stroke.
func (s StrokeData) ByteSize() uintptr {
	const pointSize = 4 + 4 + 4 + 8
	return uintptr(len(s.Points)) * pointSize
}
