package easel

// BrushType selects the stamp style used when rendering a stroke.
type BrushType int

// Supported brush types.
const (
	BrushRound BrushType = iota
	BrushCrayon
	BrushWatercolor
	BrushMarker
)

// String returns the brush type name.
func (t BrushType) String() string {
	switch t {
	case BrushRound:
		return "round"
	case BrushCrayon:
		return "crayon"
	case BrushWatercolor:
		return "watercolor"
	case BrushMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// BrushSettings is a complete description of how a stroke is painted.
// A copy of the settings is frozen into every recorded stroke so that
// replay uses exactly the brush the user drew with, regardless of what
// the live brush has been changed to since.
//
// All stochastic fields (scatter, the jitter amounts) are driven by the
// per-stroke random seed, never by a shared PRNG, so two replays of the
// same stroke are bit-identical.
type BrushSettings struct {
	// Type selects the stamp style.
	Type BrushType

	// Size is the brush diameter in pixels.
	Size float32

	// Hardness controls the edge falloff: 0 = soft, 1 = hard.
	Hardness float32

	// Opacity is the overall stroke opacity in the 0-1 range.
	Opacity float32

	// Spacing is the distance between stamps as a fraction of Size.
	Spacing float32

	// Flow scales the per-stamp alpha, independent of Opacity.
	Flow float32

	// Color is the paint color.
	Color RGBA

	// ShapeTexture identifies the stamp shape mask, 0 for a plain disc.
	ShapeTexture int32

	// GrainTexture identifies the paper grain mask, 0 for none.
	GrainTexture int32

	// GrainScale scales grain sampling frequency.
	GrainScale float32

	// GrainMoving makes the grain travel with the stamp instead of
	// staying fixed to the canvas.
	GrainMoving bool

	// ShapeInverted flips the shape mask: when set, black areas of the
	// mask are opaque instead of white areas.
	ShapeInverted bool

	// Rotation is the base stamp rotation in radians.
	Rotation float32

	// RotationJitter randomizes per-stamp rotation, in radians.
	RotationJitter float32

	// Scatter randomly offsets stamps perpendicular to the stroke,
	// as a fraction of Size.
	Scatter float32

	// SizePressure is how strongly pressure scales the stamp size (0-1).
	SizePressure float32

	// OpacityPressure is how strongly pressure scales stamp opacity (0-1).
	OpacityPressure float32

	// SizeJitter randomizes per-stamp size, as a fraction of Size.
	SizeJitter float32

	// OpacityJitter randomizes per-stamp opacity (0-1).
	OpacityJitter float32
}

// DefaultBrush returns a soft round brush with conventional defaults.
func DefaultBrush() BrushSettings {
	return BrushSettings{
		Type:         BrushRound,
		Size:         20,
		Hardness:     0,
		Opacity:      1,
		Spacing:      0.15,
		Flow:         1,
		Color:        Black,
		GrainScale:   1,
		GrainMoving:  true,
		SizePressure: 1,
	}
}

// WithSize returns a copy of the settings with the given diameter.
func (b BrushSettings) WithSize(size float32) BrushSettings {
	b.Size = size
	return b
}

// WithOpacity returns a copy of the settings with the given opacity.
func (b BrushSettings) WithOpacity(opacity float32) BrushSettings {
	b.Opacity = opacity
	return b
}

// WithHardness returns a copy of the settings with the given edge hardness.
func (b BrushSettings) WithHardness(hardness float32) BrushSettings {
	b.Hardness = hardness
	return b
}

// WithColor returns a copy of the settings with the given paint color.
func (b BrushSettings) WithColor(c RGBA) BrushSettings {
	b.Color = c
	return b
}

// WithScatter returns a copy of the settings with the given scatter amount.
func (b BrushSettings) WithScatter(scatter float32) BrushSettings {
	b.Scatter = scatter
	return b
}

// WithJitter returns a copy of the settings with size and opacity jitter.
func (b BrushSettings) WithJitter(size, opacity float32) BrushSettings {
	b.SizeJitter = size
	b.OpacityJitter = opacity
	return b
}

// WithTextures returns a copy of the settings with shape and grain texture ids.
func (b BrushSettings) WithTextures(shape, grain int32) BrushSettings {
	b.ShapeTexture = shape
	b.GrainTexture = grain
	return b
}

// IsStochastic reports whether the brush consumes random values per stamp.
// Deterministic brushes skip the PRNG entirely, which keeps the render
// path identical between live drawing and replay either way.
func (b BrushSettings) IsStochastic() bool {
	return b.Scatter != 0 || b.RotationJitter != 0 || b.SizeJitter != 0 || b.OpacityJitter != 0
}
