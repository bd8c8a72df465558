package easel

import "image/color"

// RGBA is a color with components in the 0-1 range.
// Brush colors and canvas background colors use this representation;
// pixel buffers store the quantized 8-bit form.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates a fully opaque RGBA color.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Color converts to the standard library color type.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
	Paper       = RGBA{0.95, 0.95, 0.92, 1} // off-white default background
)

// quantize maps a 0-1 component to a 0-255 byte, clamping out-of-range values.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// unquantize maps a 0-255 byte back to the 0-1 range.
func unquantize(v uint8) float32 {
	return float32(v) / 255
}
