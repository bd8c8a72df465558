package softcanvas

import (
	"math"

	"github.com/gogpu/easel"
)

// drawStamp rasterizes one stamp: a disc with hardness falloff, shaped
// by the optional shape mask and attenuated by the optional grain mask,
// blended source-over into the pixmap. Everything here is a pure
// function of its inputs; no randomness reaches this level.
func (c *Canvas) drawStamp(cx, cy, size, rotation, alpha float32) {
	b := &c.brush
	radius := size / 2
	if radius <= 0 {
		return
	}

	// Brush type tweaks. Marker paints a hard edge; watercolor thins
	// the pigment; crayon picks up paper grain even without a grain
	// texture selected.
	hardness := b.Hardness
	grainID := b.GrainTexture
	switch b.Type {
	case easel.BrushMarker:
		hardness = 1
	case easel.BrushWatercolor:
		alpha *= 0.45
	case easel.BrushCrayon:
		if grainID == 0 {
			grainID = 1
		}
	}

	sin, cos := math.Sincos(float64(rotation))
	sinR, cosR := float32(sin), float32(cos)

	minX := int(math.Floor(float64(cx - radius)))
	maxX := int(math.Ceil(float64(cx + radius)))
	minY := int(math.Floor(float64(cy - radius)))
	maxY := int(math.Ceil(float64(cy + radius)))

	w, h := c.pixmap.Width(), c.pixmap.Height()
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := (float32(px) + 0.5 - cx) / radius
			dy := (float32(py) + 0.5 - cy) / radius
			r := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if r > 1 {
				continue
			}

			coverage := falloff(r, hardness)
			if coverage <= 0 {
				continue
			}

			if b.ShapeTexture != 0 {
				// Rotate into stamp space before sampling the mask.
				u := dx*cosR + dy*sinR
				v := -dx*sinR + dy*cosR
				m := shapeMask(b.ShapeTexture, u, v)
				if b.ShapeInverted {
					m = 1 - m
				}
				coverage *= m
			}

			if grainID != 0 {
				gx := float32(px)
				gy := float32(py)
				if b.GrainMoving {
					gx -= cx
					gy -= cy
				}
				scale := b.GrainScale
				if scale <= 0 {
					scale = 1
				}
				coverage *= grainMask(grainID, gx/scale, gy/scale)
			}

			a := alpha * coverage
			if a <= 0 {
				continue
			}
			c.blendPixel(px, py, b.Color, a)
		}
	}
}

// falloff maps normalized distance r (0 at center, 1 at rim) to
// coverage under the given edge hardness. Hardness 1 is a step at the
// rim; hardness 0 is a smooth quadratic fade across the whole radius.
func falloff(r, hardness float32) float32 {
	if r >= 1 {
		return 0
	}
	if hardness >= 1 {
		return 1
	}
	// The hard core extends to the hardness fraction of the radius;
	// beyond it coverage eases down to zero at the rim.
	if r <= hardness {
		return 1
	}
	t := (r - hardness) / (1 - hardness)
	return (1 - t) * (1 - t)
}

// blendPixel composites the brush color over the canvas at (x, y) with
// the given alpha, in straight (non-premultiplied) form.
func (c *Canvas) blendPixel(x, y int, color easel.RGBA, alpha float32) {
	dst := c.pixmap.GetPixel(x, y)
	srcA := color.A * alpha
	outA := srcA + dst.A*(1-srcA)
	if outA <= 0 {
		c.pixmap.SetPixel(x, y, easel.Transparent)
		return
	}
	out := easel.RGBA{
		R: (color.R*srcA + dst.R*dst.A*(1-srcA)) / outA,
		G: (color.G*srcA + dst.G*dst.A*(1-srcA)) / outA,
		B: (color.B*srcA + dst.B*dst.A*(1-srcA)) / outA,
		A: outA,
	}
	c.pixmap.SetPixel(x, y, out)
}
