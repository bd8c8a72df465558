package softcanvas

import (
	"math"

	"github.com/gogpu/easel/internal/detrand"
)

// Procedural shape and grain masks. Real brush textures are imported
// image assets; the software host synthesizes equivalents from the
// texture id alone so rendering stays a pure function of the recorded
// stroke data. Both masks return coverage in [0, 1].

// shapeMask samples the stamp shape for a texture id at stamp-space
// coordinates u, v in [-1, 1]. Id 0 never reaches here (plain disc).
func shapeMask(id int32, u, v float32) float32 {
	switch id {
	case 1: // square nib
		if abs(u) <= 0.8 && abs(v) <= 0.8 {
			return 1
		}
		return 0
	case 2: // horizontal bristle streaks
		s := float32(math.Sin(float64(v) * 14))
		return clamp01(0.35 + 0.65*s*s)
	case 3: // torn splotch: disc eroded by value noise
		n := valueNoise(uint32(id)*0x9E37, (u+1)*4, (v+1)*4)
		return clamp01(n*1.6 - 0.3)
	default: // unknown ids degrade to a soft blob rather than failing
		n := valueNoise(uint32(id), (u+1)*3, (v+1)*3)
		return clamp01(n)
	}
}

// grainMask samples paper grain for a texture id at canvas coordinates.
func grainMask(id int32, x, y float32) float32 {
	n := valueNoise(uint32(id)*0x85EB, x/6, y/6)
	fine := valueNoise(uint32(id)*0xC2B2, x/1.7, y/1.7)
	return clamp01(0.45 + 0.4*n + 0.3*fine)
}

// valueNoise is bilinear-interpolated lattice noise built on the same
// counter hash the stamp PRNG uses, so it is deterministic everywhere.
func valueNoise(seed uint32, x, y float32) float32 {
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	fx := x - float32(x0)
	fy := y - float32(y0)

	// Smoothstep the lattice fractions.
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)

	v00 := lattice(seed, x0, y0)
	v10 := lattice(seed, x0+1, y0)
	v01 := lattice(seed, x0, y0+1)
	v11 := lattice(seed, x0+1, y0+1)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

// lattice hashes an integer lattice coordinate to [0, 1).
func lattice(seed uint32, x, y int32) float32 {
	return detrand.Unit(seed, uint32(x)*0x1F123BB5^uint32(y)*0x05491333)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
