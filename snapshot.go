package easel

import "image"

// CanvasSnapshot is a full-canvas copy of RGBA8 pixels, captured by a
// CanvasHost on demand. Each snapshot is exclusively owned by the undo
// node that holds it; hosts must copy on capture and on restore, never
// alias the live canvas buffer.
type CanvasSnapshot struct {
	pixels []uint8
	width  int
	height int
}

// NewCanvasSnapshot copies the given RGBA pixel data into a snapshot.
// The data length must be width*height*4; NewCanvasSnapshot panics
// otherwise, since a short buffer means the capture itself is broken.
func NewCanvasSnapshot(pixels []uint8, width, height int) *CanvasSnapshot {
	if len(pixels) != width*height*4 {
		panic("easel: snapshot pixel buffer does not match dimensions")
	}
	data := make([]uint8, len(pixels))
	copy(data, pixels)
	return &CanvasSnapshot{pixels: data, width: width, height: height}
}

// Width returns the snapshot width in pixels.
func (s *CanvasSnapshot) Width() int { return s.width }

// Height returns the snapshot height in pixels.
func (s *CanvasSnapshot) Height() int { return s.height }

// Pixels returns the raw RGBA pixel data.
// The returned slice is the snapshot's own buffer; callers must not
// retain it past the life of the owning node.
func (s *CanvasSnapshot) Pixels() []uint8 { return s.pixels }

// ByteSize returns the memory footprint of the pixel buffer.
func (s *CanvasSnapshot) ByteSize() uintptr {
	return uintptr(len(s.pixels))
}

// Clone returns an independent copy of the snapshot.
func (s *CanvasSnapshot) Clone() *CanvasSnapshot {
	return NewCanvasSnapshot(s.pixels, s.width, s.height)
}

// ToImage converts the snapshot to an image.RGBA for export.
func (s *CanvasSnapshot) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pixels)
	return img
}
