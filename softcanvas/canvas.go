package softcanvas

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/internal/detrand"
)

func init() {
	easel.RegisterHost("soft", func(width, height int) easel.CanvasHost {
		return New(width, height)
	})
}

// Canvas is a software implementation of easel.CanvasHost backed by an
// easel.Pixmap. It is not safe for concurrent use; like a GPU-backed
// host, all calls must come from the thread that owns the canvas.
type Canvas struct {
	pixmap *easel.Pixmap
	bg     easel.RGBA

	brush easel.BrushSettings
	rng   detrand.Source

	// Current stroke state. rendered is the index of the last point
	// whose outgoing segment has been stamped; it resets in BeginStroke
	// so live incremental rendering and one-shot replay share this one
	// code path and every point renders exactly once.
	points   []easel.StrokePoint
	rendered int
	residual float32 // spacing distance carried across segment joins
	active   bool
}

// New creates a canvas with the given dimensions, cleared to the
// default paper color.
func New(width, height int) *Canvas {
	c := &Canvas{
		pixmap: easel.NewPixmap(width, height),
		bg:     easel.Paper,
		brush:  easel.DefaultBrush(),
	}
	c.pixmap.Clear(c.bg)
	return c
}

// Pixmap returns the live canvas buffer.
// Callers must not mutate it while a stroke is active.
func (c *Canvas) Pixmap() *easel.Pixmap { return c.pixmap }

// SetBackground changes the background color used by ClearCanvas.
func (c *Canvas) SetBackground(bg easel.RGBA) { c.bg = bg }

// SetBrush implements easel.CanvasHost.
func (c *Canvas) SetBrush(settings easel.BrushSettings) {
	c.brush = settings
}

// Brush returns the active brush settings.
func (c *Canvas) Brush() easel.BrushSettings { return c.brush }

// SetRandomSeed implements easel.CanvasHost. It reseeds the stamp hash
// sequence and resets its counter.
func (c *Canvas) SetRandomSeed(seed uint32) {
	c.rng.Reseed(seed)
}

// BeginStroke implements easel.CanvasHost.
func (c *Canvas) BeginStroke(x, y, pressure float32) {
	c.points = c.points[:0]
	c.points = append(c.points, easel.Pt(x, y, pressure))
	c.rendered = 0
	c.residual = 0
	c.active = true
	c.stamp(easel.Pt(x, y, pressure))
}

// AddStrokePoint implements easel.CanvasHost.
func (c *Canvas) AddStrokePoint(x, y, pressure float32) {
	if !c.active {
		return
	}
	c.points = append(c.points, easel.Pt(x, y, pressure))
	c.renderPending()
}

// EndStroke implements easel.CanvasHost.
func (c *Canvas) EndStroke() {
	if !c.active {
		return
	}
	c.renderPending()
	c.active = false
}

// CancelStroke abandons the current stroke without further stamping.
// Already-stamped pixels remain; callers restore a snapshot to discard
// them, which is how interactive hosts implement stroke cancel.
func (c *Canvas) CancelStroke() {
	c.active = false
	c.points = c.points[:0]
}

// renderPending stamps every segment not yet rendered.
func (c *Canvas) renderPending() {
	for c.rendered < len(c.points)-1 {
		c.stampSegment(c.points[c.rendered], c.points[c.rendered+1])
		c.rendered++
	}
}

// stampSegment walks the segment from a to b, placing stamps at the
// brush spacing. The leftover distance carries into the next segment so
// stamp cadence is continuous across the whole polyline.
func (c *Canvas) stampSegment(a, b easel.StrokePoint) {
	dist := a.Dist(b)
	if dist <= 0 {
		return
	}
	step := c.brush.Spacing * c.brush.Size
	if step < 1 {
		step = 1
	}

	pos := c.residual
	if pos == 0 {
		pos = step // the segment start itself was stamped previously
	}
	for pos <= dist {
		c.stamp(a.Lerp(b, pos/dist))
		pos += step
	}
	c.residual = pos - dist
}

// stamp renders one brush stamp at the given sample. Random values are
// consumed from the stroke's hash sequence in a fixed order (scatter x,
// scatter y, rotation, size, opacity), which is what makes replay land
// every stamp on the same pixels.
func (c *Canvas) stamp(p easel.StrokePoint) {
	b := &c.brush

	x, y := p.X, p.Y
	if b.Scatter != 0 {
		x += c.rng.Signed() * b.Scatter * b.Size
		y += c.rng.Signed() * b.Scatter * b.Size
	}
	rotation := b.Rotation
	if b.RotationJitter != 0 {
		rotation += c.rng.Signed() * b.RotationJitter
	}
	size := b.Size * (1 - b.SizePressure*(1-p.Pressure))
	if b.SizeJitter != 0 {
		size *= 1 + c.rng.Signed()*b.SizeJitter
	}
	if size < 1 {
		size = 1
	}
	alpha := b.Opacity * b.Flow * (1 - b.OpacityPressure*(1-p.Pressure))
	if b.OpacityJitter != 0 {
		alpha *= 1 - c.rng.Unit()*b.OpacityJitter
	}
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}

	c.drawStamp(x, y, size, rotation, alpha)
}

// CaptureSnapshot implements easel.CanvasHost.
func (c *Canvas) CaptureSnapshot() *easel.CanvasSnapshot {
	return c.pixmap.Snapshot()
}

// RestoreSnapshot implements easel.CanvasHost.
func (c *Canvas) RestoreSnapshot(snap *easel.CanvasSnapshot) {
	if snap == nil {
		return
	}
	if snap.Width() != c.pixmap.Width() || snap.Height() != c.pixmap.Height() {
		easel.Logger().Warn("softcanvas: snapshot size mismatch, scaling",
			"snapshot", image.Pt(snap.Width(), snap.Height()),
			"canvas", image.Pt(c.pixmap.Width(), c.pixmap.Height()))
		img := snap.ToImage()
		draw.BiLinear.Scale(c.pixmap, c.pixmap.Bounds(), img, img.Bounds(), draw.Src, nil)
		return
	}
	draw.Draw(c.pixmap, c.pixmap.Bounds(), snap.ToImage(), image.Point{}, draw.Src)
}

// ClearCanvas implements easel.CanvasHost.
func (c *Canvas) ClearCanvas() {
	c.pixmap.Clear(c.bg)
}
