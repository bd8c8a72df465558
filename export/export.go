// Package export writes canvas snapshots to interchange formats.
//
// History persistence is deliberately out of scope here; export renders
// the pixels of one state, typically the current one:
//
//	snap := host.CaptureSnapshot()
//	export.SavePNG("drawing.png", snap)
package export

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/easel"
)

// PNG encodes the snapshot as PNG to w.
func PNG(w io.Writer, snap *easel.CanvasSnapshot) error {
	if err := png.Encode(w, snap.ToImage()); err != nil {
		return fmt.Errorf("export: encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the snapshot to a PNG file.
func SavePNG(path string, snap *easel.CanvasSnapshot) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return PNG(f, snap)
}

// A4 page geometry in millimeters.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 15.0
)

// PDF writes the snapshot as a single-page A4 PDF to w, scaled to fit
// inside the page margins with its aspect ratio preserved.
func PDF(w io.Writer, snap *easel.CanvasSnapshot) error {
	var buf bytes.Buffer
	if err := PNG(&buf, snap); err != nil {
		return err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.RegisterImageOptionsReader("canvas",
		gofpdf.ImageOptions{ImageType: "PNG"}, &buf)

	boxW := pageWidth - 2*pageMargin
	boxH := pageHeight - 2*pageMargin
	imgW := boxW
	imgH := boxW * float64(snap.Height()) / float64(snap.Width())
	if imgH > boxH {
		imgH = boxH
		imgW = boxH * float64(snap.Width()) / float64(snap.Height())
	}
	x := pageMargin + (boxW-imgW)/2
	y := pageMargin + (boxH-imgH)/2

	doc.ImageOptions("canvas", x, y, imgW, imgH, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("export: writing pdf: %w", err)
	}
	return nil
}

// SavePDF writes the snapshot to a PDF file.
func SavePDF(path string, snap *easel.CanvasSnapshot) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return PDF(f, snap)
}
