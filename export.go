package easel

import (
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// WritePNG encodes a snapshot as a PNG file at the given path.
func WritePNG(path string, snap *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("easel: create %s: %w", path, err)
	}
	if err := png.Encode(f, snap.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("easel: encode %s: %w", path, err)
	}
	return f.Close()
}

// ExportPNG captures the canvas and writes it as a PNG file.
func (s *Surface) ExportPNG(path string) error {
	if s.needsRedraw {
		s.renderer.Redraw()
		s.needsRedraw = false
	}
	return WritePNG(path, s.canvas.Capture())
}

// ExportPDF writes the object collection as a vector PDF with a page sized
// to the canvas (1 canvas unit = 1 point). Unlike PNG export this re-emits
// the vectors, so a raster-only undo state is not reflected.
func ExportPDF(path string, store *Store, width, height int) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.AddPage()

	for _, o := range store.Objects() {
		if !o.Visible {
			continue
		}
		writePDFObject(pdf, o)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("easel: export pdf %s: %w", path, err)
	}
	return nil
}

// ExportPDF writes the surface's objects as a vector PDF file.
func (s *Surface) ExportPDF(path string) error {
	return ExportPDF(path, s.store, s.canvas.Width(), s.canvas.Height())
}

func writePDFObject(pdf *gofpdf.Fpdf, o *Object) {
	sr, sg, sb, _ := colorBytes(o.Props.StrokeColor)
	fr, fg, fb, _ := colorBytes(o.Props.FillColor)
	pdf.SetDrawColor(sr, sg, sb)
	pdf.SetFillColor(fr, fg, fb)
	pdf.SetLineWidth(o.Props.StrokeWidth)
	pdf.SetLineCapStyle(lineCapToString(o.Props.LineCap))
	pdf.SetAlpha(o.Props.Opacity, "Normal")

	style := "D"
	if o.Props.EnableFill {
		style = "FD"
	}

	switch o.Type {
	case ShapeRectangle:
		pdf.Rect(o.X, o.Y, o.Width, o.Height, style)
	case ShapeCircle:
		pdf.Circle(o.X, o.Y, o.Radius, style)
	case ShapeLine:
		pdf.Line(o.Points[0].X, o.Points[0].Y, o.Points[1].X, o.Points[1].Y)
	case ShapeArrow:
		a, b := o.Points[0], o.Points[1]
		pdf.Line(a.X, a.Y, b.X, b.Y)
		angle := Angle(a, b)
		for _, da := range [2]float64{arrowheadAngle, -arrowheadAngle} {
			pdf.Line(b.X, b.Y,
				b.X-arrowheadLength*math.Cos(angle+da),
				b.Y-arrowheadLength*math.Sin(angle+da))
		}
	case ShapeFreehand:
		for i := 1; i < len(o.Path); i++ {
			pdf.Line(o.Path[i-1].X, o.Path[i-1].Y, o.Path[i].X, o.Path[i].Y)
		}
	}

	pdf.SetAlpha(1, "Normal")
}

// colorBytes converts a Color to 0-255 channel values.
func colorBytes(c Color) (r, g, b, a int) {
	return int(clamp01(c.R) * 255), int(clamp01(c.G) * 255),
		int(clamp01(c.B) * 255), int(clamp01(c.A) * 255)
}
