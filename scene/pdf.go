package scene

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"honnef.co/go/freehand"
)

// pather is the subset of gofpdf.Fpdf that traces paths.
type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y float64)
	ClosePath()
}

func tracePDF(p pather, path freehand.Path) {
	for cmd := range path.Commands() {
		switch cmd.Kind {
		case freehand.MoveToKind:
			p.MoveTo(cmd.P0.X, cmd.P0.Y)
		case freehand.LineToKind:
			p.LineTo(cmd.P0.X, cmd.P0.Y)
		case freehand.CubicToKind:
			p.CurveBezierCubicTo(cmd.P0.X, cmd.P0.Y, cmd.P1.X, cmd.P1.Y, cmd.P2.X, cmd.P2.Y)
		case freehand.ClosePathKind:
			p.ClosePath()
		default:
			panic(fmt.Sprintf("unhandled case %v", cmd.Kind))
		}
	}
}

func pdfCap(c freehand.Cap) string {
	switch c {
	case freehand.ButtCap:
		return "butt"
	case freehand.SquareCap:
		return "square"
	default:
		return "round"
	}
}

func pdfJoin(j freehand.Join) string {
	switch j {
	case freehand.BevelJoin:
		return "bevel"
	case freehand.MiterJoin:
		return "miter"
	default:
		return "round"
	}
}

// WritePDF writes the committed strokes as a single page PDF document, one
// point per pixel. Shadows are not exported.
func (c *Canvas) WritePDF(w io.Writer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(c.width), Ht: float64(c.height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, obj := range c.objects {
		b := obj.Brush
		pdf.SetDrawColor(int(b.Color.R), int(b.Color.G), int(b.Color.B))
		pdf.SetAlpha(float64(b.Color.A)/0xff, "Normal")
		pdf.SetLineWidth(b.Width)
		pdf.SetLineCapStyle(pdfCap(b.Cap))
		pdf.SetLineJoinStyle(pdfJoin(b.Join))
		pdf.SetDashPattern(b.DashPattern, 0)
		tracePDF(pdf, obj.ScenePath())
		pdf.DrawPath("D")
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
