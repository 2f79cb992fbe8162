package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/scheme"
	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	cellSize = 50.0
	margin   = 15.0
	gutter   = 6.0
)

// SheetLevels are the fill levels drawn across a contact sheet, full to
// empty.
var SheetLevels = []float64{1, 0.75, 0.5, 0.25, 0}

// ContactSheet writes a one-page PDF showing the theme's scene at every
// sheet level, focus phase on the first row and break on the second.
func ContactSheet(w io.Writer, id theme.ID, dark bool) error {
	t := theme.Lookup(id)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Vessel - "+t.Name, false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Vessel contact sheet: %s", t.Name))
	pdf.Ln(12)

	for row, isBreak := range []bool{false, true} {
		oy := margin + 20 + float64(row)*(cellSize+gutter+10)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(55, 65, 81)
		pdf.Text(margin, oy-2, domain.PhaseOf(isBreak).Label())

		for col, fill := range SheetLevels {
			ox := margin + float64(col)*(cellSize+gutter)
			sc := scheme.Render(t.ID, scheme.Frame{Fill: fill, Break: isBreak})

			if bg := t.Background(isBreak, dark).Base(); bg != "" {
				r, g, b := hexRGB(bg)
				pdf.SetFillColor(r, g, b)
				pdf.Rect(ox, oy, cellSize, cellSize, "F")
			}
			drawScene(pdf, sc, ox, oy, cellSize/scheme.ViewBox)

			pdf.SetTextColor(107, 114, 128)
			pdf.Text(ox, oy+cellSize+4, fmt.Sprintf("%s  fill %.2f", sc.Label, fill))
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// drawScene paints sc with its settled pose into the square at ox, oy
// scaled by k millimetres per view box unit.
func drawScene(pdf *fpdf.Fpdf, sc scheme.Scene, ox, oy, k float64) {
	pose := sc.Pose
	if pose.Opacity <= 0 {
		return
	}

	pdf.TransformBegin()
	defer pdf.TransformEnd()
	pdf.TransformTranslate(0, pose.OffsetY*k)
	if pose.Rotate != 0 {
		// fpdf rotates counter-clockwise; scene rotation is clockwise.
		pdf.TransformRotate(-pose.Rotate, ox+scheme.ViewBox/2*k, oy+scheme.ViewBox/2*k)
	}

	pt := func(p scheme.Point) fpdf.PointType {
		return fpdf.PointType{X: ox + p.X*k, Y: oy + p.Y*k}
	}

	for _, sh := range sc.Resolve(0) {
		alpha := sh.Opacity * pose.Opacity
		if alpha <= 0 {
			continue
		}
		r, g, b := hexRGB(sh.Color)
		pdf.SetAlpha(alpha, "Normal")
		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.3)

		clipped := len(sh.Clip) > 2
		if clipped {
			clip := make([]fpdf.PointType, len(sh.Clip))
			for i, p := range sh.Clip {
				clip[i] = pt(p)
			}
			pdf.ClipPolygon(clip, false)
		}

		style := "F"
		if sh.Texture.Stroked() {
			style = "D"
		}
		switch {
		case sh.Kind == scheme.Polyline || (sh.Texture.Stroked() && sh.Kind != scheme.Ellipse && sh.Kind != scheme.Rect):
			edge := sh.Edge()
			for i := 1; i < len(edge); i++ {
				a, b := pt(edge[i-1]), pt(edge[i])
				pdf.Line(a.X, a.Y, b.X, b.Y)
			}
		case sh.Kind == scheme.Rect:
			if sh.W > 0 && sh.H > 0 {
				pdf.Rect(ox+sh.X*k, oy+sh.Y*k, sh.W*k, sh.H*k, style)
			}
		case sh.Kind == scheme.Ellipse:
			if sh.RX > 0 && sh.RY > 0 {
				pdf.Ellipse(ox+sh.CX*k, oy+sh.CY*k, sh.RX*k, sh.RY*k, 0, style)
			}
		case sh.Kind == scheme.Polygon:
			poly := make([]fpdf.PointType, len(sh.Points))
			for i, p := range sh.Points {
				poly[i] = pt(p)
			}
			if len(poly) > 2 {
				pdf.Polygon(poly, style)
			}
		}

		if clipped {
			pdf.ClipEnd()
		}
	}
	pdf.SetAlpha(1, "Normal")
}

// hexRGB parses #RRGGBB, returning black for anything else.
func hexRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
