package report

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/section"
	"github.com/alexiusacademia/bridgebeam/internal/version"
	"github.com/phpdave11/gofpdf"
)

const (
	labelWidth = 70.0
	valueWidth = 50.0
	rowHeight  = 6.0
)

// WritePDF writes a one page data sheet for b. When diagram names a PNG
// file it is placed below the tables.
func WritePDF(path string, b Beam, diagram string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Precast Bridge Beam %s", b.Mark))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("bridgebeam v%s, %s", version.Version, time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	heading(pdf, "Parameters")
	for _, n := range params.Names {
		v, _ := b.Params.Get(n)
		row(pdf, string(n), fmt.Sprintf("%.1f", v))
	}
	pdf.Ln(4)

	heading(pdf, "Section")
	props := b.Properties
	row(pdf, "Area", fmt.Sprintf("%.0f mm2", props.Area))
	row(pdf, "Centroid from bottom", fmt.Sprintf("%.1f mm", props.CentroidY))
	row(pdf, "Ix", fmt.Sprintf("%.4e mm4", props.Ix))
	row(pdf, "S top", fmt.Sprintf("%.4e mm3", props.Stop))
	row(pdf, "S bottom", fmt.Sprintf("%.4e mm3", props.Sbot))
	pdf.Ln(4)

	heading(pdf, "Quantities")
	q := b.Quantities
	row(pdf, "Gross volume", fmt.Sprintf("%.3f m3", section.CubicMeters(q.GrossVolume)))
	row(pdf, "Sling holes", fmt.Sprintf("%.4f m3", section.CubicMeters(q.HoleVolume)))
	row(pdf, "Net volume", fmt.Sprintf("%.3f m3", section.CubicMeters(q.NetVolume)))
	row(pdf, "Mass", fmt.Sprintf("%.0f kg", q.Mass))
	row(pdf, "Status", b.Status())
	if b.Failure != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, b.Failure, "", "L", false)
	}

	if diagram != "" {
		pdf.Ln(4)
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.ImageOptions(diagram, pdf.GetX(), pdf.GetY(), 80, 0, true, opts, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(labelWidth, rowHeight, label, "B", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, value, "B", 1, "R", false, 0, "")
}
