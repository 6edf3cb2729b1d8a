package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
)

// PDFRenderer draws the dataset as a portrait A4 document: title, the
// interpreted description, the aggregate summary and one grid per detail
// table.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(params prompt.Params, data reportdata.Dataset) ([]byte, error) {
	l := buildLayout(params, data)

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Spanish report text carries accents; the core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(l.title), "", 1, "C", false, 0, "")

	if params.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(params.Description), "", "C", false)
	}
	pdf.Ln(4)

	if len(l.summary) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Resumen"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, pair := range l.summary {
			pdf.CellFormat(70, 6, tr(pair[0]), "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, tr(pair[1]), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	for _, t := range l.tables {
		if len(t.rows) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(t.title), "", 1, "L", false, 0, "")

		width := contentWidth(pdf) / float64(len(t.header))
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range t.header {
			pdf.CellFormat(width, 6, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, row := range t.rows {
			for _, cell := range row {
				pdf.CellFormat(width, 5, tr(clipCell(cell)), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) FileExtension() string {
	return "pdf"
}

func contentWidth(pdf *gofpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return w - left - right
}

// clipCell keeps long ids and emails from overflowing a fixed-width column.
func clipCell(s string) string {
	const max = 28
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
