package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Vertical position (mm) past which a new activity group starts on a fresh
// page instead of being squeezed at the bottom.
const pdfGroupBreakY = 160.0

// BuildPDF renders export rows into a landscape A4 document.
// Full mode: one flat table with abbreviated columns.
// List mode: one sub-table per activity with a "name (count)" header line.
func BuildPDF(rows []ExportRow, mode ExportMode) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Inscripcions AFA"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if mode == ExportModeList {
		groups := GroupByActivity(rows)
		for gi, g := range groups {
			if gi > 0 && pdf.GetY() > pdfGroupBreakY {
				pdf.AddPage()
			}
			title := g.Activity
			if title == "" {
				title = "Sense activitat"
			}
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s (%d)", title, len(g.Rows))), "", 1, "L", false, 0, "")
			writePDFTable(pdf, tr, g.Rows, listColumns)
			pdf.Ln(4)
		}
	} else {
		writePDFTable(pdf, tr, rows, fullColumns)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfColumn struct {
	header string
	width  float64
	value  func(ExportRow) string
}

// Abbreviated columns sized to fit landscape A4 (277mm usable).
var fullColumns = []pdfColumn{
	{"Activitat", 45, func(r ExportRow) string { return r.exportActivity() }},
	{"Curs", 14, func(r ExportRow) string { return r.Course }},
	{"Nom", 30, func(r ExportRow) string { return r.Name }},
	{"Cognoms", 45, func(r ExportRow) string { return r.Surname }},
	{"Soci", 12, func(r ExportRow) string { return yesNo(r.AFAMember) }},
	{"Telèfon", 26, func(r ExportRow) string { return r.ParentPhone }},
	{"Email", 60, func(r ExportRow) string { return r.ParentEmail }},
	{"Estat", 18, func(r ExportRow) string { return string(r.Status) }},
}

var listColumns = []pdfColumn{
	{"Curs", 14, func(r ExportRow) string { return r.Course }},
	{"Nom", 35, func(r ExportRow) string { return r.Name }},
	{"Cognoms", 55, func(r ExportRow) string { return r.Surname }},
	{"Soci", 12, func(r ExportRow) string { return yesNo(r.AFAMember) }},
	{"Telèfon", 28, func(r ExportRow) string { return r.ParentPhone }},
}

func writePDFTable(pdf *fpdf.Fpdf, tr func(string) string, rows []ExportRow, cols []pdfColumn) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.width, 6, tr(col.header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		for _, col := range cols {
			pdf.CellFormat(col.width, 5.5, tr(col.value(r)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
