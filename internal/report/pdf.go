package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"school-timetabler/internal/domain"
)

// WritePDF renders a per-class timetable as a table-per-class PDF,
// grounded on noah-isme-sma-adp-api/pkg/export's header-row-then-body
// gofpdf usage.
func WritePDF(w io.Writer, schedule domain.Schedule, in domain.Input) error {
	return WritePDFRows(w, Sorted(schedule, in))
}

// WritePDFRows groups already-flattened rows by class name and emits
// one page per class; see WriteConsoleRows.
func WritePDFRows(w io.Writer, rows []Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)

	headers := []string{"Day", "Period", "Subject", "Teacher", "Room"}
	colWidth := 190.0 / float64(len(headers))

	classes := orderedClasses(rows)
	for _, class := range classes {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, fmt.Sprintf("TIMETABLE — %s", class), "", 1, "C", false, 0, "")
		pdf.Ln(5)

		pdf.SetFont("Arial", "B", 10)
		for _, h := range headers {
			pdf.CellFormat(colWidth, 8, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range rows {
			if row.Class != class {
				continue
			}
			for _, value := range []string{row.Day, fmt.Sprintf("%d", row.Period+1), row.Subject, row.Teacher, row.Room} {
				pdf.CellFormat(colWidth, 7, value, "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.Output(w)
}

// orderedClasses returns each row's Class value, first-seen order,
// deduplicated.
func orderedClasses(rows []Row) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		if !seen[row.Class] {
			seen[row.Class] = true
			out = append(out, row.Class)
		}
	}
	return out
}
