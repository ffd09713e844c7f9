package export

import (
	"bytes"
	"fmt"

	"github.com/arionfin/arion-backend/internal/core/domain"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a report as a printable PDF document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var _ portssvc.ReportRenderer = (*PDFRenderer)(nil)

func (r *PDFRenderer) Render(report domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Financial report for %s", report.UserName))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Range: %s to %s", report.FromDate.Format(dateLayout), report.ToDate.Format(dateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total income: %s", report.Summary.TotalIncome.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total expense: %s", report.Summary.TotalExpense.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Net balance: %s", report.Summary.NetBalance().StringFixed(2)))
	pdf.Ln(10)

	if len(report.CategoryBreakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Expenses by category")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, category := range sortedCategories(report) {
			pdf.Cell(100, 6, category)
			pdf.CellFormat(40, 6, report.CategoryBreakdown[category].StringFixed(2), "", 0, "R", false, 0, "")
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Transactions")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(25, 6, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 6, "Category", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 6, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 6, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(65, 6, "Note", "1", 0, "", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	for _, txn := range report.Transactions {
		pdf.CellFormat(25, 6, txn.Date.Format(dateLayout), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 6, txn.Category, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 6, string(txn.Type), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 6, txn.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(65, 6, txn.Note, "1", 0, "", false, 0, "")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}
