package export

import (
	"fmt"

	"github.com/arionfin/arion-backend/internal/core/domain"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// XLSXRenderer renders a report as a spreadsheet with a summary sheet and a
// transactions sheet.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

var _ portssvc.ReportRenderer = (*XLSXRenderer)(nil)

func (r *XLSXRenderer) Render(report domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	summaryRows := [][]any{
		{"Report for", report.UserName},
		{"From", report.FromDate.Format(dateLayout)},
		{"To", report.ToDate.Format(dateLayout)},
		{"Total income", report.Summary.TotalIncome.InexactFloat64()},
		{"Total expense", report.Summary.TotalExpense.InexactFloat64()},
		{"Net balance", report.Summary.NetBalance().InexactFloat64()},
		{},
		{"Category", "Expense total"},
	}
	for _, category := range sortedCategories(report) {
		summaryRows = append(summaryRows, []any{category, report.CategoryBreakdown[category].InexactFloat64()})
	}
	if err := writeRows(f, summarySheet, summaryRows); err != nil {
		return nil, err
	}

	txnSheet := "Transactions"
	if _, err := f.NewSheet(txnSheet); err != nil {
		return nil, fmt.Errorf("failed to create transactions sheet: %w", err)
	}
	txnRows := [][]any{{"Date", "Category", "Type", "Amount", "Note"}}
	for _, txn := range report.Transactions {
		txnRows = append(txnRows, []any{
			txn.Date.Format(dateLayout),
			txn.Category,
			string(txn.Type),
			txn.Amount.InexactFloat64(),
			txn.Note,
		})
	}
	if err := writeRows(f, txnSheet, txnRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on sheet %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
