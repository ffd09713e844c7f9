// Package export renders compiled reports into downloadable documents.
// Each renderer is stateless and safe for concurrent use.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/arionfin/arion-backend/internal/core/domain"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
)

const dateLayout = "2006-01-02"

// CSVRenderer renders a report as a CSV document: a summary block followed
// by the category breakdown and the transaction listing.
type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

var _ portssvc.ReportRenderer = (*CSVRenderer)(nil)

// sortedCategories returns the breakdown keys in lexical order so the
// rendered document is deterministic.
func sortedCategories(report domain.Report) []string {
	categories := make([]string, 0, len(report.CategoryBreakdown))
	for category := range report.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func (r *CSVRenderer) Render(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Report for", report.UserName},
		{"From", report.FromDate.Format(dateLayout)},
		{"To", report.ToDate.Format(dateLayout)},
		{"Total income", report.Summary.TotalIncome.StringFixed(2)},
		{"Total expense", report.Summary.TotalExpense.StringFixed(2)},
		{"Net balance", report.Summary.NetBalance().StringFixed(2)},
		{},
		{"Category", "Expense total"},
	}
	for _, category := range sortedCategories(report) {
		records = append(records, []string{category, report.CategoryBreakdown[category].StringFixed(2)})
	}

	records = append(records, []string{}, []string{"Date", "Category", "Type", "Amount", "Note"})
	for _, txn := range report.Transactions {
		records = append(records, []string{
			txn.Date.Format(dateLayout),
			txn.Category,
			string(txn.Type),
			txn.Amount.StringFixed(2),
			txn.Note,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *CSVRenderer) ContentType() string {
	return "text/csv"
}
