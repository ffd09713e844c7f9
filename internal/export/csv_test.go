package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() domain.Report {
	return domain.Report{
		UserID:      "user-1",
		UserName:    "alice",
		FromDate:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		ToDate:      time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC),
		Summary: domain.PeriodSummary{
			TotalIncome:  decimal.NewFromInt(3000),
			TotalExpense: decimal.NewFromInt(830),
		},
		CategoryBreakdown: map[string]decimal.Decimal{
			"Rent": decimal.NewFromInt(800),
			"Food": decimal.NewFromInt(30),
		},
		Transactions: []domain.Transaction{
			{
				TransactionID: "txn-1",
				UserID:        "user-1",
				Category:      "Food",
				Type:          domain.Expense,
				Amount:        decimal.NewFromInt(30),
				Date:          time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
				Note:          "groceries",
			},
			{
				TransactionID: "txn-2",
				UserID:        "user-1",
				Category:      "Rent",
				Type:          domain.Expense,
				Amount:        decimal.NewFromInt(800),
				Date:          time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestCSVRenderer(t *testing.T) {
	renderer := export.NewCSVRenderer()
	assert.Equal(t, "text/csv", renderer.ContentType())

	data, err := renderer.Render(sampleReport())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Report for,alice")
	assert.Contains(t, out, "From,2025-03-01")
	assert.Contains(t, out, "Total income,3000.00")
	assert.Contains(t, out, "Net balance,2170.00")
	assert.Contains(t, out, "2025-03-10,Food,EXPENSE,30.00,groceries")

	// Breakdown rows come out in lexical category order.
	assert.Less(t, strings.Index(out, "Food,30.00"), strings.Index(out, "Rent,800.00"))
}

func TestCSVRenderer_Deterministic(t *testing.T) {
	renderer := export.NewCSVRenderer()
	first, err := renderer.Render(sampleReport())
	require.NoError(t, err)
	second, err := renderer.Render(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestXLSXRenderer(t *testing.T) {
	renderer := export.NewXLSXRenderer()
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", renderer.ContentType())

	data, err := renderer.Render(sampleReport())
	require.NoError(t, err)
	// XLSX documents are zip archives.
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestPDFRenderer(t *testing.T) {
	renderer := export.NewPDFRenderer()
	assert.Equal(t, "application/pdf", renderer.ContentType())

	data, err := renderer.Render(sampleReport())
	require.NoError(t, err)
	require.Greater(t, len(data), 5)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
