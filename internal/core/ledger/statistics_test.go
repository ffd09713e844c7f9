package ledger_test

import (
	"testing"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSummary(t *testing.T) {
	transactions := []domain.Transaction{
		txn("Salary", domain.Income, "3000", "2025-03-25"),
		txn("Food", domain.Expense, "120", "2025-03-05"),
		txn("Food", domain.Expense, "80", "2025-04-05"),
	}

	t.Run("restricted to one period", func(t *testing.T) {
		period := domain.Period{Year: 2025, Month: time.March}
		summary := ledger.CompileSummary(transactions, &period)
		assert.Equal(t, period, summary.Period)
		assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
		assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(120)))
		assert.True(t, summary.NetBalance().Equal(decimal.NewFromInt(2880)))
	})

	t.Run("nil period sums everything", func(t *testing.T) {
		summary := ledger.CompileSummary(transactions, nil)
		assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(200)))
	})

	t.Run("empty month has zero totals", func(t *testing.T) {
		period := domain.Period{Year: 2025, Month: time.January}
		summary := ledger.CompileSummary(transactions, &period)
		assert.True(t, summary.TotalIncome.IsZero())
		assert.True(t, summary.TotalExpense.IsZero())
		assert.True(t, summary.NetBalance().IsZero())
	})
}

func TestCategoryExpenseBreakdown(t *testing.T) {
	transactions := []domain.Transaction{
		txn("Food", domain.Expense, "75", "2025-03-05"),
		txn("Rent", domain.Expense, "25", "2025-03-01"),
		txn("Salary", domain.Income, "3000", "2025-03-25"),
		txn("Food", domain.Expense, "999", "2025-04-05"),
	}

	period := domain.Period{Year: 2025, Month: time.March}
	breakdown := ledger.CategoryExpenseBreakdown(transactions, &period)
	require.Len(t, breakdown, 2)
	assert.True(t, breakdown["Food"].Equal(decimal.NewFromInt(75)))
	assert.True(t, breakdown["Rent"].Equal(decimal.NewFromInt(25)))
}

func TestBreakdownPercentages(t *testing.T) {
	t.Run("shares of the total", func(t *testing.T) {
		percentages := ledger.BreakdownPercentages(map[string]decimal.Decimal{
			"Food": decimal.NewFromInt(75),
			"Rent": decimal.NewFromInt(25),
		})
		assert.True(t, percentages["Food"].Equal(decimal.NewFromInt(75)))
		assert.True(t, percentages["Rent"].Equal(decimal.NewFromInt(25)))
	})

	t.Run("zero total yields zero percentages, not NaN", func(t *testing.T) {
		percentages := ledger.BreakdownPercentages(map[string]decimal.Decimal{
			"Food": decimal.Zero,
		})
		require.Len(t, percentages, 1)
		assert.True(t, percentages["Food"].IsZero())
	})
}
