package ledger

import (
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CompileSummary sums the given transactions into a period summary. When
// period is non-nil only transactions inside that period contribute; a nil
// period sums everything it is handed.
func CompileSummary(transactions []domain.Transaction, period *domain.Period) domain.PeriodSummary {
	summary := domain.PeriodSummary{}
	if period != nil {
		summary.Period = *period
	}
	for _, txn := range transactions {
		if period != nil && !period.Contains(txn.Date) {
			continue
		}
		switch txn.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case domain.Expense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
	}
	return summary
}

// CategoryExpenseBreakdown sums expense amounts per category, optionally
// restricted to one period. Income never contributes.
func CategoryExpenseBreakdown(transactions []domain.Transaction, period *domain.Period) map[string]decimal.Decimal {
	expense := domain.Expense
	if period == nil {
		return AggregateByCategory(transactions, &expense)
	}
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if period.Contains(txn.Date) {
			filtered = append(filtered, txn)
		}
	}
	return AggregateByCategory(filtered, &expense)
}

// BreakdownPercentages converts a category breakdown into each category's
// share of the total expenses, as a percentage. A zero expense total
// short-circuits every percentage to zero instead of dividing by zero.
func BreakdownPercentages(breakdown map[string]decimal.Decimal) map[string]decimal.Decimal {
	total := decimal.Zero
	for _, amount := range breakdown {
		total = total.Add(amount)
	}

	percentages := make(map[string]decimal.Decimal, len(breakdown))
	for category, amount := range breakdown {
		if total.IsZero() {
			percentages[category] = decimal.Zero
			continue
		}
		percentages[category] = amount.Div(total).Mul(oneHundred)
	}
	return percentages
}
