// Package ledger implements the aggregation, budget evaluation and report
// compilation engine. Every function is pure: it operates on the transaction
// and budget snapshots it is handed, performs no I/O and touches no shared
// state, so concurrent calls on disjoint inputs need no synchronization.
package ledger

import (
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateByCategory sums transaction amounts per category. When typeFilter
// is non-nil only transactions of that type contribute. Categories with no
// matching transactions are absent from the result, never present with a
// zero entry. Empty input yields an empty map.
func AggregateByCategory(transactions []domain.Transaction, typeFilter *domain.TransactionType) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if typeFilter != nil && txn.Type != *typeFilter {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// AggregateByPeriod groups transactions by their year-month period and sums
// amounts into income and expense totals per period.
func AggregateByPeriod(transactions []domain.Transaction) map[domain.Period]domain.PeriodSummary {
	summaries := make(map[domain.Period]domain.PeriodSummary)
	for _, txn := range transactions {
		period := txn.Period()
		summary, ok := summaries[period]
		if !ok {
			summary = domain.PeriodSummary{Period: period}
		}
		switch txn.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case domain.Expense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
		summaries[period] = summary
	}
	return summaries
}
