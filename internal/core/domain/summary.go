package domain

import "github.com/shopspring/decimal"

// PeriodSummary holds the income and expense totals for one period.
// The net balance is always recomputed from the totals, never stored.
type PeriodSummary struct {
	Period       Period          `json:"period"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

// NetBalance returns TotalIncome - TotalExpense.
func (s PeriodSummary) NetBalance() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// BudgetEvaluation describes a budget breach. It carries every snapshot
// figure needed to render a warning without recomputation. An evaluation is
// only produced when the projected spend strictly exceeds the limit.
type BudgetEvaluation struct {
	Category          string          `json:"category"`
	Period            Period          `json:"period"`
	Limit             decimal.Decimal `json:"limit"`
	CurrentSpent      decimal.Decimal `json:"currentSpent"`
	CandidateAmount   decimal.Decimal `json:"candidateAmount"`
	ProjectedTotal    decimal.Decimal `json:"projectedTotal"`
	ExcessAmount      decimal.Decimal `json:"excessAmount"`
	PercentageOfLimit decimal.Decimal `json:"percentageOfLimit"`
}
