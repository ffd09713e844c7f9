package dto

import (
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodSummaryResponse defines the monthly totals returned for a period.
// The net balance is recomputed from the totals when building the response.
type PeriodSummaryResponse struct {
	Period       string          `json:"period"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// CategoryBreakdownEntry is one slice of the per-category expense breakdown.
type CategoryBreakdownEntry struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryBreakdownResponse wraps the breakdown for one period.
type CategoryBreakdownResponse struct {
	Period     string                   `json:"period"`
	Categories []CategoryBreakdownEntry `json:"categories"`
}

// ToPeriodSummaryResponse converts a domain.PeriodSummary to its DTO.
func ToPeriodSummaryResponse(s *domain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Period:       s.Period.String(),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		NetBalance:   s.NetBalance(),
	}
}

// ToPeriodSummaryResponses converts summaries to DTOs.
func ToPeriodSummaryResponses(summaries []domain.PeriodSummary) []PeriodSummaryResponse {
	responses := make([]PeriodSummaryResponse, len(summaries))
	for i := range summaries {
		responses[i] = ToPeriodSummaryResponse(&summaries[i])
	}
	return responses
}
