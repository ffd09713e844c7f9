package dto

import (
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the payload for configuring a budget.
// Period uses the "YYYY-MM" form.
type CreateBudgetRequest struct {
	Category    string          `json:"category" binding:"required"`
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required"`
	Period      string          `json:"period" binding:"required"`
}

// UpdateBudgetRequest defines the data allowed for editing a budget.
type UpdateBudgetRequest struct {
	Category    *string          `json:"category"`
	LimitAmount *decimal.Decimal `json:"limitAmount"`
	Period      *string          `json:"period"`
	Active      *bool            `json:"active"`
}

// EvaluateBudgetRequest defines the payload for a dry-run budget evaluation
// of a prospective expense.
type EvaluateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Period   string          `json:"period" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	Period      string          `json:"period"`
	Active      bool            `json:"active"`
}

// BudgetEvaluationResponse carries every snapshot figure of a budget breach
// so clients can render the warning without recomputation.
type BudgetEvaluationResponse struct {
	Category          string          `json:"category"`
	Period            string          `json:"period"`
	Limit             decimal.Decimal `json:"limit"`
	CurrentSpent      decimal.Decimal `json:"currentSpent"`
	CandidateAmount   decimal.Decimal `json:"candidateAmount"`
	ProjectedTotal    decimal.Decimal `json:"projectedTotal"`
	ExcessAmount      decimal.Decimal `json:"excessAmount"`
	PercentageOfLimit decimal.Decimal `json:"percentageOfLimit"`
}

// ToBudgetResponse converts a domain.Budget to its DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		Category:    b.Category,
		LimitAmount: b.LimitAmount,
		Period:      b.Period.String(),
		Active:      b.Active,
	}
}

// ToBudgetResponses converts a slice of domain.Budget to DTOs.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(&b)
	}
	return responses
}

// ToBudgetEvaluationResponse converts a domain.BudgetEvaluation to its DTO.
func ToBudgetEvaluationResponse(e *domain.BudgetEvaluation) *BudgetEvaluationResponse {
	if e == nil {
		return nil
	}
	return &BudgetEvaluationResponse{
		Category:          e.Category,
		Period:            e.Period.String(),
		Limit:             e.Limit,
		CurrentSpent:      e.CurrentSpent,
		CandidateAmount:   e.CandidateAmount,
		ProjectedTotal:    e.ProjectedTotal,
		ExcessAmount:      e.ExcessAmount,
		PercentageOfLimit: e.PercentageOfLimit,
	}
}

// ToBudgetEvaluationResponses converts evaluations to DTOs.
func ToBudgetEvaluationResponses(evals []domain.BudgetEvaluation) []BudgetEvaluationResponse {
	responses := make([]BudgetEvaluationResponse, len(evals))
	for i := range evals {
		responses[i] = *ToBudgetEvaluationResponse(&evals[i])
	}
	return responses
}
