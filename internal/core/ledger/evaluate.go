package ledger

import (
	"errors"
	"fmt"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrAmbiguousBudget indicates that more than one active budget exists for
// the same (user, category, period). The storage layer enforces uniqueness;
// if a snapshot still contains duplicates the evaluator refuses to pick one.
var ErrAmbiguousBudget = errors.New("ambiguous budget state: multiple active budgets for category and period")

var oneHundred = decimal.NewFromInt(100)

// Evaluate decides whether recording a new expense of candidateAmount would
// push the category over its monthly limit.
//
// The result is nil both when no budget applies and when the projected total
// stays within the limit; callers only receive an evaluation when there is
// something to warn about. currentSpent must be the aggregated expense total
// for the budget's (category, period) excluding the candidate, which has not
// been persisted yet.
func Evaluate(budget *domain.Budget, currentSpent, candidateAmount decimal.Decimal) (*domain.BudgetEvaluation, error) {
	if budget == nil {
		return nil, nil
	}
	if budget.LimitAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: limit must be positive, got %s", domain.ErrInvalidBudget, budget.LimitAmount)
	}

	projected := currentSpent.Add(candidateAmount)
	if projected.LessThanOrEqual(budget.LimitAmount) {
		// The breach policy is strictly greater than the limit.
		return nil, nil
	}

	return &domain.BudgetEvaluation{
		Category:          budget.Category,
		Period:            budget.Period,
		Limit:             budget.LimitAmount,
		CurrentSpent:      currentSpent,
		CandidateAmount:   candidateAmount,
		ProjectedTotal:    projected,
		ExcessAmount:      projected.Sub(budget.LimitAmount),
		PercentageOfLimit: projected.Div(budget.LimitAmount).Mul(oneHundred),
	}, nil
}

// SelectActiveBudget picks the single active budget from a snapshot fetched
// for one (user, category, period). Zero budgets mean budgets are simply not
// configured; more than one is an ErrAmbiguousBudget integrity error.
func SelectActiveBudget(budgets []domain.Budget) (*domain.Budget, error) {
	var selected *domain.Budget
	for i := range budgets {
		if !budgets[i].Active {
			continue
		}
		if selected != nil {
			return nil, ErrAmbiguousBudget
		}
		selected = &budgets[i]
	}
	return selected, nil
}
