package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidBudget indicates a budget that failed construction-time validation.
var ErrInvalidBudget = errors.New("invalid budget")

// Budget is a per-category monthly spending limit.
// At most one active budget may exist per (user, category, period); the
// storage layer enforces this and the evaluator treats duplicates as a
// data-integrity error.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary key (UUID)
	UserID      string          `json:"userID"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount"` // Always positive
	Period      Period          `json:"period"`
	Active      bool            `json:"active"`
	AuditFields
}

// Validate checks the construction invariants of a budget.
// The limit must be strictly positive so evaluation can never divide by
// zero. Violations wrap ErrInvalidBudget.
func (b Budget) Validate() error {
	if b.LimitAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: limit must be positive, got %s", ErrInvalidBudget, b.LimitAmount)
	}
	if b.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidBudget)
	}
	if b.Period.IsZero() {
		return fmt.Errorf("%w: period is required", ErrInvalidBudget)
	}
	return nil
}
