package services

import (
	"context"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade defines the budget operations exposed to handlers.
type BudgetSvcFacade interface {
	// CreateBudget validates and persists a new budget. An active budget
	// already covering the same (category, period) is a duplicate.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetByID retrieves one of the user's budgets.
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the user's active budgets, newest period first.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// UpdateBudget edits a budget's limit, period, category or active flag.
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeactivateBudget flips the active flag off. The row is kept so past
	// evaluations stay reproducible.
	DeactivateBudget(ctx context.Context, userID, budgetID string) error

	// DeleteBudget removes a budget entirely.
	DeleteBudget(ctx context.Context, userID, budgetID string) error

	// EvaluateCandidate runs a dry-run budget evaluation for a prospective
	// expense without recording anything. The result is nil when no active
	// budget covers the (category, period) or the limit is not breached.
	EvaluateCandidate(ctx context.Context, userID, category string, period domain.Period, candidateAmount decimal.Decimal) (*domain.BudgetEvaluation, error)

	// ListExceededBudgets returns an evaluation for every active budget of
	// the period whose recorded spend already exceeds its limit.
	ListExceededBudgets(ctx context.Context, userID string, period domain.Period) ([]domain.BudgetEvaluation, error)
}
