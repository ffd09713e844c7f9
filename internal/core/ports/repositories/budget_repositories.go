package repositories

import (
	"context"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget by its identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListActiveBudgets retrieves all active budgets for a user, newest
	// period first.
	ListActiveBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// ListActiveBudgetsForPeriod retrieves a user's active budgets for one period.
	ListActiveBudgetsForPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Budget, error)

	// FindActiveBudgets retrieves the active budgets for one
	// (user, category, period). Uniqueness is expected but not assumed: the
	// caller receives every matching row so it can detect duplicates.
	FindActiveBudgets(ctx context.Context, userID, category string, period domain.Period) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates an existing budget's details, including the
	// active flag.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepository combines all budget repository interfaces.
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
}
