package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/ledger"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// budgetService maintains budget configuration and runs breach evaluations
// against the recorded expense totals.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
	txnRepo    portsrepo.TransactionRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, txnRepo portsrepo.TransactionRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
	}
}

// Ensure budgetService implements the portssvc.BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget validates and persists a new budget. A second active budget
// for the same (category, period) is rejected as a duplicate.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	existing, err := s.budgetRepo.FindActiveBudgets(ctx, userID, req.Category, period)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing budget: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: active budget for category %s in period %s already exists", apperrors.ErrDuplicate, req.Category, period)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		Period:      period,
		Active:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Budget created",
		slog.String("budget_id", budget.BudgetID),
		slog.String("category", budget.Category),
		slog.String("period", budget.Period.String()),
	)
	return &budget, nil
}

// getOwnedBudget fetches a budget and verifies ownership.
func (s *budgetService) getOwnedBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return budget, nil
}

// GetBudgetByID retrieves one of the user's budgets.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	return s.getOwnedBudget(ctx, userID, budgetID)
}

// ListBudgets retrieves the user's active budgets, newest period first.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	return s.budgetRepo.ListActiveBudgets(ctx, userID)
}

// UpdateBudget edits a budget's limit, period, category or active flag.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.getOwnedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		budget.Category = *req.Category
	}
	if req.LimitAmount != nil {
		budget.LimitAmount = *req.LimitAmount
	}
	if req.Period != nil {
		period, err := domain.ParsePeriod(*req.Period)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		budget.Period = period
	}
	if req.Active != nil {
		budget.Active = *req.Active
	}
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	// Re-check uniqueness when the budget stays (or becomes) active under a
	// possibly different (category, period).
	if budget.Active {
		existing, err := s.budgetRepo.FindActiveBudgets(ctx, userID, budget.Category, budget.Period)
		if err != nil {
			return nil, fmt.Errorf("failed to check for conflicting budget: %w", err)
		}
		for _, other := range existing {
			if other.BudgetID != budget.BudgetID {
				return nil, fmt.Errorf("%w: active budget for category %s in period %s already exists", apperrors.ErrDuplicate, budget.Category, budget.Period)
			}
		}
	}

	budget.LastUpdatedAt = time.Now().UTC()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// DeactivateBudget flips the active flag off. The row is kept so past
// evaluations stay reproducible.
func (s *budgetService) DeactivateBudget(ctx context.Context, userID, budgetID string) error {
	budget, err := s.getOwnedBudget(ctx, userID, budgetID)
	if err != nil {
		return err
	}
	if !budget.Active {
		return fmt.Errorf("%w: budget %s is already inactive", apperrors.ErrValidation, budgetID)
	}

	budget.Active = false
	budget.LastUpdatedAt = time.Now().UTC()
	budget.LastUpdatedBy = userID

	return s.budgetRepo.UpdateBudget(ctx, *budget)
}

// DeleteBudget removes a budget entirely.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if _, err := s.getOwnedBudget(ctx, userID, budgetID); err != nil {
		return err
	}
	return s.budgetRepo.DeleteBudget(ctx, budgetID)
}

// spentInPeriod aggregates the recorded expense total for one
// (user, category, period).
func (s *budgetService) spentInPeriod(ctx context.Context, userID, category string, period domain.Period) (decimal.Decimal, error) {
	expense := domain.Expense
	txns, err := s.txnRepo.ListTransactions(ctx, userID, portsrepo.TransactionListFilter{
		From:     period.Start(),
		To:       period.End(),
		Category: category,
		Type:     expense,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load expenses for category %s in period %s: %w", category, period, err)
	}

	spent := decimal.Zero
	for _, txn := range txns {
		spent = spent.Add(txn.Amount)
	}
	return spent, nil
}

// EvaluateCandidate runs a dry-run budget evaluation for a prospective
// expense. The result is nil when no active budget covers the
// (category, period) or the projected total stays within the limit.
func (s *budgetService) EvaluateCandidate(ctx context.Context, userID, category string, period domain.Period, candidateAmount decimal.Decimal) (*domain.BudgetEvaluation, error) {
	budgets, err := s.budgetRepo.FindActiveBudgets(ctx, userID, category, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for category %s in period %s: %w", category, period, err)
	}

	budget, err := ledger.SelectActiveBudget(budgets)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, nil
	}

	spent, err := s.spentInPeriod(ctx, userID, category, period)
	if err != nil {
		return nil, err
	}
	return ledger.Evaluate(budget, spent, candidateAmount)
}

// ListExceededBudgets returns an evaluation for every active budget of the
// period whose recorded spend already exceeds its limit.
func (s *budgetService) ListExceededBudgets(ctx context.Context, userID string, period domain.Period) ([]domain.BudgetEvaluation, error) {
	budgets, err := s.budgetRepo.ListActiveBudgetsForPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for period %s: %w", period, err)
	}
	if len(budgets) == 0 {
		return []domain.BudgetEvaluation{}, nil
	}

	expense := domain.Expense
	txns, err := s.txnRepo.ListTransactions(ctx, userID, portsrepo.TransactionListFilter{
		From: period.Start(),
		To:   period.End(),
		Type: expense,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for period %s: %w", period, err)
	}
	spentByCategory := ledger.AggregateByCategory(txns, &expense)

	exceeded := []domain.BudgetEvaluation{}
	for i := range budgets {
		// A zero candidate makes the evaluation a pure state check: the
		// projected total equals the recorded spend.
		evaluation, err := ledger.Evaluate(&budgets[i], spentByCategory[budgets[i].Category], decimal.Zero)
		if err != nil {
			return nil, err
		}
		if evaluation != nil {
			exceeded = append(exceeded, *evaluation)
		}
	}
	return exceeded, nil
}
