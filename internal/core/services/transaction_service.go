package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
)

var ErrBudgetExceeded = errors.New("expense would exceed the active budget limit")

// transactionService records and maintains a user's transactions. New
// expenses are checked against the active budget before anything is stored.
type transactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepository
	budgetSvc portssvc.BudgetSvcFacade
	alerts    portssvc.BudgetAlertPublisher
}

// NewTransactionService creates a new TransactionService. alerts may be nil
// when no alert transport is configured.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, budgetSvc portssvc.BudgetSvcFacade, alerts portssvc.BudgetAlertPublisher) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:   txnRepo,
		budgetSvc: budgetSvc,
		alerts:    alerts,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and records a new transaction. Expenses are
// evaluated against the category's budget for the transaction's month before
// persisting. An unconfirmed breach stores nothing and returns the
// evaluation with apperrors.ErrConflict so the caller can ask the user; a
// confirmed breach is stored and the evaluation returned for display.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.BudgetEvaluation, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid date %q, expected %s", apperrors.ErrValidation, req.Date, dto.DateLayout)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Category:      req.Category,
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Date:          date,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	var evaluation *domain.BudgetEvaluation
	if txn.Type == domain.Expense {
		evaluation, err = s.budgetSvc.EvaluateCandidate(ctx, userID, txn.Category, txn.Period(), txn.Amount)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to evaluate budget for transaction: %w", err)
		}
		if evaluation != nil && !req.ConfirmOverLimit {
			s.LogInfo(ctx, "Expense rejected pending over-limit confirmation",
				slog.String("category", txn.Category),
				slog.String("period", evaluation.Period.String()),
				slog.String("excess", evaluation.ExcessAmount.String()),
			)
			return nil, evaluation, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrBudgetExceeded)
		}
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, nil, err
	}

	if evaluation != nil {
		s.publishBudgetAlert(ctx, userID, *evaluation)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category),
	)
	return &txn, evaluation, nil
}

// publishBudgetAlert delivers a breach alert. Delivery is best-effort: a
// failure is logged and never propagated to the transaction flow.
func (s *transactionService) publishBudgetAlert(ctx context.Context, userID string, evaluation domain.BudgetEvaluation) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.PublishBudgetExceeded(ctx, userID, evaluation); err != nil {
		s.LogError(ctx, err, "Failed to publish budget exceeded alert",
			slog.String("category", evaluation.Category),
			slog.String("period", evaluation.Period.String()),
		)
	}
}

// getOwnedTransaction fetches a transaction and verifies ownership.
func (s *transactionService) getOwnedTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return txn, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.getOwnedTransaction(ctx, userID, transactionID)
}

// ListTransactions retrieves the user's transactions matching the params.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionListFilter{
		Category: params.Category,
		Type:     domain.TransactionType(params.Type),
	}
	if params.From != "" {
		from, err := time.Parse(dto.DateLayout, params.From)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, params.From)
		}
		filter.From = from
	}
	if params.To != "" {
		to, err := time.Parse(dto.DateLayout, params.To)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, params.To)
		}
		filter.To = to
	}
	return s.txnRepo.ListTransactions(ctx, userID, filter)
}

// UpdateTransaction edits an existing transaction. Edits are deliberately
// not re-evaluated against budgets; only new expense entries are checked.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.getOwnedTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q, expected %s", apperrors.ErrValidation, *req.Date, dto.DateLayout)
		}
		txn.Date = date
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if _, err := s.getOwnedTransaction(ctx, userID, transactionID); err != nil {
		return err
	}
	return s.txnRepo.DeleteTransaction(ctx, transactionID)
}
