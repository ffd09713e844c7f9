package services

import (
	"context"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/dto"
)

// TransactionSvcFacade defines the transaction operations exposed to handlers.
type TransactionSvcFacade interface {
	// CreateTransaction validates and records a new transaction. New expenses
	// are evaluated against the category's active budget for the month
	// BEFORE being persisted; when the limit would be breached and the
	// request does not confirm the overrun, nothing is stored and the
	// evaluation is returned alongside apperrors.ErrConflict so the caller
	// can ask the user to confirm. A confirmed breach persists the
	// transaction and still returns the evaluation for display.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.BudgetEvaluation, error)

	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions matching the params.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// UpdateTransaction edits an existing transaction. Edits are not
	// re-evaluated against budgets; only new expense entries are checked.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the user's transactions.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
