package repositories

import (
	"context"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// TransactionListFilter narrows transaction listings. Zero values mean "no
// filter" for the optional fields.
type TransactionListFilter struct {
	From     time.Time
	To       time.Time
	Category string
	Type     domain.TransactionType
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a user's transactions matching the filter,
	// ordered by date descending then by insertion order.
	ListTransactions(ctx context.Context, userID string, filter TransactionListFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines all transaction repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
