package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an income or an expense.
// The sign of a transaction is carried by its type, never by its amount.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// ErrInvalidTransaction indicates a transaction that failed construction-time validation.
var ErrInvalidTransaction = errors.New("invalid transaction")

// IsValid reports whether the type is one of the two known variants.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single income or expense event recorded by a user.
// Category is an open, user-defined vocabulary, not a fixed set.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID); empty until persisted
	UserID        string          `json:"userID"`        // Owning user (Not Null)
	Category      string          `json:"category"`      // Free-form, non-empty
	Type          TransactionType `json:"type"`          // INCOME or EXPENSE
	Amount        decimal.Decimal `json:"amount"`        // Always positive
	Date          time.Time       `json:"date"`          // Calendar date, no time component
	Note          string          `json:"note"`          // Nullable
	AuditFields
}

// Validate checks the construction invariants of a transaction.
// Amount must be strictly positive, the category non-empty, the type known
// and the date set. Violations wrap ErrInvalidTransaction.
func (t Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidTransaction, t.Amount)
	}
	if t.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidTransaction)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidTransaction, t.Type)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	return nil
}

// Period returns the year-month period the transaction falls into.
func (t Transaction) Period() Period {
	return PeriodOf(t.Date)
}
