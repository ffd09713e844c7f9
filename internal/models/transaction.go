package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction represents one row of the transactions table.
// Amount is always positive; TransactionType carries the direction.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`        // FK -> User.userID (Not Null)
	Category        string          `json:"category"`
	TransactionType TransactionType `json:"transactionType"` // INCOME or EXPENSE (Not Null)
	Amount          decimal.Decimal `json:"amount"`          // Positive value; precise decimal type
	Date            time.Time       `json:"date"`            // Calendar date the transaction occurred
	Note            string          `json:"note"`            // Nullable
	AuditFields
}
