package dto

import (
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the payload for recording a transaction.
// ConfirmOverLimit acknowledges a previously returned budget warning; without
// it an expense that breaches its budget is rejected so the user can cancel.
type CreateTransactionRequest struct {
	Category         string          `json:"category" binding:"required"`
	Type             string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Date             string          `json:"date" binding:"required"`
	Note             string          `json:"note"`
	ConfirmOverLimit bool            `json:"confirmOverLimit"`
}

// UpdateTransactionRequest defines the data allowed for editing a
// transaction. Pointers differentiate omitted fields from zero values.
type UpdateTransactionRequest struct {
	Category *string          `json:"category"`
	Type     *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     *string          `json:"date"`
	Note     *string          `json:"note"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Category string `form:"category"`
	Type     string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Category      string          `json:"category"`
	Type          string          `json:"type"` // INCOME or EXPENSE
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateTransactionResponse bundles the stored transaction with the budget
// warning produced during evaluation, if any.
type CreateTransactionResponse struct {
	Transaction   TransactionResponse       `json:"transaction"`
	BudgetWarning *BudgetEvaluationResponse `json:"budgetWarning,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Category:      txn.Category,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Date:          txn.Date.Format(DateLayout),
		Note:          txn.Note,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
