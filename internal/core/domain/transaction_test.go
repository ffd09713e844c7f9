package domain_test

import (
	"testing"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	valid := domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		Category:      "Food",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(10),
		Date:          time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
	}{
		{name: "valid expense", mutate: func(*domain.Transaction) {}},
		{name: "valid income", mutate: func(txn *domain.Transaction) { txn.Type = domain.Income }},
		{name: "zero amount", mutate: func(txn *domain.Transaction) { txn.Amount = decimal.Zero }, wantErr: true},
		{name: "negative amount", mutate: func(txn *domain.Transaction) { txn.Amount = decimal.NewFromInt(-5) }, wantErr: true},
		{name: "empty category", mutate: func(txn *domain.Transaction) { txn.Category = "" }, wantErr: true},
		{name: "unknown type", mutate: func(txn *domain.Transaction) { txn.Type = "TRANSFER" }, wantErr: true},
		{name: "zero date", mutate: func(txn *domain.Transaction) { txn.Date = time.Time{} }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txn := valid
			tc.mutate(&txn)
			err := txn.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionPeriod(t *testing.T) {
	txn := domain.Transaction{Date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, domain.Period{Year: 2025, Month: time.December}, txn.Period())
}
