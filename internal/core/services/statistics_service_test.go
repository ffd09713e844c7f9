package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	"github.com/arionfin/arion-backend/internal/core/services"
)

func TestMonthlySummary(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	svc := services.NewStatisticsService(mockTxnRepo)

	mockTxnRepo.On("ListTransactions", ctx, "user-1", portsrepo.TransactionListFilter{
		From: marchPeriod.Start(),
		To:   marchPeriod.End(),
	}).Return([]domain.Transaction{
		expenseTxn("Food", "120", "2025-03-05"),
		{
			TransactionID: "txn-salary",
			UserID:        "user-1",
			Category:      "Salary",
			Type:          domain.Income,
			Amount:        decimal.NewFromInt(3000),
			Date:          time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC),
		},
	}, nil).Once()

	summary, err := svc.MonthlySummary(ctx, "user-1", marchPeriod)
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(120)))
	assert.True(t, summary.NetBalance().Equal(decimal.NewFromInt(2880)))
	mockTxnRepo.AssertExpectations(t)
}

func TestCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	mockTxnRepo := new(MockTransactionRepository)
	svc := services.NewStatisticsService(mockTxnRepo)

	mockTxnRepo.On("ListTransactions", ctx, "user-1", mock.AnythingOfType("repositories.TransactionListFilter")).
		Return([]domain.Transaction{
			expenseTxn("Food", "75", "2025-03-05"),
			expenseTxn("Rent", "25", "2025-03-01"),
		}, nil).Once()

	amounts, percentages, err := svc.CategoryBreakdown(ctx, "user-1", marchPeriod)
	require.NoError(t, err)
	assert.True(t, amounts["Food"].Equal(decimal.NewFromInt(75)))
	assert.True(t, percentages["Food"].Equal(decimal.NewFromInt(75)))
	assert.True(t, percentages["Rent"].Equal(decimal.NewFromInt(25)))
}

func TestSummaryByPeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("empty months appear with zero totals", func(t *testing.T) {
		mockTxnRepo := new(MockTransactionRepository)
		svc := services.NewStatisticsService(mockTxnRepo)

		from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
		mockTxnRepo.On("ListTransactions", ctx, "user-1", portsrepo.TransactionListFilter{From: from, To: to}).
			Return([]domain.Transaction{expenseTxn("Food", "100", "2025-01-15")}, nil).Once()

		summaries, err := svc.SummaryByPeriod(ctx, "user-1", from, to)
		require.NoError(t, err)
		require.Len(t, summaries, 3)

		assert.Equal(t, domain.Period{Year: 2025, Month: time.January}, summaries[0].Period)
		assert.True(t, summaries[0].TotalExpense.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, domain.Period{Year: 2025, Month: time.February}, summaries[1].Period)
		assert.True(t, summaries[1].TotalExpense.IsZero())
		assert.Equal(t, domain.Period{Year: 2025, Month: time.March}, summaries[2].Period)
		assert.True(t, summaries[2].TotalIncome.IsZero())
	})

	t.Run("range spanning a year boundary", func(t *testing.T) {
		mockTxnRepo := new(MockTransactionRepository)
		svc := services.NewStatisticsService(mockTxnRepo)

		from := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
		mockTxnRepo.On("ListTransactions", ctx, "user-1", mock.AnythingOfType("repositories.TransactionListFilter")).
			Return([]domain.Transaction{}, nil).Once()

		summaries, err := svc.SummaryByPeriod(ctx, "user-1", from, to)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, domain.Period{Year: 2024, Month: time.December}, summaries[0].Period)
		assert.Equal(t, domain.Period{Year: 2025, Month: time.January}, summaries[1].Period)
	})

	t.Run("inverted range", func(t *testing.T) {
		mockTxnRepo := new(MockTransactionRepository)
		svc := services.NewStatisticsService(mockTxnRepo)

		from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.SummaryByPeriod(ctx, "user-1", from, to)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockTxnRepo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
	})
}
