package ledger_test

import (
	"testing"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBudget(limit string) *domain.Budget {
	return &domain.Budget{
		BudgetID:    "budget-1",
		UserID:      "user-1",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString(limit),
		Period:      domain.Period{Year: 2025, Month: time.March},
		Active:      true,
	}
}

func TestEvaluate_NoBudgetConfigured(t *testing.T) {
	evaluation, err := ledger.Evaluate(nil, decimal.NewFromInt(50), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Nil(t, evaluation)
}

func TestEvaluate_ExactlyAtLimitIsNotABreach(t *testing.T) {
	// 80 + 20 lands exactly on the limit; only strictly greater breaches.
	evaluation, err := ledger.Evaluate(testBudget("100"), decimal.NewFromInt(80), decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.Nil(t, evaluation)
}

func TestEvaluate_JustOverLimit(t *testing.T) {
	evaluation, err := ledger.Evaluate(testBudget("100"), decimal.NewFromInt(80), decimal.RequireFromString("20.01"))
	require.NoError(t, err)
	require.NotNil(t, evaluation)

	assert.True(t, evaluation.ExcessAmount.Equal(decimal.RequireFromString("0.01")), "excess was %s", evaluation.ExcessAmount)
	assert.True(t, evaluation.ProjectedTotal.Equal(decimal.RequireFromString("100.01")))
	assert.True(t, evaluation.PercentageOfLimit.Equal(decimal.RequireFromString("100.01")))
}

func TestEvaluate_BreachSnapshot(t *testing.T) {
	// Two recorded expenses of 50 and 40 against a limit of 80, then a
	// candidate of 10: projected 100, excess 20, 125% of the limit.
	evaluation, err := ledger.Evaluate(testBudget("80"), decimal.NewFromInt(90), decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NotNil(t, evaluation)

	assert.Equal(t, "Food", evaluation.Category)
	assert.Equal(t, domain.Period{Year: 2025, Month: time.March}, evaluation.Period)
	assert.True(t, evaluation.CurrentSpent.Equal(decimal.NewFromInt(90)))
	assert.True(t, evaluation.CandidateAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, evaluation.ProjectedTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, evaluation.ExcessAmount.Equal(decimal.NewFromInt(20)))
	assert.True(t, evaluation.PercentageOfLimit.Equal(decimal.NewFromInt(125)))
}

func TestEvaluate_NonPositiveLimitRejected(t *testing.T) {
	_, err := ledger.Evaluate(testBudget("0"), decimal.Zero, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)
}

func TestSelectActiveBudget(t *testing.T) {
	active := *testBudget("100")
	inactive := *testBudget("200")
	inactive.BudgetID = "budget-2"
	inactive.Active = false

	t.Run("no budgets", func(t *testing.T) {
		selected, err := ledger.SelectActiveBudget(nil)
		require.NoError(t, err)
		assert.Nil(t, selected)
	})

	t.Run("inactive budgets are skipped", func(t *testing.T) {
		selected, err := ledger.SelectActiveBudget([]domain.Budget{inactive, active})
		require.NoError(t, err)
		require.NotNil(t, selected)
		assert.Equal(t, "budget-1", selected.BudgetID)
	})

	t.Run("duplicate active budgets are an integrity error", func(t *testing.T) {
		second := active
		second.BudgetID = "budget-3"
		_, err := ledger.SelectActiveBudget([]domain.Budget{active, second})
		assert.ErrorIs(t, err, ledger.ErrAmbiguousBudget)
	})
}
