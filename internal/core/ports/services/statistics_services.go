package services

import (
	"context"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatisticsSvcFacade defines the aggregation queries exposed to handlers.
type StatisticsSvcFacade interface {
	// MonthlySummary computes income, expense and net balance for one period.
	MonthlySummary(ctx context.Context, userID string, period domain.Period) (*domain.PeriodSummary, error)

	// CategoryBreakdown computes per-category expense totals for one period
	// together with each category's percentage share of the total.
	CategoryBreakdown(ctx context.Context, userID string, period domain.Period) (amounts, percentages map[string]decimal.Decimal, err error)

	// SummaryByPeriod computes one summary per calendar month touched by the
	// date range, ordered chronologically.
	SummaryByPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.PeriodSummary, error)
}
