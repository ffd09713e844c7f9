package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/ledger"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// statisticsService answers aggregation queries over a user's transactions.
type statisticsService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(txnRepo portsrepo.TransactionRepository) portssvc.StatisticsSvcFacade {
	return &statisticsService{txnRepo: txnRepo}
}

// Ensure statisticsService implements the portssvc.StatisticsSvcFacade interface
var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

func (s *statisticsService) loadPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, userID, portsrepo.TransactionListFilter{
		From: period.Start(),
		To:   period.End(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for period %s: %w", period, err)
	}
	return txns, nil
}

// MonthlySummary computes income, expense and net balance for one period.
func (s *statisticsService) MonthlySummary(ctx context.Context, userID string, period domain.Period) (*domain.PeriodSummary, error) {
	txns, err := s.loadPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	summary := ledger.CompileSummary(txns, &period)
	return &summary, nil
}

// CategoryBreakdown computes per-category expense totals for one period
// together with each category's percentage share of the total.
func (s *statisticsService) CategoryBreakdown(ctx context.Context, userID string, period domain.Period) (map[string]decimal.Decimal, map[string]decimal.Decimal, error) {
	txns, err := s.loadPeriod(ctx, userID, period)
	if err != nil {
		return nil, nil, err
	}
	amounts := ledger.CategoryExpenseBreakdown(txns, &period)
	return amounts, ledger.BreakdownPercentages(amounts), nil
}

// SummaryByPeriod computes one summary per calendar month touched by the
// date range, ordered chronologically. Months without transactions appear
// with zero totals.
func (s *statisticsService) SummaryByPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.PeriodSummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes range start", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID, portsrepo.TransactionListFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for range: %w", err)
	}
	byPeriod := ledger.AggregateByPeriod(txns)

	summaries := []domain.PeriodSummary{}
	last := domain.PeriodOf(to)
	for period := domain.PeriodOf(from); !last.Before(period); period = domain.PeriodOf(period.Start().AddDate(0, 1, 0)) {
		summary, ok := byPeriod[period]
		if !ok {
			summary = domain.PeriodSummary{Period: period}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
