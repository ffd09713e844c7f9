package services

import (
	"context"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// BudgetAlertPublisher delivers budget breach evaluations to whatever
// surfaces them to the user (message queue, notification log). Publishing is
// best-effort: the transaction flow never fails because an alert could not
// be delivered.
type BudgetAlertPublisher interface {
	PublishBudgetExceeded(ctx context.Context, userID string, evaluation domain.BudgetEvaluation) error
	Close() error
}
