package services

import (
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. alerts may be nil when no alert transport is
// configured; renderers is keyed by lowercase format name.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, alerts portssvc.BudgetAlertPublisher, renderers map[string]portssvc.ReportRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Budget service first since the transaction service evaluates through it
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Budget, alerts)
	container.Statistics = NewStatisticsService(repos.TransactionRepo)
	container.Report = NewReportService(repos.TransactionRepo, repos.UserRepo, renderers)
	container.User = NewUserService(repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg, container.User)

	return container
}
