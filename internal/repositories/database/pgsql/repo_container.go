package pgsql

import (
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo: transactionRepo,
		BudgetRepo:      budgetRepo,
		UserRepo:        userRepo,
	}
}
