package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container at startup.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	BudgetRepo      BudgetRepository
	UserRepo        UserRepository
}
