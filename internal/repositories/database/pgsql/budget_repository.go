package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	"github.com/arionfin/arion-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepository
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// Helper to convert domain.Budget to models.Budget for DB storage
func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		UserID:      d.UserID,
		Category:    d.Category,
		LimitAmount: d.LimitAmount,
		Period:      d.Period.String(),
		IsActive:    d.Active,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Budget from DB to domain.Budget. The period
// column is constrained to the "YYYY-MM" form, so a parse failure means the
// row is corrupt.
func toDomainBudget(m models.Budget) (domain.Budget, error) {
	period, err := domain.ParsePeriod(m.Period)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("budget %s has malformed period %q: %w", m.BudgetID, m.Period, err)
	}
	return domain.Budget{
		BudgetID:    m.BudgetID,
		UserID:      m.UserID,
		Category:    m.Category,
		LimitAmount: m.LimitAmount,
		Period:      period,
		Active:      m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

const budgetColumns = `budget_id, user_id, category, limit_amount, period, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.LimitAmount,
		&m.Period,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBudget inserts a new budget. The partial unique index on active
// budgets surfaces as a duplicate error here.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Category,
		m.LimitAmount,
		m.Period,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: active budget for category %s in period %s already exists", apperrors.ErrDuplicate, m.Category, m.Period)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE budget_id = $1;
	`
	m, err := scanBudget(r.pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}
	d, err := toDomainBudget(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxBudgetRepository) queryBudgets(ctx context.Context, query string, args ...any) ([]domain.Budget, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		d, err := toDomainBudget(m)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}
	return budgets, nil
}

// ListActiveBudgets retrieves all active budgets for a user, newest period first.
func (r *PgxBudgetRepository) ListActiveBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY period DESC, category ASC;
	`
	return r.queryBudgets(ctx, query, userID)
}

// ListActiveBudgetsForPeriod retrieves a user's active budgets for one period.
func (r *PgxBudgetRepository) ListActiveBudgetsForPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND period = $2 AND is_active = TRUE
		ORDER BY category ASC;
	`
	return r.queryBudgets(ctx, query, userID, period.String())
}

// FindActiveBudgets retrieves the active budgets for one
// (user, category, period). Every matching row is returned so the caller
// can detect duplicate active budgets.
func (r *PgxBudgetRepository) FindActiveBudgets(ctx context.Context, userID, category string, period domain.Period) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND category = $2 AND period = $3 AND is_active = TRUE;
	`
	return r.queryBudgets(ctx, query, userID, category, period.String())
}

// UpdateBudget updates an existing budget, including the active flag.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		UPDATE budgets
		SET category = $2, limit_amount = $3, period = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE budget_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.Category,
		m.LimitAmount,
		m.Period,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: active budget for category %s in period %s already exists", apperrors.ErrDuplicate, m.Category, m.Period)
		}
		return fmt.Errorf("failed to execute update budget %s: %w", m.BudgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, budgetID)
	if err != nil {
		return fmt.Errorf("failed to execute delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
