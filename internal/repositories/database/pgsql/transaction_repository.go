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

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction for DB storage
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		Category:        d.Category,
		TransactionType: models.TransactionType(d.Type),
		Amount:          d.Amount,
		Date:            d.Date,
		Note:            d.Note,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Transaction from DB to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Category:      m.Category,
		Type:          domain.TransactionType(m.TransactionType),
		Amount:        m.Amount,
		Date:          m.Date,
		Note:          m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const transactionColumns = `transaction_id, user_id, category, transaction_type, amount, date, note, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Category,
		&m.TransactionType,
		&m.Amount,
		&m.Date,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Category,
		m.TransactionType,
		m.Amount,
		m.Date,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves a user's transactions matching the filter,
// newest date first with insertion order breaking ties.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}
	argPos := 2

	if !filter.From.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, filter.From)
		argPos++
	}
	if !filter.To.IsZero() {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, filter.To)
		argPos++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND transaction_type = $%d", argPos)
		args = append(args, string(filter.Type))
	}
	query += " ORDER BY date DESC, created_at ASC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, rows.Err())
	}
	return txns, nil
}

// UpdateTransaction updates an existing transaction in the database.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET category = $2, transaction_type = $3, amount = $4, date = $5, note = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.Category,
		m.TransactionType,
		m.Amount,
		m.Date,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to execute delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
