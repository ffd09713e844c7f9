package pgsql

import (
	"context"
	"database/sql"
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

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuthProvider: d.AuthProvider,
		ProviderID:   d.ProviderID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuthProvider: m.AuthProvider,
		ProviderID:   m.ProviderID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const userColumns = `user_id, username, email, password_hash, auth_provider, provider_id, created_at, created_by, last_updated_at, last_updated_by`

// scanUser reads one user row. password_hash, auth_provider and provider_id
// are nullable for external auth accounts.
func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	var passwordHash, authProvider, providerID sql.NullString
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&passwordHash,
		&authProvider,
		&providerID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	m.PasswordHash = passwordHash.String
	m.AuthProvider = authProvider.String
	m.ProviderID = providerID.String
	return m, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		nullIfEmpty(m.PasswordHash),
		nullIfEmpty(m.AuthProvider),
		nullIfEmpty(m.ProviderID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) findUserBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ` + column + ` = $1;
	`
	m, err := scanUser(r.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}
	d := toDomainUser(m)
	return &d, nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUserBy(ctx, "username", username)
}

// FindUserByEmail retrieves a user by email address.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// UpdateUser updates an existing user in the database.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)

	query := `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		nullIfEmpty(m.PasswordHash),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update user %s: %w", m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes a user and, via cascade, their transactions and budgets.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE user_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to execute delete user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
