// Package repository provides data persistence implementations for accounts
// and credential records.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/database"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

// PostgreSQLAuthUserRepository handles credential persistence for PostgreSQL.
type PostgreSQLAuthUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuthUserRepository creates a new PostgreSQLAuthUserRepository.
func NewPostgreSQLAuthUserRepository(db *sql.DB) *PostgreSQLAuthUserRepository {
	return &PostgreSQLAuthUserRepository{
		db: db,
	}
}

// Create inserts a new credential record.
func (r *PostgreSQLAuthUserRepository) Create(ctx context.Context, user *domain.AuthUser) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO auth_users (id, username, email, password_hash, role, account_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role,
		user.AccountID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create auth user")
	}
	return nil
}

// GetByUsername retrieves a credential record by username.
func (r *PostgreSQLAuthUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AuthUser, error) {
	var user domain.AuthUser
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, email, password_hash, role, account_id, created_at, updated_at
			  FROM auth_users WHERE username = $1`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.AccountID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuthUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get auth user by username")
	}

	return &user, nil
}

// GetByUsernameOrEmail retrieves a credential record matching the identifier
// against either the username or the email address.
func (r *PostgreSQLAuthUserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.AuthUser, error) {
	var user domain.AuthUser
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, email, password_hash, role, account_id, created_at, updated_at
			  FROM auth_users WHERE username = $1 OR email = $1`

	err := querier.QueryRowContext(ctx, query, identifier).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&user.AccountID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuthUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get auth user by identifier")
	}

	return &user, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
