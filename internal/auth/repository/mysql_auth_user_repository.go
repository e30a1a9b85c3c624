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

// MySQLAuthUserRepository handles credential persistence for MySQL.
type MySQLAuthUserRepository struct {
	db *sql.DB
}

// NewMySQLAuthUserRepository creates a new MySQLAuthUserRepository.
func NewMySQLAuthUserRepository(db *sql.DB) *MySQLAuthUserRepository {
	return &MySQLAuthUserRepository{
		db: db,
	}
}

// Create inserts a new credential record.
func (r *MySQLAuthUserRepository) Create(ctx context.Context, user *domain.AuthUser) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO auth_users (id, username, email, password_hash, role, account_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	accountIDBytes, err := user.AccountID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, user.Username, user.Email, user.PasswordHash, user.Role,
		accountIDBytes, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create auth user")
	}
	return nil
}

// GetByUsername retrieves a credential record by username.
func (r *MySQLAuthUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AuthUser, error) {
	query := `SELECT id, username, email, password_hash, role, account_id, created_at, updated_at
			  FROM auth_users WHERE username = ?`
	return r.getByQuery(ctx, query, username)
}

// GetByUsernameOrEmail retrieves a credential record matching the identifier
// against either the username or the email address.
func (r *MySQLAuthUserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.AuthUser, error) {
	query := `SELECT id, username, email, password_hash, role, account_id, created_at, updated_at
			  FROM auth_users WHERE username = ? OR email = ?`
	return r.getByQuery(ctx, query, identifier, identifier)
}

func (r *MySQLAuthUserRepository) getByQuery(ctx context.Context, query string, args ...any) (*domain.AuthUser, error) {
	var user domain.AuthUser
	querier := database.GetTx(ctx, r.db)

	var idBytes, accountIDBytes []byte
	err := querier.QueryRowContext(ctx, query, args...).Scan(
		&idBytes, &user.Username, &user.Email, &user.PasswordHash, &user.Role,
		&accountIDBytes, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuthUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get auth user")
	}

	// Convert bytes back to UUIDs
	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := user.AccountID.UnmarshalBinary(accountIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
