package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/database"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

// MySQLAccountRepository handles account persistence for MySQL.
type MySQLAccountRepository struct {
	db *sql.DB
}

// NewMySQLAccountRepository creates a new MySQLAccountRepository.
func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{
		db: db,
	}
}

// Create inserts a new account.
func (r *MySQLAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO accounts (id, name, created_at) VALUES (?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	idBytes, err := account.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, idBytes, account.Name, account.CreatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "account already exists")
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}
