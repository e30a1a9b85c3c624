package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/database"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

// PostgreSQLAccountRepository handles account persistence for PostgreSQL.
type PostgreSQLAccountRepository struct {
	db *sql.DB
}

// NewPostgreSQLAccountRepository creates a new PostgreSQLAccountRepository.
func NewPostgreSQLAccountRepository(db *sql.DB) *PostgreSQLAccountRepository {
	return &PostgreSQLAccountRepository{
		db: db,
	}
}

// Create inserts a new account.
func (r *PostgreSQLAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO accounts (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := querier.ExecContext(ctx, query, account.ID, account.Name, account.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "account already exists")
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}
