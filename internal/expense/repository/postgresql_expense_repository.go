// Package repository provides data persistence implementations for expenses.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/expense-tracker/internal/database"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
	"github.com/allisson/expense-tracker/internal/expense/domain"
)

// PostgreSQLExpenseRepository handles expense persistence for PostgreSQL.
type PostgreSQLExpenseRepository struct {
	db *sql.DB
}

// NewPostgreSQLExpenseRepository creates a new PostgreSQLExpenseRepository.
func NewPostgreSQLExpenseRepository(db *sql.DB) *PostgreSQLExpenseRepository {
	return &PostgreSQLExpenseRepository{
		db: db,
	}
}

// Create inserts a new expense.
func (r *PostgreSQLExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO expenses (id, account_id, title, description, amount, category, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query,
		expense.ID, expense.AccountID, expense.Title, expense.Description,
		expense.Amount, expense.Category, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create expense")
	}
	return nil
}

// Get retrieves an expense by its identifier.
func (r *PostgreSQLExpenseRepository) Get(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error) {
	var expense domain.Expense
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, account_id, title, description, amount, category, created_at, updated_at
			  FROM expenses WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, expenseID).Scan(
		&expense.ID, &expense.AccountID, &expense.Title, &expense.Description,
		&expense.Amount, &expense.Category, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get expense")
	}

	return &expense, nil
}

// Update persists the mutable fields of an expense.
func (r *PostgreSQLExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE expenses
			  SET title = $1, description = $2, amount = $3, category = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		expense.Title, expense.Description, expense.Amount, expense.Category,
		expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update expense")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// Delete removes an expense by its identifier.
func (r *PostgreSQLExpenseRepository) Delete(ctx context.Context, expenseID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, expenseID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete expense")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// ListByAccount returns the account's expenses with created_at inside the
// half-open window, newest first.
func (r *PostgreSQLExpenseRepository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	window domain.DateWindow,
	offset, limit int,
) ([]*domain.Expense, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, account_id, title, description, amount, category, created_at, updated_at
			  FROM expenses
			  WHERE account_id = $1 AND created_at >= $2 AND created_at < $3
			  ORDER BY created_at DESC
			  LIMIT $4 OFFSET $5`

	rows, err := querier.QueryContext(ctx, query, accountID, window.Start, window.End, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list expenses")
	}
	defer func() { _ = rows.Close() }()

	var expenses []*domain.Expense
	for rows.Next() {
		var expense domain.Expense
		err := rows.Scan(
			&expense.ID, &expense.AccountID, &expense.Title, &expense.Description,
			&expense.Amount, &expense.Category, &expense.CreatedAt, &expense.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan expense")
		}
		expenses = append(expenses, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate expenses")
	}

	return expenses, nil
}

// SumByAccount returns the amount total and row count for the account's
// expenses inside the window.
func (r *PostgreSQLExpenseRepository) SumByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	window domain.DateWindow,
) (float64, int, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*)
			  FROM expenses
			  WHERE account_id = $1 AND created_at >= $2 AND created_at < $3`

	var total float64
	var count int
	err := querier.QueryRowContext(ctx, query, accountID, window.Start, window.End).Scan(&total, &count)
	if err != nil {
		return 0, 0, apperrors.Wrap(err, "failed to sum expenses")
	}

	return total, count, nil
}
