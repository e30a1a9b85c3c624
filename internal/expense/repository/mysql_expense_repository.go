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

// MySQLExpenseRepository handles expense persistence for MySQL.
type MySQLExpenseRepository struct {
	db *sql.DB
}

// NewMySQLExpenseRepository creates a new MySQLExpenseRepository.
func NewMySQLExpenseRepository(db *sql.DB) *MySQLExpenseRepository {
	return &MySQLExpenseRepository{
		db: db,
	}
}

// Create inserts a new expense.
func (r *MySQLExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO expenses (id, account_id, title, description, amount, category, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := expense.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	accountIDBytes, err := expense.AccountID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, accountIDBytes, expense.Title, expense.Description,
		expense.Amount, expense.Category, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create expense")
	}
	return nil
}

// Get retrieves an expense by its identifier.
func (r *MySQLExpenseRepository) Get(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := expenseID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT id, account_id, title, description, amount, category, created_at, updated_at
			  FROM expenses WHERE id = ?`

	expense, err := scanExpense(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get expense")
	}

	return expense, nil
}

// Update persists the mutable fields of an expense.
func (r *MySQLExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := expense.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE expenses
			  SET title = ?, description = ?, amount = ?, category = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		expense.Title, expense.Description, expense.Amount, expense.Category,
		expense.UpdatedAt, idBytes,
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
func (r *MySQLExpenseRepository) Delete(ctx context.Context, expenseID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := expenseID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `DELETE FROM expenses WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, idBytes)
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
func (r *MySQLExpenseRepository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	window domain.DateWindow,
	offset, limit int,
) ([]*domain.Expense, error) {
	querier := database.GetTx(ctx, r.db)

	accountIDBytes, err := accountID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT id, account_id, title, description, amount, category, created_at, updated_at
			  FROM expenses
			  WHERE account_id = ? AND created_at >= ? AND created_at < ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, accountIDBytes, window.Start, window.End, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list expenses")
	}
	defer func() { _ = rows.Close() }()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan expense")
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate expenses")
	}

	return expenses, nil
}

// SumByAccount returns the amount total and row count for the account's
// expenses inside the window.
func (r *MySQLExpenseRepository) SumByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	window domain.DateWindow,
) (float64, int, error) {
	querier := database.GetTx(ctx, r.db)

	accountIDBytes, err := accountID.MarshalBinary()
	if err != nil {
		return 0, 0, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*)
			  FROM expenses
			  WHERE account_id = ? AND created_at >= ? AND created_at < ?`

	var total float64
	var count int
	err = querier.QueryRowContext(ctx, query, accountIDBytes, window.Start, window.End).Scan(&total, &count)
	if err != nil {
		return 0, 0, apperrors.Wrap(err, "failed to sum expenses")
	}

	return total, count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanExpense reads one expense row, converting BINARY(16) columns back to UUIDs.
func scanExpense(row rowScanner) (*domain.Expense, error) {
	var expense domain.Expense
	var idBytes, accountIDBytes []byte

	err := row.Scan(
		&idBytes, &accountIDBytes, &expense.Title, &expense.Description,
		&expense.Amount, &expense.Category, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := expense.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := expense.AccountID.UnmarshalBinary(accountIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &expense, nil
}
