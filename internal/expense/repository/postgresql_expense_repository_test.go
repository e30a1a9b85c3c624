package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
	"github.com/allisson/expense-tracker/internal/expense/domain"
)

var expenseColumns = []string{
	"id", "account_id", "title", "description", "amount", "category", "created_at", "updated_at",
}

func newExpenseFixture() *domain.Expense {
	now := time.Date(2025, 11, 12, 16, 30, 0, 0, time.UTC)
	return &domain.Expense{
		ID:          uuid.Must(uuid.NewV7()),
		AccountID:   uuid.Must(uuid.NewV7()),
		Title:       "Groceries run",
		Description: "weekly shop",
		Amount:      42.50,
		Category:    domain.CategoryGroceries,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newTestWindow() domain.DateWindow {
	return domain.DateWindow{
		Start: time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestPostgreSQLExpenseRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expense := newExpenseFixture()
		mock.ExpectExec("INSERT INTO expenses").
			WithArgs(expense.ID, expense.AccountID, expense.Title, expense.Description,
				expense.Amount, expense.Category, expense.CreatedAt, expense.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLExpenseRepository(db)
		err = repo.Create(ctx, expense)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DatabaseFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO expenses").
			WillReturnError(errors.New("connection refused"))

		repo := NewPostgreSQLExpenseRepository(db)
		err = repo.Create(ctx, newExpenseFixture())

		assert.Error(t, err)
	})
}

func TestPostgreSQLExpenseRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expected := newExpenseFixture()
		rows := sqlmock.NewRows(expenseColumns).AddRow(
			expected.ID, expected.AccountID, expected.Title, expected.Description,
			expected.Amount, expected.Category, expected.CreatedAt, expected.UpdatedAt,
		)
		mock.ExpectQuery(`FROM expenses WHERE id = \$1`).
			WithArgs(expected.ID).
			WillReturnRows(rows)

		repo := NewPostgreSQLExpenseRepository(db)
		expense, err := repo.Get(ctx, expected.ID)

		assert.NoError(t, err)
		assert.Equal(t, expected.ID, expense.ID)
		assert.Equal(t, expected.AccountID, expense.AccountID)
		assert.Equal(t, expected.Amount, expense.Amount)
		assert.Equal(t, domain.CategoryGroceries, expense.Category)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		unknownID := uuid.Must(uuid.NewV7())
		mock.ExpectQuery(`FROM expenses WHERE id = \$1`).
			WithArgs(unknownID).
			WillReturnRows(sqlmock.NewRows(expenseColumns))

		repo := NewPostgreSQLExpenseRepository(db)
		expense, err := repo.Get(ctx, unknownID)

		assert.Nil(t, expense)
		assert.Equal(t, domain.ErrExpenseNotFound, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestPostgreSQLExpenseRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expense := newExpenseFixture()
		mock.ExpectExec("UPDATE expenses").
			WithArgs(expense.Title, expense.Description, expense.Amount, expense.Category,
				expense.UpdatedAt, expense.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLExpenseRepository(db)
		err = repo.Update(ctx, expense)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NoRowsAffected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE expenses").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLExpenseRepository(db)
		err = repo.Update(ctx, newExpenseFixture())

		assert.Equal(t, domain.ErrExpenseNotFound, err)
	})
}

func TestPostgreSQLExpenseRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expenseID := uuid.Must(uuid.NewV7())
		mock.ExpectExec("DELETE FROM expenses").
			WithArgs(expenseID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLExpenseRepository(db)
		err = repo.Delete(ctx, expenseID)

		assert.NoError(t, err)
	})

	t.Run("Error_NoRowsAffected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM expenses").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLExpenseRepository(db)
		err = repo.Delete(ctx, uuid.Must(uuid.NewV7()))

		assert.Equal(t, domain.ErrExpenseNotFound, err)
	})
}

func TestPostgreSQLExpenseRepository_ListByAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expected := newExpenseFixture()
		window := newTestWindow()
		rows := sqlmock.NewRows(expenseColumns).AddRow(
			expected.ID, expected.AccountID, expected.Title, expected.Description,
			expected.Amount, expected.Category, expected.CreatedAt, expected.UpdatedAt,
		)
		mock.ExpectQuery(`FROM expenses\s+WHERE account_id = \$1 AND created_at >= \$2 AND created_at < \$3`).
			WithArgs(expected.AccountID, window.Start, window.End, 50, 0).
			WillReturnRows(rows)

		repo := NewPostgreSQLExpenseRepository(db)
		expenses, err := repo.ListByAccount(ctx, expected.AccountID, window, 0, 50)

		assert.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, expected.ID, expenses[0].ID)
	})

	t.Run("Success_EmptyWindow", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		accountID := uuid.Must(uuid.NewV7())
		window := newTestWindow()
		mock.ExpectQuery(`FROM expenses`).
			WillReturnRows(sqlmock.NewRows(expenseColumns))

		repo := NewPostgreSQLExpenseRepository(db)
		expenses, err := repo.ListByAccount(ctx, accountID, window, 0, 50)

		assert.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestPostgreSQLExpenseRepository_SumByAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		accountID := uuid.Must(uuid.NewV7())
		window := newTestWindow()
		rows := sqlmock.NewRows([]string{"total", "count"}).AddRow(128.75, 4)
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\), COUNT\(\*\)`).
			WithArgs(accountID, window.Start, window.End).
			WillReturnRows(rows)

		repo := NewPostgreSQLExpenseRepository(db)
		total, count, err := repo.SumByAccount(ctx, accountID, window)

		assert.NoError(t, err)
		assert.Equal(t, 128.75, total)
		assert.Equal(t, 4, count)
	})

	t.Run("Success_NoExpenses", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"total", "count"}).AddRow(0.0, 0)
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\), COUNT\(\*\)`).
			WillReturnRows(rows)

		repo := NewPostgreSQLExpenseRepository(db)
		total, count, err := repo.SumByAccount(ctx, uuid.Must(uuid.NewV7()), newTestWindow())

		assert.NoError(t, err)
		assert.Equal(t, 0.0, total)
		assert.Equal(t, 0, count)
	})
}
