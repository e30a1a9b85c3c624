package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/expense/domain"
)

// ExpenseUseCase defines the business logic for expense operations.
//
// Every single-resource operation takes the requesting principal and applies
// the ownership check: the expense must belong to the principal's account.
// The outcomes are deliberately distinct: an unknown identifier is not found,
// an expense owned by another account is forbidden.
type ExpenseUseCase interface {
	// Create stores a new expense owned by the principal's account.
	Create(ctx context.Context, principal *authDomain.Principal, input *domain.CreateExpenseInput) (*domain.Expense, error)

	// Get retrieves a single expense after the ownership check.
	Get(ctx context.Context, principal *authDomain.Principal, expenseID uuid.UUID) (*domain.Expense, error)

	// Update modifies an expense after the ownership check. Nil input fields
	// are left unchanged.
	Update(ctx context.Context, principal *authDomain.Principal, expenseID uuid.UUID, input *domain.UpdateExpenseInput) (*domain.Expense, error)

	// Delete removes an expense after the ownership check.
	Delete(ctx context.Context, principal *authDomain.Principal, expenseID uuid.UUID) error

	// List returns the principal's expenses inside the resolved date window,
	// newest first, with pagination.
	List(ctx context.Context, principal *authDomain.Principal, filter domain.Filter, startDate, endDate *time.Time, offset, limit int) ([]*domain.Expense, error)

	// Summary aggregates the principal's expenses inside the resolved date window.
	Summary(ctx context.Context, principal *authDomain.Principal, filter domain.Filter, startDate, endDate *time.Time) (*domain.Summary, error)
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	Get(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, expenseID uuid.UUID) error

	// ListByAccount returns the account's expenses with created_at inside the
	// half-open window [window.Start, window.End), ordered by created_at descending.
	ListByAccount(ctx context.Context, accountID uuid.UUID, window domain.DateWindow, offset, limit int) ([]*domain.Expense, error)

	// SumByAccount returns the amount total and row count for the account's
	// expenses inside the window.
	SumByAccount(ctx context.Context, accountID uuid.UUID, window domain.DateWindow) (float64, int, error)
}
