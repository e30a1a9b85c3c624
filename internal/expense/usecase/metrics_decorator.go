package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/expense/domain"
	"github.com/allisson/expense-tracker/internal/metrics"
)

// expenseUseCaseWithMetrics decorates ExpenseUseCase with metrics instrumentation.
type expenseUseCaseWithMetrics struct {
	next    ExpenseUseCase
	metrics metrics.BusinessMetrics
}

// NewExpenseUseCaseWithMetrics wraps an ExpenseUseCase with metrics recording.
func NewExpenseUseCaseWithMetrics(useCase ExpenseUseCase, m metrics.BusinessMetrics) ExpenseUseCase {
	return &expenseUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (e *expenseUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "expense", operation, status)
	e.metrics.RecordDuration(ctx, "expense", operation, time.Since(start), status)
}

// Create records metrics for expense creation operations.
func (e *expenseUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *domain.CreateExpenseInput,
) (*domain.Expense, error) {
	start := time.Now()
	expense, err := e.next.Create(ctx, principal, input)
	e.record(ctx, "expense_create", start, err)
	return expense, err
}

// Get records metrics for expense retrieval operations.
func (e *expenseUseCaseWithMetrics) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) (*domain.Expense, error) {
	start := time.Now()
	expense, err := e.next.Get(ctx, principal, expenseID)
	e.record(ctx, "expense_get", start, err)
	return expense, err
}

// Update records metrics for expense update operations.
func (e *expenseUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
	input *domain.UpdateExpenseInput,
) (*domain.Expense, error) {
	start := time.Now()
	expense, err := e.next.Update(ctx, principal, expenseID, input)
	e.record(ctx, "expense_update", start, err)
	return expense, err
}

// Delete records metrics for expense deletion operations.
func (e *expenseUseCaseWithMetrics) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) error {
	start := time.Now()
	err := e.next.Delete(ctx, principal, expenseID)
	e.record(ctx, "expense_delete", start, err)
	return err
}

// List records metrics for expense list operations.
func (e *expenseUseCaseWithMetrics) List(
	ctx context.Context,
	principal *authDomain.Principal,
	filter domain.Filter,
	startDate, endDate *time.Time,
	offset, limit int,
) ([]*domain.Expense, error) {
	start := time.Now()
	expenses, err := e.next.List(ctx, principal, filter, startDate, endDate, offset, limit)
	e.record(ctx, "expense_list", start, err)
	return expenses, err
}

// Summary records metrics for expense summary operations.
func (e *expenseUseCaseWithMetrics) Summary(
	ctx context.Context,
	principal *authDomain.Principal,
	filter domain.Filter,
	startDate, endDate *time.Time,
) (*domain.Summary, error) {
	start := time.Now()
	summary, err := e.next.Summary(ctx, principal, filter, startDate, endDate)
	e.record(ctx, "expense_summary", start, err)
	return summary, err
}
