// Package usecase implements business logic orchestration for expense operations.
package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/clock"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
	"github.com/allisson/expense-tracker/internal/expense/domain"
	appValidation "github.com/allisson/expense-tracker/internal/validation"
)

// expenseUseCase implements ExpenseUseCase.
type expenseUseCase struct {
	expenseRepo ExpenseRepository
	clock       clock.Clock
}

// NewExpenseUseCase creates a new ExpenseUseCase with the provided dependencies.
func NewExpenseUseCase(expenseRepo ExpenseRepository, clk clock.Clock) ExpenseUseCase {
	return &expenseUseCase{
		expenseRepo: expenseRepo,
		clock:       clk,
	}
}

// authorize looks up an expense and applies the ownership check.
//
// A missing expense surfaces as not found. An expense owned by a different
// account surfaces as access denied, never as not found.
func (uc *expenseUseCase) authorize(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) (*domain.Expense, error) {
	expense, err := uc.expenseRepo.Get(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if expense.AccountID != principal.AccountID {
		return nil, domain.ErrExpenseAccessDenied
	}

	return expense, nil
}

// validateExpenseFields validates title, amount and category for create and update.
func validateExpenseFields(title string, amount float64, category domain.Category) error {
	err := validation.Validate(title,
		validation.Required.Error("title is required"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if amount <= 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if !category.Valid() {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "unknown category")
	}

	return nil
}

// Create stores a new expense owned by the principal's account.
func (uc *expenseUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *domain.CreateExpenseInput,
) (*domain.Expense, error) {
	if err := validateExpenseFields(input.Title, input.Amount, input.Category); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	// Backdated records are allowed so past spending still lands in the
	// right date window.
	createdAt := now
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}

	expense := &domain.Expense{
		ID:          uuid.Must(uuid.NewV7()),
		AccountID:   principal.AccountID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Category:    input.Category,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// Get retrieves a single expense after the ownership check.
func (uc *expenseUseCase) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) (*domain.Expense, error) {
	return uc.authorize(ctx, principal, expenseID)
}

// Update modifies an expense after the ownership check.
func (uc *expenseUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
	input *domain.UpdateExpenseInput,
) (*domain.Expense, error) {
	expense, err := uc.authorize(ctx, principal, expenseID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		expense.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}

	if err := validateExpenseFields(expense.Title, expense.Amount, expense.Category); err != nil {
		return nil, err
	}

	expense.UpdatedAt = uc.clock.Now()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// Delete removes an expense after the ownership check.
func (uc *expenseUseCase) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) error {
	if _, err := uc.authorize(ctx, principal, expenseID); err != nil {
		return err
	}
	return uc.expenseRepo.Delete(ctx, expenseID)
}

// List returns the principal's expenses inside the resolved date window.
func (uc *expenseUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
	filter domain.Filter,
	startDate, endDate *time.Time,
	offset, limit int,
) ([]*domain.Expense, error) {
	window, err := domain.ResolveDateWindow(filter, startDate, endDate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return uc.expenseRepo.ListByAccount(ctx, principal.AccountID, window, offset, limit)
}

// Summary aggregates the principal's expenses inside the resolved date window.
// The total is rounded to two decimal places.
func (uc *expenseUseCase) Summary(
	ctx context.Context,
	principal *authDomain.Principal,
	filter domain.Filter,
	startDate, endDate *time.Time,
) (*domain.Summary, error) {
	window, err := domain.ResolveDateWindow(filter, startDate, endDate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	total, count, err := uc.expenseRepo.SumByAccount(ctx, principal.AccountID, window)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		Total: math.Round(total*100) / 100,
		Count: count,
		Start: window.Start,
		End:   window.End,
	}, nil
}
