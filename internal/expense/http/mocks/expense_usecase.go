// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/expense/domain"
)

// MockExpenseUseCase is a mock implementation of ExpenseUseCase for testing.
type MockExpenseUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ExpenseUseCase.
func (m *MockExpenseUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *domain.CreateExpenseInput,
) (*domain.Expense, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

// Get mocks the Get method of ExpenseUseCase.
func (m *MockExpenseUseCase) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) (*domain.Expense, error) {
	args := m.Called(ctx, principal, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

// Update mocks the Update method of ExpenseUseCase.
func (m *MockExpenseUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
	input *domain.UpdateExpenseInput,
) (*domain.Expense, error) {
	args := m.Called(ctx, principal, expenseID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

// Delete mocks the Delete method of ExpenseUseCase.
func (m *MockExpenseUseCase) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	expenseID uuid.UUID,
) error {
	args := m.Called(ctx, principal, expenseID)
	return args.Error(0)
}

// List mocks the List method of ExpenseUseCase.
func (m *MockExpenseUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
	filter domain.Filter,
	startDate, endDate *time.Time,
	offset, limit int,
) ([]*domain.Expense, error) {
	args := m.Called(ctx, principal, filter, startDate, endDate, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

// Summary mocks the Summary method of ExpenseUseCase.
func (m *MockExpenseUseCase) Summary(
	ctx context.Context,
	principal *authDomain.Principal,
	filter domain.Filter,
	startDate, endDate *time.Time,
) (*domain.Summary, error) {
	args := m.Called(ctx, principal, filter, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}
