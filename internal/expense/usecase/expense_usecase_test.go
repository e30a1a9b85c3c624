package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/clock"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
	"github.com/allisson/expense-tracker/internal/expense/domain"
)

// mockExpenseRepository is a mock implementation of ExpenseRepository for testing.
type mockExpenseRepository struct {
	mock.Mock
}

func (m *mockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *mockExpenseRepository) Get(ctx context.Context, expenseID uuid.UUID) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *mockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *mockExpenseRepository) Delete(ctx context.Context, expenseID uuid.UUID) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *mockExpenseRepository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	window domain.DateWindow,
	offset, limit int,
) ([]*domain.Expense, error) {
	args := m.Called(ctx, accountID, window, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

func (m *mockExpenseRepository) SumByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	window domain.DateWindow,
) (float64, int, error) {
	args := m.Called(ctx, accountID, window)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

var testInstant = time.Date(2025, 11, 16, 10, 30, 0, 0, time.UTC)

func newTestExpenseUseCase(t *testing.T) (ExpenseUseCase, *mockExpenseRepository, *clock.Fixed) {
	t.Helper()

	repo := &mockExpenseRepository{}
	clk := clock.NewFixed(testInstant)
	return NewExpenseUseCase(repo, clk), repo, clk
}

func newPrincipal() *authDomain.Principal {
	return &authDomain.Principal{
		Username:  "alice",
		Role:      authDomain.RoleUser,
		AccountID: uuid.Must(uuid.NewV7()),
	}
}

func TestExpenseUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_OwnedByPrincipalAccount", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		principal := newPrincipal()

		repo.On("Create", ctx, mock.MatchedBy(func(expense *domain.Expense) bool {
			return expense.AccountID == principal.AccountID &&
				expense.Title == "Groceries run" &&
				expense.Amount == 42.50 &&
				expense.Category == domain.CategoryGroceries &&
				expense.CreatedAt.Equal(testInstant)
		})).
			Return(nil).
			Once()

		expense, err := uc.Create(ctx, principal, &domain.CreateExpenseInput{
			Title:    "Groceries run",
			Amount:   42.50,
			Category: domain.CategoryGroceries,
		})

		require.NoError(t, err)
		assert.Equal(t, principal.AccountID, expense.AccountID)
		repo.AssertExpectations(t)
	})

	t.Run("Success_BackdatedCreatedAt", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		principal := newPrincipal()
		recordedAt := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

		repo.On("Create", ctx, mock.MatchedBy(func(expense *domain.Expense) bool {
			return expense.CreatedAt.Equal(recordedAt) &&
				expense.UpdatedAt.Equal(testInstant)
		})).
			Return(nil).
			Once()

		expense, err := uc.Create(ctx, principal, &domain.CreateExpenseInput{
			Title:     "Train ticket",
			Amount:    18.90,
			Category:  domain.CategoryOthers,
			CreatedAt: &recordedAt,
		})

		require.NoError(t, err)
		assert.True(t, expense.CreatedAt.Equal(recordedAt))
		repo.AssertExpectations(t)
	})

	t.Run("Error_BlankTitle", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)

		_, err := uc.Create(ctx, newPrincipal(), &domain.CreateExpenseInput{
			Title:    "   ",
			Amount:   10,
			Category: domain.CategoryOthers,
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_NonPositiveAmount", func(t *testing.T) {
		uc, _, _ := newTestExpenseUseCase(t)

		_, err := uc.Create(ctx, newPrincipal(), &domain.CreateExpenseInput{
			Title:    "Refund",
			Amount:   -5,
			Category: domain.CategoryOthers,
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_UnknownCategory", func(t *testing.T) {
		uc, _, _ := newTestExpenseUseCase(t)

		_, err := uc.Create(ctx, newPrincipal(), &domain.CreateExpenseInput{
			Title:    "Casino",
			Amount:   100,
			Category: domain.Category("gambling"),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestExpenseUseCase_OwnershipCheck(t *testing.T) {
	ctx := context.Background()

	owner := newPrincipal()
	stranger := newPrincipal()
	expenseID := uuid.Must(uuid.NewV7())
	stored := &domain.Expense{
		ID:        expenseID,
		AccountID: owner.AccountID,
		Title:     "Groceries run",
		Amount:    42.50,
		Category:  domain.CategoryGroceries,
	}

	t.Run("Owner_GetsResource", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		repo.On("Get", ctx, expenseID).Return(stored, nil).Once()

		expense, err := uc.Get(ctx, owner, expenseID)

		require.NoError(t, err)
		assert.Equal(t, stored, expense)
	})

	t.Run("Stranger_GetsForbidden_NeverNotFound", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		repo.On("Get", ctx, expenseID).Return(stored, nil).Once()

		expense, err := uc.Get(ctx, stranger, expenseID)

		assert.Nil(t, expense)
		assert.Equal(t, domain.ErrExpenseAccessDenied, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("MissingResource_GetsNotFound", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		unknownID := uuid.Must(uuid.NewV7())
		repo.On("Get", ctx, unknownID).Return(nil, domain.ErrExpenseNotFound).Once()

		expense, err := uc.Get(ctx, stranger, unknownID)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Update_AppliesSameCheck", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		repo.On("Get", ctx, expenseID).Return(stored, nil).Once()

		title := "New title"
		_, err := uc.Update(ctx, stranger, expenseID, &domain.UpdateExpenseInput{Title: &title})

		assert.Equal(t, domain.ErrExpenseAccessDenied, err)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Delete_AppliesSameCheck", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		repo.On("Get", ctx, expenseID).Return(stored, nil).Once()

		err := uc.Delete(ctx, stranger, expenseID)

		assert.Equal(t, domain.ErrExpenseAccessDenied, err)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestExpenseUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PartialUpdate", func(t *testing.T) {
		uc, repo, clk := newTestExpenseUseCase(t)
		principal := newPrincipal()
		expenseID := uuid.Must(uuid.NewV7())

		stored := &domain.Expense{
			ID:        expenseID,
			AccountID: principal.AccountID,
			Title:     "Old title",
			Amount:    10,
			Category:  domain.CategoryOthers,
			CreatedAt: testInstant.Add(-24 * time.Hour),
			UpdatedAt: testInstant.Add(-24 * time.Hour),
		}
		repo.On("Get", ctx, expenseID).Return(stored, nil).Once()

		clk.Advance(time.Hour)
		newAmount := 99.99
		repo.On("Update", ctx, mock.MatchedBy(func(expense *domain.Expense) bool {
			return expense.Title == "Old title" &&
				expense.Amount == 99.99 &&
				expense.UpdatedAt.Equal(clk.Now())
		})).
			Return(nil).
			Once()

		expense, err := uc.Update(ctx, principal, expenseID, &domain.UpdateExpenseInput{Amount: &newAmount})

		require.NoError(t, err)
		assert.Equal(t, 99.99, expense.Amount)
		repo.AssertExpectations(t)
	})

	t.Run("Error_UpdateToInvalidAmount", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		principal := newPrincipal()
		expenseID := uuid.Must(uuid.NewV7())

		stored := &domain.Expense{
			ID:        expenseID,
			AccountID: principal.AccountID,
			Title:     "Old title",
			Amount:    10,
			Category:  domain.CategoryOthers,
		}
		repo.On("Get", ctx, expenseID).Return(stored, nil).Once()

		badAmount := 0.0
		_, err := uc.Update(ctx, principal, expenseID, &domain.UpdateExpenseInput{Amount: &badAmount})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestExpenseUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ResolvesWindowFromClock", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		principal := newPrincipal()

		expectedWindow := domain.DateWindow{
			Start: time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC),
		}
		expenses := []*domain.Expense{{ID: uuid.Must(uuid.NewV7())}}
		repo.On("ListByAccount", ctx, principal.AccountID, expectedWindow, 0, 50).
			Return(expenses, nil).
			Once()

		result, err := uc.List(ctx, principal, domain.FilterPastWeek, nil, nil, 0, 50)

		require.NoError(t, err)
		assert.Equal(t, expenses, result)
		repo.AssertExpectations(t)
	})

	t.Run("Error_InvalidFilter_NoRepositoryCall", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)

		_, err := uc.List(ctx, newPrincipal(), domain.Filter("bogus"), nil, nil, 0, 50)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "ListByAccount")
	})

	t.Run("Error_CustomWithoutBounds", func(t *testing.T) {
		uc, _, _ := newTestExpenseUseCase(t)

		_, err := uc.List(ctx, newPrincipal(), domain.FilterCustom, nil, nil, 0, 50)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestExpenseUseCase_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RoundsToTwoDecimals", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)
		principal := newPrincipal()

		repo.On("SumByAccount", ctx, principal.AccountID, mock.AnythingOfType("domain.DateWindow")).
			Return(10.0/3.0, 3, nil).
			Once()

		summary, err := uc.Summary(ctx, principal, domain.FilterPastWeek, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 3.33, summary.Total)
		assert.Equal(t, 3, summary.Count)
		assert.True(t, summary.Start.Before(summary.End))
	})

	t.Run("Error_InvalidFilter", func(t *testing.T) {
		uc, repo, _ := newTestExpenseUseCase(t)

		_, err := uc.Summary(ctx, newPrincipal(), domain.Filter("bogus"), nil, nil)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "SumByAccount")
	})
}
