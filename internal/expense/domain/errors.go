package domain

import (
	"github.com/allisson/expense-tracker/internal/errors"
)

// Expense errors.
//
// ErrExpenseNotFound and ErrExpenseAccessDenied are deliberately distinct: a
// lookup for an identifier that does not exist reports not found, while a
// lookup for an expense owned by another account reports access denied. The
// two must never be collapsed; only authenticated callers ever reach the
// ownership check, so the distinction leaks nothing to anonymous callers.
var (
	// ErrExpenseNotFound indicates no expense exists with the given identifier.
	ErrExpenseNotFound = errors.Wrap(errors.ErrNotFound, "expense not found")

	// ErrExpenseAccessDenied indicates the expense exists but belongs to a
	// different account than the requester's.
	ErrExpenseAccessDenied = errors.Wrap(errors.ErrForbidden, "expense belongs to another account")
)
