// Package domain defines the expense entities and the date-window rules that
// govern collection queries.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense is an owned resource. AccountID is set at creation and never
// reassigned; every read, update and delete path checks it against the
// requesting principal.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateExpenseInput contains the input data for creating an expense.
// A nil CreatedAt means the expense is recorded at the current instant.
type CreateExpenseInput struct {
	Title       string
	Description string
	Amount      float64
	Category    Category
	CreatedAt   *time.Time
}

// UpdateExpenseInput contains the input data for updating an expense.
// Nil fields are left unchanged.
type UpdateExpenseInput struct {
	Title       *string
	Description *string
	Amount      *float64
	Category    *Category
}

// Summary aggregates the expenses inside a date window.
type Summary struct {
	Total float64   `json:"total"`
	Count int       `json:"count"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
