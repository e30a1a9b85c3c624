package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/expense-tracker/internal/expense/domain"
)

// ExpenseResponse represents the API response for a single expense.
type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapExpenseToResponse converts a domain expense to its API representation.
func MapExpenseToResponse(expense *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          expense.ID,
		Title:       expense.Title,
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    string(expense.Category),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ExpenseListResponse represents the API response for an expense listing.
type ExpenseListResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
	Offset   int                `json:"offset"`
	Limit    int                `json:"limit"`
}

// MapExpensesToResponse converts a page of domain expenses to its API representation.
func MapExpensesToResponse(expenses []*domain.Expense, offset, limit int) *ExpenseListResponse {
	response := &ExpenseListResponse{
		Expenses: make([]*ExpenseResponse, 0, len(expenses)),
		Offset:   offset,
		Limit:    limit,
	}
	for _, expense := range expenses {
		response.Expenses = append(response.Expenses, MapExpenseToResponse(expense))
	}
	return response
}

// SummaryResponse represents the API response for an expense summary.
type SummaryResponse struct {
	Total     float64   `json:"total"`
	Count     int       `json:"count"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// MapSummaryToResponse converts a domain summary to its API representation.
func MapSummaryToResponse(summary *domain.Summary) *SummaryResponse {
	return &SummaryResponse{
		Total:     summary.Total,
		Count:     summary.Count,
		StartDate: summary.Start,
		EndDate:   summary.End,
	}
}

// CategoriesResponse represents the API response for the category listing.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// MapCategoriesToResponse converts the known categories to their API representation.
func MapCategoriesToResponse(categories []domain.Category) *CategoriesResponse {
	response := &CategoriesResponse{Categories: make([]string, 0, len(categories))}
	for _, category := range categories {
		response.Categories = append(response.Categories, string(category))
	}
	return response
}
