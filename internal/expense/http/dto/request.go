// Package dto provides data transfer objects for the expense HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/expense-tracker/internal/expense/domain"
	appValidation "github.com/allisson/expense-tracker/internal/validation"
)

// CreateExpenseRequest represents the API request for expense creation.
// CreatedAt is optional and allows recording past spending; when absent the
// expense is stamped with the current instant.
type CreateExpenseRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	CreatedAt   *time.Time `json:"created_at"`
}

// Validate validates the CreateExpenseRequest using the jellydator/validation library.
func (r *CreateExpenseRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 1000).Error("description must be at most 1000 characters"),
		),
		validation.Field(&r.Amount,
			validation.Required.Error("amount is required"),
			validation.Min(0.01).Error("amount must be greater than zero"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *CreateExpenseRequest) ToInput() *domain.CreateExpenseInput {
	return &domain.CreateExpenseInput{
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    domain.Category(r.Category),
		CreatedAt:   r.CreatedAt,
	}
}

// UpdateExpenseRequest represents the API request for a partial expense update.
// Absent fields are left unchanged.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
}

// Validate validates the UpdateExpenseRequest using the jellydator/validation library.
func (r *UpdateExpenseRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 1000).Error("description must be at most 1000 characters"),
		),
		validation.Field(&r.Amount,
			validation.Min(0.01).Error("amount must be greater than zero"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToInput converts the request into the use case input.
func (r *UpdateExpenseRequest) ToInput() *domain.UpdateExpenseInput {
	input := &domain.UpdateExpenseInput{
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
	}
	if r.Category != nil {
		category := domain.Category(*r.Category)
		input.Category = &category
	}
	return input
}
