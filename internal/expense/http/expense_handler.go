// Package http provides HTTP handlers for the expense API.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	authHTTP "github.com/allisson/expense-tracker/internal/auth/http"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
	"github.com/allisson/expense-tracker/internal/expense/domain"
	"github.com/allisson/expense-tracker/internal/expense/http/dto"
	expenseUseCase "github.com/allisson/expense-tracker/internal/expense/usecase"
	"github.com/allisson/expense-tracker/internal/httputil"
)

// dateLayout is the wire format for the start_date and end_date query parameters.
const dateLayout = "2006-01-02"

// ExpenseHandler handles HTTP requests for expense operations.
type ExpenseHandler struct {
	expenseUseCase expenseUseCase.ExpenseUseCase
	logger         *slog.Logger
}

// NewExpenseHandler creates a new expense handler with required dependencies.
func NewExpenseHandler(
	expenseUC expenseUseCase.ExpenseUseCase,
	logger *slog.Logger,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUC,
		logger:         logger,
	}
}

// principal extracts the authenticated principal from the request context.
// The routes using this handler sit behind the authentication requirement, so
// a missing principal is rejected as unauthorized rather than treated as a bug.
func (h *ExpenseHandler) principal(c *gin.Context) (*authDomain.Principal, bool) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return principal, true
}

// expenseID parses the :id path parameter.
func (h *ExpenseHandler) expenseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid expense id"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: must be in YYYY-MM-DD format", name)
	}
	return &parsed, nil
}

// CreateExpenseHandler creates a new expense owned by the caller's account.
// POST /v1/expenses - Requires authentication.
// Returns 201 Created with the new expense.
func (h *ExpenseHandler) CreateExpenseHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	expense, err := h.expenseUseCase.Create(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapExpenseToResponse(expense))
}

// GetExpenseHandler retrieves a single expense.
// GET /v1/expenses/:id - Requires authentication.
// Returns 404 Not Found for an unknown id and 403 Forbidden for an expense
// owned by another account.
func (h *ExpenseHandler) GetExpenseHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.expenseID(c)
	if !ok {
		return
	}

	expense, err := h.expenseUseCase.Get(c.Request.Context(), principal, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExpenseToResponse(expense))
}

// UpdateExpenseHandler applies a partial update to an expense.
// PUT /v1/expenses/:id - Requires authentication.
func (h *ExpenseHandler) UpdateExpenseHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.expenseID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	expense, err := h.expenseUseCase.Update(c.Request.Context(), principal, id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExpenseToResponse(expense))
}

// DeleteExpenseHandler removes an expense.
// DELETE /v1/expenses/:id - Requires authentication.
// Returns 204 No Content on success.
func (h *ExpenseHandler) DeleteExpenseHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.expenseID(c)
	if !ok {
		return
	}

	if err := h.expenseUseCase.Delete(c.Request.Context(), principal, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListExpensesHandler lists the caller's expenses inside a date window.
// GET /v1/expenses?filter=pastWeek&offset=0&limit=50 - Requires authentication.
// The filter parameter accepts pastWeek, pastMonth, last3Months and custom.
// The custom filter requires start_date and end_date in YYYY-MM-DD format.
func (h *ExpenseHandler) ListExpensesHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter := domain.Filter(c.Query("filter"))
	expenses, err := h.expenseUseCase.List(c.Request.Context(), principal, filter, startDate, endDate, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExpensesToResponse(expenses, offset, limit))
}

// SummaryHandler aggregates the caller's expenses inside a date window.
// GET /v1/expenses/summary?filter=pastMonth - Requires authentication.
func (h *ExpenseHandler) SummaryHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter := domain.Filter(c.Query("filter"))
	summary, err := h.expenseUseCase.Summary(c.Request.Context(), principal, filter, startDate, endDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSummaryToResponse(summary))
}

// CategoriesHandler lists the known expense categories.
// GET /v1/expenses/categories - Requires authentication.
func (h *ExpenseHandler) CategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapCategoriesToResponse(domain.Categories()))
}
