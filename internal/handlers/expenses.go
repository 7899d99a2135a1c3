package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-tracker/backend/internal/analytics"
	"example.com/expense-tracker/backend/internal/auth"
	"example.com/expense-tracker/backend/internal/models"
	"example.com/expense-tracker/backend/internal/money"
	"example.com/expense-tracker/backend/internal/notifications"
	"example.com/expense-tracker/backend/internal/repository"
)

type ExpenseHandler struct {
	Expenses *repository.ExpenseRepository
	Hub      *notifications.Hub
}

// NewExpenseHandler создает обработчик расходов.
func NewExpenseHandler(expenses *repository.ExpenseRepository, hub *notifications.Hub) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses, Hub: hub}
}

type CreateExpenseRequest struct {
	Amount   string `json:"amount" validate:"required"`
	Category string `json:"category" validate:"required"`
	Reason   string `json:"reason" validate:"max=500"`
	Date     string `json:"date" validate:"required"`
}

type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      string    `json:"amount"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Reason      string    `json:"reason"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// List возвращает расходы пользователя, пропущенные через фильтр и
// сортировку из query-параметров.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	filter, sortSpec, err := parseListQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	records, err := h.Expenses.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	filtered := analytics.Apply(toAnalyticsExpenses(records), filter, sortSpec)

	response := make([]ExpenseResponse, 0, len(filtered))
	for _, record := range filtered {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return serverError(c)
		}
		response = append(response, ExpenseResponse{
			ID:          id,
			Amount:      money.FormatCents(record.AmountCents),
			AmountCents: record.AmountCents,
			Category:    record.Category,
			Reason:      record.Reason,
			Date:        record.Date.Format(analytics.DateLayout),
		})
	}

	return c.JSON(http.StatusOK, ExpenseListResponse{Expenses: response})
}

// Create записывает новый расход и публикует событие изменения.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	amountCents, err := money.ParseDecimalToCents(req.Amount)
	if err != nil {
		return badRequest(c, "invalid amount")
	}

	if !models.IsValidCategory(req.Category) {
		return badRequest(c, "unknown category")
	}

	date, err := analytics.ParseDate(req.Date)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	expense, err := h.Expenses.Create(c.Request().Context(), userID, amountCents, req.Category, strings.TrimSpace(req.Reason), date)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "invalid amount")
		}
		return serverError(c)
	}

	publishExpenseEvent(h.Hub, userID, notifications.EventExpenseCreated, expense)

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// Delete безвозвратно удаляет расход пользователя.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	expense, err := h.Expenses.GetByID(c.Request().Context(), userID, expenseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "expense not found")
		}
		return serverError(c)
	}

	if err := h.Expenses.Delete(c.Request().Context(), userID, expenseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "expense not found")
		}
		return serverError(c)
	}

	publishExpenseEvent(h.Hub, userID, notifications.EventExpenseDeleted, expense)

	return c.NoContent(http.StatusNoContent)
}

// parseListQuery собирает фильтр и сортировку из query-параметров списка.
func parseListQuery(c echo.Context) (analytics.Filter, analytics.Sort, error) {
	var filter analytics.Filter
	var sortSpec analytics.Sort

	if raw := c.QueryParam("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			category := strings.TrimSpace(part)
			if category == "" {
				continue
			}
			if !models.IsValidCategory(category) {
				return filter, sortSpec, errors.New("unknown category")
			}
			filter.Categories = append(filter.Categories, category)
		}
	}

	if raw := c.QueryParam("min_amount"); raw != "" {
		cents, err := money.ParseDecimalToCents(raw)
		if err != nil {
			return filter, sortSpec, errors.New("invalid min_amount")
		}
		filter.MinAmountCents = &cents
	}

	if raw := c.QueryParam("max_amount"); raw != "" {
		cents, err := money.ParseDecimalToCents(raw)
		if err != nil {
			return filter, sortSpec, errors.New("invalid max_amount")
		}
		filter.MaxAmountCents = &cents
	}

	if raw := c.QueryParam("start_date"); raw != "" {
		date, err := analytics.ParseDate(raw)
		if err != nil {
			return filter, sortSpec, errors.New("invalid start_date")
		}
		filter.StartDate = &date
	}

	if raw := c.QueryParam("end_date"); raw != "" {
		date, err := analytics.ParseDate(raw)
		if err != nil {
			return filter, sortSpec, errors.New("invalid end_date")
		}
		filter.EndDate = &date
	}

	switch field := c.QueryParam("sort_by"); field {
	case "":
	case "date":
		sortSpec.Field = analytics.SortFieldDate
	case "amount":
		sortSpec.Field = analytics.SortFieldAmount
	default:
		return filter, sortSpec, errors.New("invalid sort_by")
	}

	switch order := c.QueryParam("order"); order {
	case "", "asc":
		sortSpec.Order = analytics.SortAsc
	case "desc":
		sortSpec.Order = analytics.SortDesc
	default:
		return filter, sortSpec, errors.New("invalid order")
	}

	return filter, sortSpec, nil
}

func toAnalyticsExpenses(records []models.Expense) []analytics.Expense {
	out := make([]analytics.Expense, 0, len(records))
	for _, record := range records {
		out = append(out, analytics.Expense{
			ID:          record.ID.String(),
			AmountCents: record.AmountCents,
			Category:    record.Category,
			Reason:      record.Reason,
			Date:        analytics.DayOf(record.Date),
		})
	}
	return out
}

func toExpenseResponse(expense models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		Amount:      money.FormatCents(expense.AmountCents),
		AmountCents: expense.AmountCents,
		Category:    expense.Category,
		Reason:      expense.Reason,
		Date:        expense.Date.Format(analytics.DateLayout),
		CreatedAt:   expense.CreatedAt,
	}
}

func publishExpenseEvent(hub *notifications.Hub, userID uuid.UUID, eventType string, expense models.Expense) {
	if hub == nil {
		return
	}

	hub.Publish(userID, notifications.Event{
		Type: eventType,
		Data: map[string]interface{}{
			"expense_id":   expense.ID.String(),
			"amount_cents": expense.AmountCents,
			"category":     expense.Category,
			"date":         expense.Date.Format(analytics.DateLayout),
		},
	})
}
