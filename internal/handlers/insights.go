package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/expense-tracker/backend/internal/analytics"
	"example.com/expense-tracker/backend/internal/auth"
	"example.com/expense-tracker/backend/internal/repository"
)

const recentExpensesLimit = 5

type InsightsHandler struct {
	Expenses *repository.ExpenseRepository
	Palette  []string
}

// NewInsightsHandler создает обработчик аналитики расходов.
func NewInsightsHandler(expenses *repository.ExpenseRepository, palette []string) *InsightsHandler {
	return &InsightsHandler{Expenses: expenses, Palette: palette}
}

type DashboardStats struct {
	TotalCents             int64  `json:"total_cents"`
	AverageMonthlyCents    int64  `json:"average_monthly_cents"`
	TopCategory            string `json:"top_category"`
	CurrentMonthTotalCents int64  `json:"current_month_total_cents"`
	ActiveMonthCount       int    `json:"active_month_count"`
}

type YearTotal struct {
	Year       int   `json:"year"`
	TotalCents int64 `json:"total_cents"`
}

type DashboardResponse struct {
	Stats          DashboardStats    `json:"stats"`
	YearlyTotals   []YearTotal       `json:"yearly_totals"`
	RecentExpenses []ExpenseResponse `json:"recent_expenses"`
	Years          []int             `json:"years"`
}

type YearStats struct {
	TotalCents          int64  `json:"total_cents"`
	AverageMonthlyCents int64  `json:"average_monthly_cents"`
	TopCategory         string `json:"top_category"`
	ActiveMonthCount    int    `json:"active_month_count"`
}

type YearInsightsResponse struct {
	Year              int                        `json:"year"`
	Stats             YearStats                  `json:"stats"`
	MonthlyTotals     [12]int64                  `json:"monthly_totals"`
	CategoryBreakdown []analytics.BreakdownEntry `json:"category_breakdown"`
}

type MonthInsightsResponse struct {
	MonthKey          string                     `json:"month_year"`
	TotalCents        int64                      `json:"total_cents"`
	DailyTotals       []int64                    `json:"daily_totals"`
	CategoryBreakdown []analytics.BreakdownEntry `json:"category_breakdown"`
}

// Dashboard возвращает сводку по всем годам: общую статистику, суммы по
// годам, последние расходы и список доступных лет.
func (h *InsightsHandler) Dashboard(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	ctx := c.Request().Context()

	records, err := h.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	years, err := h.Expenses.ListYears(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	recent, err := h.Expenses.ListRecentByUser(ctx, userID, recentExpensesLimit)
	if err != nil {
		return serverError(c)
	}

	input := toAnalyticsExpenses(records)

	yearlyTotals := make([]YearTotal, 0, len(years))
	for _, year := range years {
		result, err := analytics.Aggregate(input, year)
		if err != nil {
			return serverError(c)
		}
		yearlyTotals = append(yearlyTotals, YearTotal{Year: year, TotalCents: result.TotalCents})
	}

	recentResponse := make([]ExpenseResponse, 0, len(recent))
	for _, expense := range recent {
		recentResponse = append(recentResponse, toExpenseResponse(expense))
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Stats:          overallStats(input, time.Now().UTC()),
		YearlyTotals:   yearlyTotals,
		RecentExpenses: recentResponse,
		Years:          years,
	})
}

// Year возвращает статистику года: итоги, помесячный ряд и разбивку по
// категориям с цветами из палитры.
func (h *InsightsHandler) Year(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return badRequest(c, "invalid year")
	}

	records, err := h.Expenses.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	result, err := analytics.Aggregate(toAnalyticsExpenses(records), year)
	if err != nil {
		return badRequest(c, "invalid year")
	}

	return c.JSON(http.StatusOK, YearInsightsResponse{
		Year: year,
		Stats: YearStats{
			TotalCents:          result.TotalCents,
			AverageMonthlyCents: result.AverageMonthlyCents,
			TopCategory:         result.TopCategory,
			ActiveMonthCount:    result.ActiveMonthCount,
		},
		MonthlyTotals:     result.PerMonthTotals,
		CategoryBreakdown: analytics.BuildBreakdown(result.CategoryTotals, h.Palette),
	})
}

// Month возвращает статистику месяца с посуточным рядом.
func (h *InsightsHandler) Month(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return badRequest(c, "invalid year")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return badRequest(c, "invalid month")
	}

	records, err := h.Expenses.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	result, err := analytics.AggregateMonth(toAnalyticsExpenses(records), year, time.Month(month))
	if err != nil {
		return badRequest(c, "invalid year or month")
	}

	return c.JSON(http.StatusOK, MonthInsightsResponse{
		MonthKey:          analytics.FormatMonthKey(year, time.Month(month)),
		TotalCents:        result.TotalCents,
		DailyTotals:       result.PerDayTotals,
		CategoryBreakdown: analytics.BuildBreakdown(result.CategoryTotals, h.Palette),
	})
}

// overallStats считает статистику по всем записям без привязки к году.
// Среднемесячный расход делится на число активных месяцев за всю историю.
func overallStats(records []analytics.Expense, now time.Time) DashboardStats {
	var stats DashboardStats

	activeMonths := make(map[string]struct{})
	categoryIndex := make(map[string]int)
	categories := make([]analytics.CategoryTotal, 0)
	currentMonth := analytics.MonthKey(now)

	for _, record := range records {
		stats.TotalCents += record.AmountCents

		monthKey := analytics.MonthKey(record.Date)
		activeMonths[monthKey] = struct{}{}
		if monthKey == currentMonth {
			stats.CurrentMonthTotalCents += record.AmountCents
		}

		idx, seen := categoryIndex[record.Category]
		if !seen {
			idx = len(categories)
			categoryIndex[record.Category] = idx
			categories = append(categories, analytics.CategoryTotal{Category: record.Category})
		}
		categories[idx].TotalCents += record.AmountCents
	}

	stats.ActiveMonthCount = len(activeMonths)
	if stats.ActiveMonthCount > 0 {
		stats.AverageMonthlyCents = stats.TotalCents / int64(stats.ActiveMonthCount)
	}

	var bestTotal int64
	for _, entry := range categories {
		if stats.TopCategory == "" || entry.TotalCents > bestTotal {
			stats.TopCategory = entry.Category
			bestTotal = entry.TotalCents
		}
	}

	return stats
}
