package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-tracker/backend/internal/analytics"
	"example.com/expense-tracker/backend/internal/auth"
	"example.com/expense-tracker/backend/internal/money"
)

const (
	exportTypeMonthly    = "monthly"
	exportTypeCategories = "categories"
	exportTypeExpenses   = "expenses"
)

type YearReportResponse struct {
	Year              int                        `json:"year"`
	Stats             YearStats                  `json:"stats"`
	MonthlyTotals     [12]int64                  `json:"monthly_totals"`
	CategoryBreakdown []analytics.BreakdownEntry `json:"category_breakdown"`
	Expenses          []ExpenseResponse          `json:"expenses"`
}

// ExportJSON выгружает годовой отчет в JSON-файл. Отчет заменяет
// клиентскую генерацию PDF: верстка остается за потребителем.
func (h *InsightsHandler) ExportJSON(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1000 || year > 9999 {
		return badRequest(c, "invalid year")
	}

	report, err := h.buildYearReport(c.Request().Context(), userID, year)
	if err != nil {
		return serverError(c)
	}

	filename := "expenses-" + strconv.Itoa(year) + ".json"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, report)
}

// ExportCSV выгружает годовой отчет в CSV-файл выбранного типа.
func (h *InsightsHandler) ExportCSV(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1000 || year > 9999 {
		return badRequest(c, "invalid year")
	}

	exportType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if exportType == "" {
		exportType = exportTypeExpenses
	}

	report, err := h.buildYearReport(c.Request().Context(), userID, year)
	if err != nil {
		return serverError(c)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch exportType {
	case exportTypeMonthly:
		err = writeMonthlyCSV(writer, report)
	case exportTypeCategories:
		err = writeCategoriesCSV(writer, report)
	case exportTypeExpenses:
		err = writeExpensesCSV(writer, report)
	default:
		return badRequest(c, "invalid export type")
	}
	if err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "expenses-" + strconv.Itoa(year) + "-" + exportType + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// buildYearReport собирает данные отчета. Год уже проверен на границе,
// поэтому любая ошибка здесь — внутренняя; в ответ хелпер не пишет.
func (h *InsightsHandler) buildYearReport(ctx context.Context, userID uuid.UUID, year int) (YearReportResponse, error) {
	records, err := h.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return YearReportResponse{}, err
	}

	input := toAnalyticsExpenses(records)

	result, err := analytics.Aggregate(input, year)
	if err != nil {
		return YearReportResponse{}, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	filtered := analytics.Apply(input, analytics.Filter{StartDate: &start, EndDate: &end}, analytics.Sort{Field: analytics.SortFieldDate, Order: analytics.SortAsc})

	expenses := make([]ExpenseResponse, 0, len(filtered))
	for _, record := range filtered {
		id, parseErr := uuid.Parse(record.ID)
		if parseErr != nil {
			return YearReportResponse{}, parseErr
		}
		expenses = append(expenses, ExpenseResponse{
			ID:          id,
			Amount:      money.FormatCents(record.AmountCents),
			AmountCents: record.AmountCents,
			Category:    record.Category,
			Reason:      record.Reason,
			Date:        record.Date.Format(analytics.DateLayout),
		})
	}

	return YearReportResponse{
		Year: year,
		Stats: YearStats{
			TotalCents:          result.TotalCents,
			AverageMonthlyCents: result.AverageMonthlyCents,
			TopCategory:         result.TopCategory,
			ActiveMonthCount:    result.ActiveMonthCount,
		},
		MonthlyTotals:     result.PerMonthTotals,
		CategoryBreakdown: analytics.BuildBreakdown(result.CategoryTotals, h.Palette),
		Expenses:          expenses,
	}, nil
}

func writeMonthlyCSV(writer *csv.Writer, report YearReportResponse) error {
	if err := writer.Write([]string{"year", "month", "total_cents", "total"}); err != nil {
		return err
	}

	for idx, total := range report.MonthlyTotals {
		record := []string{
			strconv.Itoa(report.Year),
			strconv.Itoa(idx + 1),
			strconv.FormatInt(total, 10),
			money.FormatCents(total),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeCategoriesCSV(writer *csv.Writer, report YearReportResponse) error {
	if err := writer.Write([]string{"year", "category", "total_cents", "total", "percentage"}); err != nil {
		return err
	}

	for _, entry := range report.CategoryBreakdown {
		record := []string{
			strconv.Itoa(report.Year),
			entry.Name,
			strconv.FormatInt(entry.AmountCents, 10),
			money.FormatCents(entry.AmountCents),
			strconv.FormatFloat(entry.Percentage, 'f', 1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeExpensesCSV(writer *csv.Writer, report YearReportResponse) error {
	if err := writer.Write([]string{"expense_id", "date", "category", "reason", "amount_cents", "amount"}); err != nil {
		return err
	}

	for _, expense := range report.Expenses {
		record := []string{
			expense.ID.String(),
			expense.Date,
			expense.Category,
			expense.Reason,
			strconv.FormatInt(expense.AmountCents, 10),
			expense.Amount,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
