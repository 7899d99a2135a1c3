package handlers

import (
	"testing"
	"time"

	"example.com/expense-tracker/backend/internal/analytics"
)

func date(value string) time.Time {
	parsed, err := time.Parse(analytics.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// TestOverallStats проверяет сводную статистику по всей истории.
func TestOverallStats(t *testing.T) {
	records := []analytics.Expense{
		{ID: "a", AmountCents: 10000, Category: "Food", Date: date("2024-01-15")},
		{ID: "b", AmountCents: 20000, Category: "Travel", Date: date("2024-02-10")},
		{ID: "c", AmountCents: 5000, Category: "Food", Date: date("2024-02-20")},
	}

	now := date("2024-02-25")
	stats := overallStats(records, now)

	if stats.TotalCents != 35000 {
		t.Fatalf("expected total 35000, got %d", stats.TotalCents)
	}
	if stats.ActiveMonthCount != 2 {
		t.Fatalf("expected 2 active months, got %d", stats.ActiveMonthCount)
	}
	if stats.AverageMonthlyCents != 17500 {
		t.Fatalf("expected average 17500, got %d", stats.AverageMonthlyCents)
	}
	if stats.CurrentMonthTotalCents != 25000 {
		t.Fatalf("expected current month 25000, got %d", stats.CurrentMonthTotalCents)
	}
	if stats.TopCategory != "Travel" {
		t.Fatalf("expected top category Travel, got %q", stats.TopCategory)
	}
}

// TestOverallStatsEmpty проверяет статистику без записей.
func TestOverallStatsEmpty(t *testing.T) {
	stats := overallStats(nil, date("2024-02-25"))

	if stats.TotalCents != 0 || stats.AverageMonthlyCents != 0 {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if stats.TopCategory != "" {
		t.Fatalf("expected empty top category, got %q", stats.TopCategory)
	}
	if stats.ActiveMonthCount != 0 {
		t.Fatalf("expected 0 active months, got %d", stats.ActiveMonthCount)
	}
}

// TestOverallStatsTopCategoryTie проверяет, что при равных суммах
// побеждает категория, встретившаяся раньше.
func TestOverallStatsTopCategoryTie(t *testing.T) {
	records := []analytics.Expense{
		{ID: "a", AmountCents: 5000, Category: "Bills", Date: date("2024-03-01")},
		{ID: "b", AmountCents: 5000, Category: "Food", Date: date("2024-03-02")},
	}

	stats := overallStats(records, date("2024-04-01"))
	if stats.TopCategory != "Bills" {
		t.Fatalf("expected top category Bills, got %q", stats.TopCategory)
	}
}
