package analytics

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleRecords() []Expense {
	return []Expense{
		{ID: "1", AmountCents: 10000, Category: "Food", Date: date("2024-01-05")},
		{ID: "2", AmountCents: 20000, Category: "Food", Date: date("2024-02-10")},
		{ID: "3", AmountCents: 5000, Category: "Travel", Date: date("2024-02-15")},
	}
}

// TestAggregateYear проверяет годовую сводку на эталонных данных.
func TestAggregateYear(t *testing.T) {
	result, err := Aggregate(sampleRecords(), 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TotalCents != 35000 {
		t.Fatalf("expected total 35000, got %d", result.TotalCents)
	}

	if result.PerMonthTotals[0] != 10000 || result.PerMonthTotals[1] != 25000 {
		t.Fatalf("unexpected month totals: %v", result.PerMonthTotals)
	}
	for month := 2; month < 12; month++ {
		if result.PerMonthTotals[month] != 0 {
			t.Fatalf("expected month %d to be zero, got %d", month+1, result.PerMonthTotals[month])
		}
	}

	if len(result.CategoryTotals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(result.CategoryTotals))
	}
	if result.CategoryTotals[0].Category != "Food" || result.CategoryTotals[0].TotalCents != 30000 {
		t.Fatalf("unexpected first category: %+v", result.CategoryTotals[0])
	}
	if result.CategoryTotals[1].Category != "Travel" || result.CategoryTotals[1].TotalCents != 5000 {
		t.Fatalf("unexpected second category: %+v", result.CategoryTotals[1])
	}

	if result.TopCategory != "Food" {
		t.Fatalf("expected top category Food, got %s", result.TopCategory)
	}
	if result.ActiveMonthCount != 2 {
		t.Fatalf("expected 2 active months, got %d", result.ActiveMonthCount)
	}
	if result.AverageMonthlyCents != 17500 {
		t.Fatalf("expected average 17500, got %d", result.AverageMonthlyCents)
	}
}

// TestAggregateMonthSum проверяет, что сумма помесячных итогов равна общей.
func TestAggregateMonthSum(t *testing.T) {
	result, err := Aggregate(sampleRecords(), 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var sum int64
	for _, total := range result.PerMonthTotals {
		sum += total
	}

	if sum != result.TotalCents {
		t.Fatalf("expected month totals to sum to %d, got %d", result.TotalCents, sum)
	}
}

// TestAggregateEmpty проверяет нулевую сводку по пустому набору записей.
func TestAggregateEmpty(t *testing.T) {
	result, err := Aggregate(nil, 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TotalCents != 0 {
		t.Fatalf("expected zero total, got %d", result.TotalCents)
	}
	for month, total := range result.PerMonthTotals {
		if total != 0 {
			t.Fatalf("expected month %d to be zero, got %d", month+1, total)
		}
	}
	if result.ActiveMonthCount != 0 {
		t.Fatalf("expected no active months, got %d", result.ActiveMonthCount)
	}
	if result.AverageMonthlyCents != 0 {
		t.Fatalf("expected zero average, got %d", result.AverageMonthlyCents)
	}
	if result.TopCategory != "" {
		t.Fatalf("expected empty top category, got %s", result.TopCategory)
	}
}

// TestAggregateIgnoresOtherYears проверяет фильтрацию по году.
func TestAggregateIgnoresOtherYears(t *testing.T) {
	records := append(sampleRecords(), Expense{ID: "4", AmountCents: 99900, Category: "Bills", Date: date("2023-12-31")})

	result, err := Aggregate(records, 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TotalCents != 35000 {
		t.Fatalf("expected total 35000, got %d", result.TotalCents)
	}
	if len(result.CategoryTotals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(result.CategoryTotals))
	}
}

// TestAggregateMonth проверяет посуточные суммы за месяц.
func TestAggregateMonth(t *testing.T) {
	result, err := AggregateMonth(sampleRecords(), 2024, time.February)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.PerDayTotals) != 29 {
		t.Fatalf("expected 29 day slots for Feb 2024, got %d", len(result.PerDayTotals))
	}
	if result.PerDayTotals[9] != 20000 {
		t.Fatalf("expected 20000 on day 10, got %d", result.PerDayTotals[9])
	}
	if result.PerDayTotals[14] != 5000 {
		t.Fatalf("expected 5000 on day 15, got %d", result.PerDayTotals[14])
	}
	if result.TotalCents != 25000 {
		t.Fatalf("expected total 25000, got %d", result.TotalCents)
	}
}

// TestAggregateMonthEmpty проверяет длину посуточного ряда без записей.
func TestAggregateMonthEmpty(t *testing.T) {
	result, err := AggregateMonth(nil, 2023, time.February)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.PerDayTotals) != 28 {
		t.Fatalf("expected 28 day slots for Feb 2023, got %d", len(result.PerDayTotals))
	}
}

// TestAggregateInvalidArguments проверяет отказ на неверных году и месяце.
func TestAggregateInvalidArguments(t *testing.T) {
	if _, err := Aggregate(nil, 99); err == nil {
		t.Fatal("expected error for two-digit year")
	}
	if _, err := AggregateMonth(nil, 2024, 0); err == nil {
		t.Fatal("expected error for month 0")
	}
	if _, err := AggregateMonth(nil, 2024, 13); err == nil {
		t.Fatal("expected error for month 13")
	}
}

// TestTopCategoryTie проверяет разрешение ничьей в пользу первой категории.
func TestTopCategoryTie(t *testing.T) {
	records := []Expense{
		{ID: "1", AmountCents: 5000, Category: "Travel", Date: date("2024-03-01")},
		{ID: "2", AmountCents: 5000, Category: "Food", Date: date("2024-03-02")},
	}

	result, err := Aggregate(records, 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TopCategory != "Travel" {
		t.Fatalf("expected tie to resolve to Travel, got %s", result.TopCategory)
	}
}
