package analytics

import (
	"math"
	"testing"
)

var testPalette = []string{"#A8DADC", "#457B9D", "#F4A261"}

// TestBuildBreakdown проверяет проценты и порядок на эталонных данных.
func TestBuildBreakdown(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Food", TotalCents: 30000},
		{Category: "Travel", TotalCents: 5000},
	}

	breakdown := BuildBreakdown(totals, testPalette)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(breakdown))
	}

	if breakdown[0].Name != "Food" || breakdown[0].Percentage != 85.7 {
		t.Fatalf("unexpected first entry: %+v", breakdown[0])
	}
	if breakdown[1].Name != "Travel" || breakdown[1].Percentage != 14.3 {
		t.Fatalf("unexpected second entry: %+v", breakdown[1])
	}
}

// TestBuildBreakdownZeroTotal проверяет пустой результат при нулевой сумме.
func TestBuildBreakdownZeroTotal(t *testing.T) {
	if got := BuildBreakdown(nil, testPalette); len(got) != 0 {
		t.Fatalf("expected empty breakdown, got %v", got)
	}

	totals := []CategoryTotal{{Category: "Food"}, {Category: "Travel"}}
	if got := BuildBreakdown(totals, testPalette); len(got) != 0 {
		t.Fatalf("expected empty breakdown for all-zero totals, got %v", got)
	}
}

// TestBuildBreakdownPercentageSum проверяет сумму процентов в допуске округления.
func TestBuildBreakdownPercentageSum(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Food", TotalCents: 10000},
		{Category: "Travel", TotalCents: 10000},
		{Category: "Bills", TotalCents: 10000},
	}

	breakdown := BuildBreakdown(totals, testPalette)

	var sum float64
	for _, entry := range breakdown {
		sum += entry.Percentage
	}

	tolerance := 0.1 * float64(len(breakdown))
	if math.Abs(sum-100.0) > tolerance {
		t.Fatalf("expected percentages to sum to 100 within %.1f, got %.1f", tolerance, sum)
	}
}

// TestBuildBreakdownOrder проверяет сортировку по сумме и имени.
func TestBuildBreakdownOrder(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Travel", TotalCents: 5000},
		{Category: "Food", TotalCents: 5000},
		{Category: "Bills", TotalCents: 20000},
	}

	breakdown := BuildBreakdown(totals, testPalette)

	want := []string{"Bills", "Food", "Travel"}
	for idx, name := range want {
		if breakdown[idx].Name != name {
			t.Fatalf("expected %s at position %d, got %s", name, idx, breakdown[idx].Name)
		}
	}
}

// TestBuildBreakdownPaletteCycling проверяет циклический выбор цвета по индексу.
func TestBuildBreakdownPaletteCycling(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Food", TotalCents: 5000},
		{Category: "Travel", TotalCents: 4000},
		{Category: "Bills", TotalCents: 3000},
		{Category: "Health", TotalCents: 2000},
	}

	breakdown := BuildBreakdown(totals, testPalette)

	if breakdown[3].ColorIndex != 0 {
		t.Fatalf("expected fourth entry to wrap to color index 0, got %d", breakdown[3].ColorIndex)
	}
	if breakdown[3].Color != testPalette[0] {
		t.Fatalf("expected color %s, got %s", testPalette[0], breakdown[3].Color)
	}
}

// TestBuildBreakdownEmptyPalette проверяет работу без палитры.
func TestBuildBreakdownEmptyPalette(t *testing.T) {
	totals := []CategoryTotal{{Category: "Food", TotalCents: 5000}}

	breakdown := BuildBreakdown(totals, nil)
	if len(breakdown) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(breakdown))
	}
	if breakdown[0].Color != "" || breakdown[0].ColorIndex != 0 {
		t.Fatalf("expected no color assignment, got %+v", breakdown[0])
	}
}
