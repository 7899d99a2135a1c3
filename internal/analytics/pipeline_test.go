package analytics

import (
	"reflect"
	"testing"
)

func int64Ptr(v int64) *int64 { return &v }

// TestApplyMinAmountFilter проверяет нижнюю границу суммы и сортировку по убыванию.
func TestApplyMinAmountFilter(t *testing.T) {
	records := sampleRecords()

	out := Apply(records, Filter{MinAmountCents: int64Ptr(10000)}, Sort{Field: SortFieldAmount, Order: SortDesc})

	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].AmountCents != 20000 || out[1].AmountCents != 10000 {
		t.Fatalf("unexpected order: %d, %d", out[0].AmountCents, out[1].AmountCents)
	}
}

// TestApplyCategoryFilter проверяет фильтр по множеству категорий.
func TestApplyCategoryFilter(t *testing.T) {
	out := Apply(sampleRecords(), Filter{Categories: []string{"Travel"}}, Sort{})

	if len(out) != 1 || out[0].Category != "Travel" {
		t.Fatalf("expected only Travel, got %v", out)
	}
}

// TestApplyDateRangeFilter проверяет включающие границы дат.
func TestApplyDateRangeFilter(t *testing.T) {
	start := date("2024-02-10")
	end := date("2024-02-15")

	out := Apply(sampleRecords(), Filter{StartDate: &start, EndDate: &end}, Sort{Field: SortFieldDate, Order: SortAsc})

	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if !out[0].Date.Equal(start) || !out[1].Date.Equal(end) {
		t.Fatalf("unexpected dates: %v, %v", out[0].Date, out[1].Date)
	}
}

// TestApplyDoesNotMutateInput проверяет неизменность входного среза.
func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	snapshot := make([]Expense, len(records))
	copy(snapshot, records)

	Apply(records, Filter{Categories: []string{"Food"}}, Sort{Field: SortFieldAmount, Order: SortDesc})

	if !reflect.DeepEqual(records, snapshot) {
		t.Fatal("expected input to stay unchanged")
	}
}

// TestApplyIdempotent проверяет идемпотентность конвейера.
func TestApplyIdempotent(t *testing.T) {
	filter := Filter{MinAmountCents: int64Ptr(5000)}
	sortSpec := Sort{Field: SortFieldDate, Order: SortDesc}

	once := Apply(sampleRecords(), filter, sortSpec)
	twice := Apply(once, filter, sortSpec)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected identical output, got %v and %v", once, twice)
	}
}

// TestApplyStableSort проверяет сохранение исходного порядка при равных ключах.
func TestApplyStableSort(t *testing.T) {
	records := []Expense{
		{ID: "a", AmountCents: 5000, Category: "Food", Date: date("2024-01-01")},
		{ID: "b", AmountCents: 5000, Category: "Travel", Date: date("2024-01-01")},
		{ID: "c", AmountCents: 5000, Category: "Bills", Date: date("2024-01-01")},
	}

	out := Apply(records, Filter{}, Sort{Field: SortFieldAmount, Order: SortAsc})

	if out[0].ID != "a" || out[1].ID != "b" || out[2].ID != "c" {
		t.Fatalf("expected stable order a,b,c, got %s,%s,%s", out[0].ID, out[1].ID, out[2].ID)
	}
}

// TestApplyNoSort проверяет, что пустая спецификация не меняет порядок.
func TestApplyNoSort(t *testing.T) {
	records := sampleRecords()

	out := Apply(records, Filter{}, Sort{})

	if !reflect.DeepEqual(out, records) {
		t.Fatalf("expected original order, got %v", out)
	}
}
