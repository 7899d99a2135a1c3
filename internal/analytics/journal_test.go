package analytics

import "testing"

// TestOrganizeJournal проверяет группировку по годам и заполнение рядов.
func TestOrganizeJournal(t *testing.T) {
	entries := []JournalEntry{
		{
			MonthKey:     "2024-03",
			Productivity: RatingNote{Rating: 7},
			Health:       RatingNote{Rating: 5},
			Mood:         RatingNote{Rating: 8},
		},
	}

	years := OrganizeJournal(entries)

	view, ok := years[2024]
	if !ok {
		t.Fatal("expected a view for 2024")
	}

	if view.Productivity[2] != 7 || view.Health[2] != 5 || view.Mood[2] != 8 {
		t.Fatalf("unexpected series values: %v %v %v", view.Productivity, view.Health, view.Mood)
	}

	for idx := 0; idx < 12; idx++ {
		if idx == 2 {
			continue
		}
		if view.Productivity[idx] != 0 || view.Health[idx] != 0 || view.Mood[idx] != 0 {
			t.Fatalf("expected zeroes at index %d", idx)
		}
	}

	if _, ok := view.Months["03"]; !ok {
		t.Fatal("expected entry under month number 03")
	}
}

// TestOrganizeJournalMultipleYears проверяет раскладку записей разных лет.
func TestOrganizeJournalMultipleYears(t *testing.T) {
	entries := []JournalEntry{
		{MonthKey: "2023-12", Mood: RatingNote{Rating: 4}},
		{MonthKey: "2024-01", Mood: RatingNote{Rating: 9}},
	}

	years := OrganizeJournal(entries)

	if len(years) != 2 {
		t.Fatalf("expected 2 years, got %d", len(years))
	}
	if years[2023].Mood[11] != 4 {
		t.Fatalf("expected mood 4 in Dec 2023, got %d", years[2023].Mood[11])
	}
	if years[2024].Mood[0] != 9 {
		t.Fatalf("expected mood 9 in Jan 2024, got %d", years[2024].Mood[0])
	}
}

// TestOrganizeJournalSkipsMalformedKeys проверяет пропуск битых ключей.
func TestOrganizeJournalSkipsMalformedKeys(t *testing.T) {
	entries := []JournalEntry{
		{MonthKey: "2024-13"},
		{MonthKey: "march-2024"},
	}

	if years := OrganizeJournal(entries); len(years) != 0 {
		t.Fatalf("expected no years, got %v", years)
	}
}

// TestEmptyYearJournal проверяет пустой вид года.
func TestEmptyYearJournal(t *testing.T) {
	view := EmptyYearJournal()

	if len(view.Months) != 0 {
		t.Fatalf("expected empty month map, got %v", view.Months)
	}
	for idx := 0; idx < 12; idx++ {
		if view.Productivity[idx] != 0 || view.Health[idx] != 0 || view.Mood[idx] != 0 {
			t.Fatalf("expected zero series at index %d", idx)
		}
	}
}
