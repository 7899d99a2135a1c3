package analytics

import (
	"sort"
	"time"
)

type SortField string

type SortOrder string

const (
	SortFieldDate   SortField = "date"
	SortFieldAmount SortField = "amount"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter — набор необязательных условий, объединяемых логическим И.
// Отсутствующее поле означает отсутствие ограничения.
type Filter struct {
	Categories     []string
	MinAmountCents *int64
	MaxAmountCents *int64
	StartDate      *time.Time
	EndDate        *time.Time
}

// Sort задает поле и направление сортировки. Нулевое значение оставляет
// исходный порядок записей.
type Sort struct {
	Field SortField
	Order SortOrder
}

// Apply фильтрует и сортирует записи расходов. Входной срез не изменяется;
// сортировка стабильная, поэтому равные ключи сохраняют исходный порядок.
func Apply(records []Expense, filter Filter, sortSpec Sort) []Expense {
	out := make([]Expense, 0, len(records))

	categories := make(map[string]struct{}, len(filter.Categories))
	for _, category := range filter.Categories {
		categories[category] = struct{}{}
	}

	for _, record := range records {
		if len(categories) > 0 {
			if _, ok := categories[record.Category]; !ok {
				continue
			}
		}
		if filter.MinAmountCents != nil && record.AmountCents < *filter.MinAmountCents {
			continue
		}
		if filter.MaxAmountCents != nil && record.AmountCents > *filter.MaxAmountCents {
			continue
		}
		if filter.StartDate != nil && DayOf(record.Date).Before(DayOf(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && DayOf(record.Date).After(DayOf(*filter.EndDate)) {
			continue
		}

		out = append(out, record)
	}

	switch sortSpec.Field {
	case SortFieldDate:
		sort.SliceStable(out, func(i, j int) bool {
			if sortSpec.Order == SortDesc {
				return out[i].Date.After(out[j].Date)
			}
			return out[i].Date.Before(out[j].Date)
		})
	case SortFieldAmount:
		sort.SliceStable(out, func(i, j int) bool {
			if sortSpec.Order == SortDesc {
				return out[i].AmountCents > out[j].AmountCents
			}
			return out[i].AmountCents < out[j].AmountCents
		})
	}

	return out
}
