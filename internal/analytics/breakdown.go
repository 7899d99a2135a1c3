package analytics

import (
	"math"
	"sort"
)

// BreakdownEntry — доля категории в общей сумме за период.
type BreakdownEntry struct {
	Name        string  `json:"name"`
	AmountCents int64   `json:"amount_cents"`
	Percentage  float64 `json:"percentage"`
	ColorIndex  int     `json:"color_index"`
	Color       string  `json:"color,omitempty"`
}

// BuildBreakdown превращает суммы по категориям в разбивку для круговой
// диаграммы: сортировка по убыванию суммы (ничьи — по имени), проценты с
// округлением до одного знака, цвет из палитры по циклическому индексу.
// Нулевая общая сумма дает пустой срез, а не деление на ноль.
func BuildBreakdown(totals []CategoryTotal, palette []string) []BreakdownEntry {
	var grandTotal int64
	for _, entry := range totals {
		grandTotal += entry.TotalCents
	}

	if grandTotal == 0 {
		return []BreakdownEntry{}
	}

	sorted := make([]CategoryTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalCents != sorted[j].TotalCents {
			return sorted[i].TotalCents > sorted[j].TotalCents
		}
		return sorted[i].Category < sorted[j].Category
	})

	breakdown := make([]BreakdownEntry, 0, len(sorted))
	for idx, entry := range sorted {
		item := BreakdownEntry{
			Name:        entry.Category,
			AmountCents: entry.TotalCents,
			Percentage:  roundPercentage(entry.TotalCents, grandTotal),
		}
		if len(palette) > 0 {
			item.ColorIndex = idx % len(palette)
			item.Color = palette[item.ColorIndex]
		}
		breakdown = append(breakdown, item)
	}

	return breakdown
}

func roundPercentage(part, whole int64) float64 {
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
