package analytics

import "time"

// Expense — запись расхода в том виде, в котором ее потребляет агрегация.
// Дата должна быть нормализована до календарного дня (см. DayOf).
type Expense struct {
	ID          string
	AmountCents int64
	Category    string
	Reason      string
	Date        time.Time
}

// CategoryTotal — сумма по одной категории. Срез таких значений хранит
// категории в порядке первого появления во входных данных, этим же порядком
// разрешаются ничьи при выборе topCategory.
type CategoryTotal struct {
	Category   string
	TotalCents int64
}

// Result — сводка расходов за год или за месяц года.
type Result struct {
	TotalCents          int64
	PerMonthTotals      [12]int64
	PerDayTotals        []int64
	CategoryTotals      []CategoryTotal
	AverageMonthlyCents int64
	TopCategory         string
	ActiveMonthCount    int
}

// Aggregate строит сводку расходов за год: общую сумму, помесячные суммы
// (12 позиций, пустые месяцы — нули), суммы по категориям, среднемесячный
// расход (деленный на число активных месяцев, не на 12) и топ-категорию.
func Aggregate(records []Expense, year int) (Result, error) {
	if err := validateYear(year); err != nil {
		return Result{}, err
	}
	return aggregate(records, year, 0), nil
}

// AggregateMonth строит сводку за конкретный месяц года и дополнительно
// заполняет посуточные суммы по числу дней месяца.
func AggregateMonth(records []Expense, year int, month time.Month) (Result, error) {
	if err := validateYear(year); err != nil {
		return Result{}, err
	}
	if err := validateMonth(month); err != nil {
		return Result{}, err
	}
	return aggregate(records, year, month), nil
}

func aggregate(records []Expense, year int, month time.Month) Result {
	var result Result

	if month != 0 {
		result.PerDayTotals = make([]int64, DaysInMonth(year, month))
	}

	categoryIndex := make(map[string]int)

	for _, record := range records {
		if record.Date.Year() != year {
			continue
		}
		if month != 0 && record.Date.Month() != month {
			continue
		}

		result.TotalCents += record.AmountCents
		result.PerMonthTotals[int(record.Date.Month())-1] += record.AmountCents

		if month != 0 {
			result.PerDayTotals[record.Date.Day()-1] += record.AmountCents
		}

		idx, seen := categoryIndex[record.Category]
		if !seen {
			idx = len(result.CategoryTotals)
			categoryIndex[record.Category] = idx
			result.CategoryTotals = append(result.CategoryTotals, CategoryTotal{Category: record.Category})
		}
		result.CategoryTotals[idx].TotalCents += record.AmountCents
	}

	for _, total := range result.PerMonthTotals {
		if total != 0 {
			result.ActiveMonthCount++
		}
	}

	if result.ActiveMonthCount > 0 {
		result.AverageMonthlyCents = result.TotalCents / int64(result.ActiveMonthCount)
	}

	result.TopCategory = topCategory(result.CategoryTotals)

	return result
}

// topCategory возвращает категорию с наибольшей суммой; при равенстве
// побеждает категория, встретившаяся раньше. Пустой срез дает пустую строку.
func topCategory(totals []CategoryTotal) string {
	best := ""
	var bestTotal int64

	for _, entry := range totals {
		if best == "" || entry.TotalCents > bestTotal {
			best = entry.Category
			bestTotal = entry.TotalCents
		}
	}

	return best
}
