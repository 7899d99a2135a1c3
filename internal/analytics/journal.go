package analytics

// RatingNote — оценка 1..10 с произвольной заметкой.
type RatingNote struct {
	Rating int    `json:"rating"`
	Note   string `json:"note"`
}

// JournalEntry — одна запись дневника, не больше одной на календарный месяц.
// MonthKey предполагается уже проверенным через ParseMonthKey.
type JournalEntry struct {
	MonthKey       string     `json:"month_year"`
	MonthHighlight string     `json:"month_highlight"`
	SkillsLearnt   string     `json:"skills_learnt"`
	Productivity   RatingNote `json:"productivity"`
	Health         RatingNote `json:"health"`
	Mood           RatingNote `json:"mood"`
}

// YearJournal — записи одного года плюс три 12-точечных ряда для графиков.
// Месяцы без записи остаются нулями.
type YearJournal struct {
	Months       map[string]JournalEntry `json:"months"`
	Productivity [12]int                 `json:"productivity"`
	Health       [12]int                 `json:"health"`
	Mood         [12]int                 `json:"mood"`
}

// OrganizeJournal группирует записи дневника по годам. Записи с ключом,
// который не разбирается, молча пропускаются: валидация происходит раньше,
// на границе входных данных.
func OrganizeJournal(entries []JournalEntry) map[int]YearJournal {
	years := make(map[int]YearJournal)

	for _, entry := range entries {
		year, month, err := ParseMonthKey(entry.MonthKey)
		if err != nil {
			continue
		}

		view, ok := years[year]
		if !ok {
			view = EmptyYearJournal()
		}

		idx := int(month) - 1
		view.Months[entry.MonthKey[5:]] = entry
		view.Productivity[idx] = entry.Productivity.Rating
		view.Health[idx] = entry.Health.Rating
		view.Mood[idx] = entry.Mood.Rating

		years[year] = view
	}

	return years
}

// EmptyYearJournal возвращает вид года без записей: пустая карта месяцев,
// все ряды — нули. Используется, когда запрошен год, которого нет в данных.
func EmptyYearJournal() YearJournal {
	return YearJournal{Months: make(map[string]JournalEntry)}
}
