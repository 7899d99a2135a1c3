package analytics

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout — каноничный формат даты расхода.
	DateLayout = "2006-01-02"
	// MonthKeyLayout — каноничный формат ключа месяца.
	MonthKeyLayout = "2006-01"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidMonthKey = errors.New("invalid month key")
	ErrInvalidYear     = errors.New("year must be a four-digit number")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
)

// ParseDate разбирает дату в формате YYYY-MM-DD или ISO-8601 с временем
// и нормализует ее до календарного дня в UTC.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return DayOf(t), nil
}

// DayOf отбрасывает время суток, оставляя календарный день в UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthKey возвращает ключ месяца YYYY-MM для даты.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// ParseMonthKey разбирает ключ месяца YYYY-MM и проверяет диапазоны.
// Это граница валидации: дальше по коду ключи считаются корректными.
func ParseMonthKey(value string) (year int, month time.Month, err error) {
	t, parseErr := time.Parse(MonthKeyLayout, value)
	if parseErr != nil || t.Format(MonthKeyLayout) != value {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthKey, value)
	}

	if err := validateYear(t.Year()); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthKey, value)
	}

	return t.Year(), t.Month(), nil
}

// FormatMonthKey собирает ключ месяца из года и месяца.
func FormatMonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DaysInMonth возвращает число дней в месяце с учетом високосных лет.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validateYear(year int) error {
	if year < 1000 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

func validateMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	return nil
}
