// Package money конвертирует денежные суммы между десятичной строкой и центами.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseDecimalToCents разбирает десятичную сумму ("123.45" или "123,45")
// в центы. Третий знак после запятой округляется по правилу half-up.
// Отрицательные суммы и пустые строки отклоняются.
func ParseDecimalToCents(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidAmount
	}

	value = strings.ReplaceAll(value, ",", ".")
	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
		return 0, ErrInvalidAmount
	}

	intPart, fracPart, found := strings.Cut(value, ".")
	if intPart == "" {
		intPart = "0"
	}
	if found && strings.Contains(fracPart, ".") {
		return 0, ErrInvalidAmount
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := whole * 100

	switch {
	case fracPart == "":
	case len(fracPart) == 1:
		digit, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		cents += digit * 10
	default:
		frac, err := strconv.ParseInt(fracPart[:2], 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		cents += frac
		if len(fracPart) > 2 {
			if _, err := strconv.ParseInt(fracPart[2:], 10, 64); err != nil {
				return 0, ErrInvalidAmount
			}
			if fracPart[2] >= '5' {
				cents++
			}
		}
	}

	return cents, nil
}

// FormatCents форматирует центы в десятичную строку с двумя знаками.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
