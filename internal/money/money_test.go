package money

import "testing"

// TestParseDecimalToCents проверяет разбор типовых сумм.
func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12", 1200},
		{"12.3", 1230},
		{"0.05", 5},
		{"12.345", 1235},
		{"12.344", 1234},
		{".50", 50},
		{"0", 0},
	}

	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

// TestParseDecimalToCentsInvalid проверяет отказ на некорректном вводе.
func TestParseDecimalToCentsInvalid(t *testing.T) {
	invalid := []string{"", " ", "-1.00", "+1.00", "1.2.3", "abc", "1.a"}

	for _, value := range invalid {
		if _, err := ParseDecimalToCents(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

// TestFormatCents проверяет форматирование в десятичную строку.
func TestFormatCents(t *testing.T) {
	if got := FormatCents(1234); got != "12.34" {
		t.Fatalf("expected 12.34, got %s", got)
	}
	if got := FormatCents(5); got != "0.05" {
		t.Fatalf("expected 0.05, got %s", got)
	}
	if got := FormatCents(-1234); got != "-12.34" {
		t.Fatalf("expected -12.34, got %s", got)
	}
}
