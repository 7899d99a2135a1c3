package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-tracker/backend/internal/auth"
)

// TestJournalGetInvalidMonthKey проверяет, что неверный ключ месяца
// отклоняется на границе, до обращения к хранилищу.
func TestJournalGetInvalidMonthKey(t *testing.T) {
	h := &JournalHandler{}

	for _, monthKey := range []string{"2024-13", "2024-1", "202403", "march"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		c := e.NewContext(req, rec)
		c.SetParamNames("monthYear")
		c.SetParamValues(monthKey)
		c.Set(auth.ContextUserIDKey, uuid.New())

		if err := h.Get(c); err != nil {
			t.Fatalf("key %q: expected no error, got %v", monthKey, err)
		}

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("key %q: expected status 400, got %d", monthKey, rec.Code)
		}
	}
}
