package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-tracker/backend/internal/analytics"
	"example.com/expense-tracker/backend/internal/auth"
	"example.com/expense-tracker/backend/internal/models"
	"example.com/expense-tracker/backend/internal/notifications"
	"example.com/expense-tracker/backend/internal/repository"
)

type JournalHandler struct {
	Journal *repository.JournalRepository
	Hub     *notifications.Hub
}

// NewJournalHandler создает обработчик дневника.
func NewJournalHandler(journal *repository.JournalRepository, hub *notifications.Hub) *JournalHandler {
	return &JournalHandler{Journal: journal, Hub: hub}
}

type RatingPayload struct {
	Rating int    `json:"rating" validate:"required,min=1,max=10"`
	Note   string `json:"note" validate:"max=1000"`
}

type UpsertJournalRequest struct {
	MonthHighlight string        `json:"month_highlight" validate:"max=1000"`
	SkillsLearnt   string        `json:"skills_learnt" validate:"max=1000"`
	Productivity   RatingPayload `json:"productivity"`
	Health         RatingPayload `json:"health"`
	Mood           RatingPayload `json:"mood"`
}

type JournalListResponse struct {
	Entries []models.JournalEntry `json:"entries"`
}

type JournalYearResponse struct {
	Year    int                   `json:"year"`
	Journal analytics.YearJournal `json:"journal"`
}

// List возвращает все записи дневника пользователя.
func (h *JournalHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	entries, err := h.Journal.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, JournalListResponse{Entries: entries})
}

// Year возвращает вид одного года: записи по месяцам и три 12-точечных
// ряда для графиков. Год без записей дает пустой вид, а не 404.
func (h *JournalHandler) Year(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1000 || year > 9999 {
		return badRequest(c, "invalid year")
	}

	entries, err := h.Journal.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	years := analytics.OrganizeJournal(toAnalyticsEntries(entries))

	view, ok := years[year]
	if !ok {
		view = analytics.EmptyYearJournal()
	}

	return c.JSON(http.StatusOK, JournalYearResponse{Year: year, Journal: view})
}

// Get возвращает запись одного месяца.
func (h *JournalHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	monthKey := c.Param("monthYear")
	if _, _, err := analytics.ParseMonthKey(monthKey); err != nil {
		return badRequest(c, "invalid month key")
	}

	entry, err := h.Journal.GetByMonth(c.Request().Context(), userID, monthKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "journal entry not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, entry)
}

// Upsert создает или обновляет запись месяца по ключу из пути.
func (h *JournalHandler) Upsert(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	monthKey := c.Param("monthYear")
	if _, _, err := analytics.ParseMonthKey(monthKey); err != nil {
		return badRequest(c, "invalid month key")
	}

	var req UpsertJournalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	entry := models.JournalEntry{
		UserID:         userID,
		MonthKey:       monthKey,
		MonthHighlight: req.MonthHighlight,
		SkillsLearnt:   req.SkillsLearnt,
		Productivity:   models.Rating{Rating: req.Productivity.Rating, Note: req.Productivity.Note},
		Health:         models.Rating{Rating: req.Health.Rating, Note: req.Health.Note},
		Mood:           models.Rating{Rating: req.Mood.Rating, Note: req.Mood.Note},
	}

	saved, err := h.Journal.Upsert(c.Request().Context(), entry)
	if err != nil {
		return serverError(c)
	}

	publishJournalEvent(h.Hub, userID, notifications.EventJournalUpdated, monthKey)

	return c.JSON(http.StatusOK, saved)
}

// Delete удаляет запись месяца.
func (h *JournalHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	monthKey := c.Param("monthYear")
	if _, _, err := analytics.ParseMonthKey(monthKey); err != nil {
		return badRequest(c, "invalid month key")
	}

	if err := h.Journal.Delete(c.Request().Context(), userID, monthKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "journal entry not found")
		}
		return serverError(c)
	}

	publishJournalEvent(h.Hub, userID, notifications.EventJournalDeleted, monthKey)

	return c.NoContent(http.StatusNoContent)
}

func toAnalyticsEntries(entries []models.JournalEntry) []analytics.JournalEntry {
	out := make([]analytics.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, analytics.JournalEntry{
			MonthKey:       entry.MonthKey,
			MonthHighlight: entry.MonthHighlight,
			SkillsLearnt:   entry.SkillsLearnt,
			Productivity:   analytics.RatingNote{Rating: entry.Productivity.Rating, Note: entry.Productivity.Note},
			Health:         analytics.RatingNote{Rating: entry.Health.Rating, Note: entry.Health.Note},
			Mood:           analytics.RatingNote{Rating: entry.Mood.Rating, Note: entry.Mood.Note},
		})
	}
	return out
}

func publishJournalEvent(hub *notifications.Hub, userID uuid.UUID, eventType, monthKey string) {
	if hub == nil {
		return
	}

	hub.Publish(userID, notifications.Event{
		Type: eventType,
		Data: map[string]interface{}{"month_year": monthKey},
	})
}
