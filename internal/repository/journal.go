package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/expense-tracker/backend/internal/models"
)

type JournalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository создает репозиторий записей дневника.
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

// Upsert создает или обновляет запись месяца. Уникальность пары
// (user_id, month_key) обеспечивает ограничение в базе: не больше
// одной записи на календарный месяц.
func (r *JournalRepository) Upsert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	var saved models.JournalEntry

	err := r.db.QueryRow(ctx,
		`INSERT INTO journal_entries
		     (user_id, month_key, month_highlight, skills_learnt,
		      productivity_rating, productivity_note,
		      health_rating, health_note,
		      mood_rating, mood_note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, month_key) DO UPDATE
		 SET month_highlight = EXCLUDED.month_highlight,
		     skills_learnt = EXCLUDED.skills_learnt,
		     productivity_rating = EXCLUDED.productivity_rating,
		     productivity_note = EXCLUDED.productivity_note,
		     health_rating = EXCLUDED.health_rating,
		     health_note = EXCLUDED.health_note,
		     mood_rating = EXCLUDED.mood_rating,
		     mood_note = EXCLUDED.mood_note,
		     updated_at = NOW()
		 RETURNING id, user_id, month_key, month_highlight, skills_learnt,
		           productivity_rating, productivity_note,
		           health_rating, health_note,
		           mood_rating, mood_note,
		           created_at, updated_at`,
		entry.UserID, entry.MonthKey, entry.MonthHighlight, entry.SkillsLearnt,
		entry.Productivity.Rating, entry.Productivity.Note,
		entry.Health.Rating, entry.Health.Note,
		entry.Mood.Rating, entry.Mood.Note,
	).Scan(
		&saved.ID, &saved.UserID, &saved.MonthKey, &saved.MonthHighlight, &saved.SkillsLearnt,
		&saved.Productivity.Rating, &saved.Productivity.Note,
		&saved.Health.Rating, &saved.Health.Note,
		&saved.Mood.Rating, &saved.Mood.Note,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return saved, err
	}

	return saved, nil
}

// GetByMonth возвращает запись пользователя за месяц.
func (r *JournalRepository) GetByMonth(ctx context.Context, userID uuid.UUID, monthKey string) (models.JournalEntry, error) {
	var entry models.JournalEntry

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, month_key, month_highlight, skills_learnt,
		        productivity_rating, productivity_note,
		        health_rating, health_note,
		        mood_rating, mood_note,
		        created_at, updated_at
		 FROM journal_entries
		 WHERE user_id = $1 AND month_key = $2`,
		userID, monthKey,
	).Scan(
		&entry.ID, &entry.UserID, &entry.MonthKey, &entry.MonthHighlight, &entry.SkillsLearnt,
		&entry.Productivity.Rating, &entry.Productivity.Note,
		&entry.Health.Rating, &entry.Health.Note,
		&entry.Mood.Rating, &entry.Mood.Note,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry, ErrNotFound
		}
		return entry, err
	}

	return entry, nil
}

// ListByUser возвращает все записи дневника пользователя по ключу месяца.
func (r *JournalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, month_key, month_highlight, skills_learnt,
		        productivity_rating, productivity_note,
		        health_rating, health_note,
		        mood_rating, mood_note,
		        created_at, updated_at
		 FROM journal_entries
		 WHERE user_id = $1
		 ORDER BY month_key`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var entry models.JournalEntry

		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.MonthKey, &entry.MonthHighlight, &entry.SkillsLearnt,
			&entry.Productivity.Rating, &entry.Productivity.Note,
			&entry.Health.Rating, &entry.Health.Note,
			&entry.Mood.Rating, &entry.Mood.Note,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete удаляет запись месяца.
func (r *JournalRepository) Delete(ctx context.Context, userID uuid.UUID, monthKey string) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM journal_entries
		 WHERE user_id = $1 AND month_key = $2`,
		userID, monthKey,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
