package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/expense-tracker/backend/internal/models"
)

type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository создает репозиторий расходов.
func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create записывает новый расход.
func (r *ExpenseRepository) Create(ctx context.Context, userID uuid.UUID, amountCents int64, category, reason string, date time.Time) (models.Expense, error) {
	var expense models.Expense

	if amountCents < 0 {
		return expense, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO expenses (user_id, amount_cents, category, reason, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, amount_cents, category, reason, date, created_at`,
		userID, amountCents, category, reason, date,
	).Scan(&expense.ID, &expense.UserID, &expense.AmountCents, &expense.Category, &expense.Reason, &expense.Date, &expense.CreatedAt)
	if err != nil {
		return expense, err
	}

	return expense, nil
}

// Delete удаляет расход пользователя без возможности восстановления.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM expenses
		 WHERE id = $1 AND user_id = $2`,
		expenseID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID возвращает расход пользователя по идентификатору.
func (r *ExpenseRepository) GetByID(ctx context.Context, userID, expenseID uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, amount_cents, category, reason, date, created_at
		 FROM expenses
		 WHERE id = $1 AND user_id = $2`,
		expenseID, userID,
	).Scan(&expense.ID, &expense.UserID, &expense.AmountCents, &expense.Category, &expense.Reason, &expense.Date, &expense.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense, ErrNotFound
		}
		return expense, err
	}

	return expense, nil
}

// ListByUser возвращает все расходы пользователя по возрастанию даты.
// Порядок стабилен (дата, затем момент создания), на нем держится
// детерминизм разрешения ничьих в агрегации.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount_cents, category, reason, date, created_at
		 FROM expenses
		 WHERE user_id = $1
		 ORDER BY date, created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// ListRecentByUser возвращает последние расходы пользователя.
func (r *ExpenseRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Expense, error) {
	if limit <= 0 {
		return nil, ErrInvalid
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount_cents, category, reason, date, created_at
		 FROM expenses
		 WHERE user_id = $1
		 ORDER BY date DESC, created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// ListYears возвращает годы, в которых у пользователя есть расходы,
// по убыванию.
func (r *ExpenseRepository) ListYears(ctx context.Context, userID uuid.UUID) ([]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS year
		 FROM expenses
		 WHERE user_id = $1
		 ORDER BY year DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

func scanExpenses(rows pgx.Rows) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense

		err := rows.Scan(&expense.ID, &expense.UserID, &expense.AmountCents, &expense.Category, &expense.Reason, &expense.Date, &expense.CreatedAt)
		if err != nil {
			return nil, err
		}

		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
