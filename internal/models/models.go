package models

import (
	"time"

	"github.com/google/uuid"
)

// Categories — фиксированный набор категорий расходов.
var Categories = []string{
	"Food",
	"Groceries",
	"Travel",
	"Health",
	"Leisure",
	"Education",
	"Gadgets",
	"Bills",
	"Shopping",
	"Grooming",
	"Automobile",
	"Others",
}

// IsValidCategory проверяет, входит ли категория в фиксированный набор.
func IsValidCategory(category string) bool {
	for _, known := range Categories {
		if known == category {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Expense struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Rating struct {
	Rating int    `json:"rating"`
	Note   string `json:"note"`
}

type JournalEntry struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	MonthKey       string    `json:"month_year"`
	MonthHighlight string    `json:"month_highlight"`
	SkillsLearnt   string    `json:"skills_learnt"`
	Productivity   Rating    `json:"productivity"`
	Health         Rating    `json:"health"`
	Mood           Rating    `json:"mood"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
