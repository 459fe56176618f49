package domain

import (
	"context"
	"time"
)

// HealthLog is a single daily wellness entry owned by exactly one user.
// Entries are immutable once written.
type HealthLog struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Water      float64   `json:"water"`
	SleepHours float64   `json:"sleepHours"`
	Meals      Meals     `json:"meals"`
	Mood       string    `json:"mood"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Metrics carries the user-supplied portion of a health log entry.
type Metrics struct {
	Water      float64
	SleepHours float64
	Meals      Meals
	Mood       string
}

// HealthLogRepository is the port for health log persistence.
type HealthLogRepository interface {
	AddLog(ctx context.Context, userID int64, m Metrics, createdAt time.Time) (int64, error)
	ListLogsByOwner(ctx context.Context, userID int64, limit int) ([]HealthLog, error)
}
