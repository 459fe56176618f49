package postgres

import (
	"context"
	"database/sql"
	"time"

	"healthmate/internal/domain"
)

// AddLog inserts a new health entry owned by a user.
func (d *DB) AddLog(ctx context.Context, userID int64, m domain.Metrics, createdAt time.Time) (int64, error) {
	var count sql.NullInt64
	if m.Meals.Count != nil {
		count = sql.NullInt64{Int64: int64(*m.Meals.Count), Valid: true}
	}

	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO health_logs(user_id, water, sleep_hours, meals_count, meals_note, mood, created_at) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		userID, m.Water, m.SleepHours, count, m.Meals.Note, m.Mood, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// ListLogsByOwner returns a user's entries newest first up to limit. The
// id tie-break keeps the order stable when timestamps collide.
func (d *DB) ListLogsByOwner(ctx context.Context, userID int64, limit int) ([]domain.HealthLog, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, water, sleep_hours, meals_count, meals_note, mood, created_at FROM health_logs WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HealthLog, 0, limit)
	for rows.Next() {
		var l domain.HealthLog
		var count sql.NullInt64
		if err := rows.Scan(&l.ID, &l.Water, &l.SleepHours, &count, &l.Meals.Note, &l.Mood, &l.CreatedAt); err != nil {
			return nil, err
		}
		if count.Valid {
			n := int(count.Int64)
			l.Meals.Count = &n
		}
		l.UserID = userID
		out = append(out, l)
	}
	return out, rows.Err()
}
