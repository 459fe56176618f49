package app

import (
	"context"
	"testing"
	"time"

	"healthmate/internal/domain"
)

type mockLogRepo struct {
	addFn  func(ctx context.Context, userID int64, m domain.Metrics, createdAt time.Time) (int64, error)
	listFn func(ctx context.Context, userID int64, limit int) ([]domain.HealthLog, error)
}

func (m *mockLogRepo) AddLog(ctx context.Context, userID int64, metrics domain.Metrics, createdAt time.Time) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, metrics, createdAt)
	}
	return 1, nil
}

func (m *mockLogRepo) ListLogsByOwner(ctx context.Context, userID int64, limit int) ([]domain.HealthLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func TestLogService_Record(t *testing.T) {
	ctx := context.Background()
	count := 3

	var gotOwner int64
	var gotMetrics domain.Metrics
	repo := &mockLogRepo{
		addFn: func(ctx context.Context, userID int64, m domain.Metrics, createdAt time.Time) (int64, error) {
			gotOwner = userID
			gotMetrics = m
			if createdAt.IsZero() {
				t.Error("expected a creation timestamp")
			}
			return 7, nil
		},
	}

	svc := NewLogService(repo)
	id, err := svc.Record(ctx, 42, domain.Metrics{
		Water:      8,
		SleepHours: 7,
		Meals:      domain.Meals{Count: &count},
		Mood:       "good",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id 7, got %d", id)
	}
	if gotOwner != 42 {
		t.Errorf("expected owner 42, got %d", gotOwner)
	}
	if gotMetrics.Mood != "good" || gotMetrics.Water != 8 {
		t.Errorf("metrics not passed through: %+v", gotMetrics)
	}
}

func TestLogService_ListForOwner_DefaultLimit(t *testing.T) {
	repo := &mockLogRepo{
		listFn: func(ctx context.Context, userID int64, limit int) ([]domain.HealthLog, error) {
			if limit != DefaultDashboardLimit {
				t.Errorf("expected default limit %d, got %d", DefaultDashboardLimit, limit)
			}
			return []domain.HealthLog{}, nil
		},
	}

	svc := NewLogService(repo)
	logs, err := svc.ListForOwner(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("ListForOwner: %v", err)
	}
	if logs == nil || len(logs) != 0 {
		t.Errorf("expected empty slice, got %v", logs)
	}
}
