package app

import (
	"context"
	"time"

	"healthmate/internal/domain"
)

// DefaultDashboardLimit caps how many entries the dashboard shows.
const DefaultDashboardLimit = 50

// LogService encapsulates health-log use cases. Every operation is
// scoped to the owner resolved by the authorization middleware; there is
// no unscoped read or write path.
type LogService struct {
	repo domain.HealthLogRepository
}

// NewLogService creates a LogService backed by the given repository.
func NewLogService(repo domain.HealthLogRepository) *LogService {
	return &LogService{repo: repo}
}

// Record stores a health entry for the owner. Values arrive already
// coerced at the form boundary; no further range validation applies.
func (s *LogService) Record(ctx context.Context, ownerID int64, m domain.Metrics) (int64, error) {
	return s.repo.AddLog(ctx, ownerID, m, time.Now())
}

// ListForOwner returns the owner's entries newest first, up to limit.
func (s *LogService) ListForOwner(ctx context.Context, ownerID int64, limit int) ([]domain.HealthLog, error) {
	if limit <= 0 {
		limit = DefaultDashboardLimit
	}
	return s.repo.ListLogsByOwner(ctx, ownerID, limit)
}
