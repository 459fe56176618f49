package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthmate/internal/domain"
)

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "alice@example.com", "hash1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero ID")
	}

	// Duplicate email is rejected, leaving exactly one record.
	if _, err := db.Create(ctx, "alice@example.com", "hash2"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	got, err := db.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got == nil || got.ID != u.ID || got.PasswordHash != "hash1" {
		t.Errorf("unexpected user: %+v", got)
	}

	byID, _ := db.GetByID(ctx, u.ID)
	if byID == nil || byID.Email != "alice@example.com" {
		t.Errorf("unexpected user by ID: %+v", byID)
	}

	missing, err := db.GetByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for missing user, got %v, %v", missing, err)
	}
}

func TestHealthLogRepository_OwnerIsolation(t *testing.T) {
	db := New()
	ctx := context.Background()

	now := time.Now()
	if _, err := db.AddLog(ctx, 1, domain.Metrics{Water: 8, Mood: "good"}, now); err != nil {
		t.Fatalf("AddLog: %v", err)
	}
	if _, err := db.AddLog(ctx, 2, domain.Metrics{Water: 2, Mood: "meh"}, now); err != nil {
		t.Fatalf("AddLog: %v", err)
	}

	logs, err := db.ListLogsByOwner(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListLogsByOwner: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 entry for owner 1, got %d", len(logs))
	}
	if logs[0].UserID != 1 || logs[0].Mood != "good" {
		t.Errorf("entry leaked across owners: %+v", logs[0])
	}

	// Owner with no entries gets an empty slice, not an error.
	none, err := db.ListLogsByOwner(ctx, 999, 10)
	if err != nil {
		t.Fatalf("ListLogsByOwner: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected 0 entries for owner 999, got %d", len(none))
	}
}

func TestHealthLogRepository_Ordering(t *testing.T) {
	db := New()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	db.AddLog(ctx, 1, domain.Metrics{Mood: "first"}, base)
	db.AddLog(ctx, 1, domain.Metrics{Mood: "second"}, base.Add(time.Hour))
	// Same timestamp as "second": insertion order breaks the tie.
	db.AddLog(ctx, 1, domain.Metrics{Mood: "third"}, base.Add(time.Hour))

	logs, err := db.ListLogsByOwner(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListLogsByOwner: %v", err)
	}
	want := []string{"third", "second", "first"}
	if len(logs) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(logs))
	}
	for i, mood := range want {
		if logs[i].Mood != mood {
			t.Errorf("position %d: expected %q, got %q", i, mood, logs[i].Mood)
		}
	}

	limited, _ := db.ListLogsByOwner(ctx, 1, 2)
	if len(limited) != 2 || limited[0].Mood != "third" {
		t.Errorf("limit not applied from the newest end: %+v", limited)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, 1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := repo.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if s == nil || s.UserID != 1 {
		t.Fatalf("unexpected session: %+v", s)
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "tok"); s != nil {
		t.Error("expected session gone after delete")
	}

	// Deleting again is not an error.
	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestSessionRepository_Expiry(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	repo.Create(ctx, 1, "stale", time.Now().Add(-time.Minute))
	repo.Create(ctx, 2, "fresh", time.Now().Add(time.Hour))

	if s, _ := repo.GetByToken(ctx, "stale"); s != nil {
		t.Error("expected expired session to read as absent")
	}

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "fresh"); s == nil {
		t.Error("DeleteExpired removed a live session")
	}
}
