package redisstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func newTestRepo(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	repo, err := NewSessionRepo(Options{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewSessionRepo error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo, mr
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	if err := repo.Create(ctx, 1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	s, err := repo.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatalf("GetByToken error: %v", err)
	}
	if s == nil || s.UserID != 1 || s.Token != "tok" {
		t.Fatalf("unexpected session: %+v", s)
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "tok"); s != nil {
		t.Fatalf("expected session gone after delete, got %+v", s)
	}

	// Deleting an absent token is not an error.
	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	if err := repo.Create(ctx, 1, "tok", time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	s, err := repo.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatalf("GetByToken error: %v", err)
	}
	if s != nil {
		t.Fatalf("expected expired session to read as absent, got %+v", s)
	}
}

func TestCreateAlreadyExpired(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.Create(context.Background(), 1, "tok", time.Now().Add(-time.Minute)); err == nil {
		t.Fatal("expected error creating a session with a past expiry")
	}
}
