// Package redisstore implements the session repository on Redis, for
// deployments where sessions must survive restarts and be shared across
// server instances.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"healthmate/internal/domain"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "session:"

// Options configures the Redis connection and key layout.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// SessionRepo implements domain.SessionRepository backed by Redis.
// Expiry rides on Redis key TTLs, so DeleteExpired has nothing to do.
type SessionRepo struct {
	client *redis.Client
	prefix string
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// NewSessionRepo connects to Redis and verifies the connection.
func NewSessionRepo(opts Options) (*SessionRepo, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &SessionRepo{client: client, prefix: prefix}, nil
}

func (r *SessionRepo) key(token string) string {
	return r.prefix + token
}

// Create stores a session binding under the token key with a TTL
// matching its expiry.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	s := domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	return r.client.Set(ctx, r.key(token), data, ttl).Err()
}

// GetByToken retrieves a session by token. An absent or already-expired
// key yields nil, not an error.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, r.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a session binding. Missing keys are not an error.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

// DeleteExpired is a no-op: Redis evicts expired keys via TTL.
func (r *SessionRepo) DeleteExpired(context.Context) error {
	return nil
}

// Close releases the Redis client.
func (r *SessionRepo) Close() error {
	return r.client.Close()
}
