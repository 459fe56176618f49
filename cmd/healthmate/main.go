package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	adapthttp "healthmate/internal/adapter/http"
	"healthmate/internal/adapter/memory"
	"healthmate/internal/adapter/postgres"
	"healthmate/internal/adapter/redisstore"
	"healthmate/internal/app"
	"healthmate/internal/config"
	"healthmate/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	sessionRepo, err := newSessionRepo(cfg.Session, db)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	authSvc := app.NewAuthService(db, sessionRepo, cfg.Session.TTL)
	logSvc := app.NewLogService(db)

	var sso *adapthttp.OIDC
	if cfg.OIDC.Enabled() {
		sso, err = adapthttp.NewOIDC(context.Background(), cfg.OIDC)
		if err != nil {
			log.Fatalf("oidc: %v", err)
		}
	}

	go sweepSessions(sessionRepo, cfg.Session.SweepInterval)

	h := adapthttp.New(authSvc, logSvc, sso).Handler()
	log.Printf("listening on %s (session store: %s)", cfg.Addr, cfg.Session.Store)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func newSessionRepo(cfg config.SessionConfig, db *postgres.DB) (domain.SessionRepository, error) {
	switch cfg.Store {
	case config.SessionStoreMemory:
		return memory.New().NewSessionRepo(), nil
	case config.SessionStorePostgres:
		return postgres.NewSessionRepo(db), nil
	case config.SessionStoreRedis:
		return redisstore.NewSessionRepo(redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return nil, fmt.Errorf("unsupported session store: %s", cfg.Store)
}

// sweepSessions periodically clears expired bindings. Redis expires keys
// on its own, for which DeleteExpired is a no-op.
func sweepSessions(repo domain.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repo.DeleteExpired(ctx); err != nil {
			log.Printf("session sweep: %v", err)
		}
		cancel()
	}
}
