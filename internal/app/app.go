// Package app wires the stores together for one process run: storage
// first, then the identity session, then the domain state seeded from
// catalog + snapshot.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"medconnect/internal/auth"
	"medconnect/internal/booking"
	"medconnect/internal/config"
	"medconnect/internal/identity"
	"medconnect/internal/storage"
	"medconnect/internal/store"
)

type App struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Storage  storage.Storage
	Identity *identity.Store
	Domain   *store.Store
	Booking  *booking.Engine

	redis *storage.Redis
}

// New loads config and builds the full object graph against Redis.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := NewLogger(cfg.Environment)

	kv, err := storage.NewRedis(&redis.Options{Addr: cfg.RedisAddr}, cfg.Instance)
	if err != nil {
		return nil, err
	}
	if err := kv.Ping(ctx); err != nil {
		kv.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	a := FromStorage(ctx, cfg, log, kv)
	a.redis = kv
	return a, nil
}

// FromStorage builds the object graph on an already-open Storage. Tests
// use it with the in-memory backend.
func FromStorage(ctx context.Context, cfg *config.Config, log *zap.Logger, kv storage.Storage) *App {
	id := identity.New(ctx, kv, log, identity.Options{
		Verifier:            auth.MockVerifier{Delay: cfg.AuthDelay},
		Secret:              cfg.JWTSecret,
		AdminEmail:          cfg.AdminEmail,
		AdminCredentialHash: cfg.AdminCredHash,
	})
	dom := store.New(ctx, kv, log)

	return &App{
		Cfg:      cfg,
		Log:      log,
		Storage:  kv,
		Identity: id,
		Domain:   dom,
		Booking:  booking.NewEngine(dom),
	}
}

func (a *App) Close() error {
	_ = a.Log.Sync()
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
