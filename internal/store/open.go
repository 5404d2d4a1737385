package store

import (
	"context"
	"fmt"
	"time"

	"bilantra/internal/config"
	"bilantra/internal/db"
	"bilantra/internal/observability"

	"github.com/sirupsen/logrus"
)

// Open builds the backend named in cfg and wraps it with operation metrics.
func Open(ctx context.Context, cfg config.StoreConfig, logger logrus.FieldLogger) (Store, error) {
	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}

	var st Store
	switch cfg.Backend {
	case "memory":
		st = NewMemoryStore()
	case "badger", "":
		st, err = NewBadgerStore(cfg.BadgerPath, logger)
	case "redis":
		client, dialErr := DialRedis(ctx, cfg.RedisAddr)
		if dialErr != nil {
			return nil, dialErr
		}
		st = NewRedisStore(client, ttl)
	case "postgres":
		pool, poolErr := db.NewPool(ctx, cfg.DatabaseURL)
		if poolErr != nil {
			return nil, poolErr
		}
		st = NewPostgresStore(pool)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.WithField("backend", cfg.Backend).Info("session store ready")
	return Instrument(st, cfg.Backend), nil
}

// Instrument counts every operation on st under the given backend label.
func Instrument(st Store, backend string) Store {
	if backend == "" {
		backend = "badger"
	}
	return &instrumented{next: st, backend: backend}
}

type instrumented struct {
	next    Store
	backend string
}

func (i *instrumented) observe(op string, err error) {
	observability.StoreOps.WithLabelValues(i.backend, op, observability.Result(err)).Inc()
}

func (i *instrumented) Load(ctx context.Context, email string) (*Session, error) {
	s, err := i.next.Load(ctx, email)
	i.observe("load", err)
	return s, err
}

func (i *instrumented) Save(ctx context.Context, s *Session) error {
	err := i.next.Save(ctx, s)
	i.observe("save", err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, email string) error {
	err := i.next.Delete(ctx, email)
	i.observe("delete", err)
	return err
}

func (i *instrumented) PurgeExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error) {
	n, err := i.next.PurgeExpired(ctx, ttl, now)
	i.observe("purge", err)
	if n > 0 {
		observability.SessionsExpired.Add(float64(n))
	}
	return n, err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
