package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"
)

// sessionRecord is the badgerhold row. LastActivity is unix seconds so range
// queries compare plain integers.
type sessionRecord struct {
	Key          string
	Payload      []byte
	LastActivity int64
}

// BadgerStore is the embedded default backend.
type BadgerStore struct {
	store  *badgerhold.Store
	logger logrus.FieldLogger
}

// NewBadgerStore opens (creating if needed) the database directory at path.
func NewBadgerStore(path string, logger logrus.FieldLogger) (*BadgerStore, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil

	st, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}
	logger.WithField("path", path).Debug("badger session store opened")
	return &BadgerStore{store: st, logger: logger}, nil
}

func (b *BadgerStore) Load(ctx context.Context, email string) (*Session, error) {
	var rec sessionRecord
	if err := b.store.Get(Key(email), &rec); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, notFound(email)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return decode(rec.Payload)
}

func (b *BadgerStore) Save(ctx context.Context, s *Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	rec := &sessionRecord{Key: Key(s.Email), Payload: data, LastActivity: s.LastActivity.Unix()}
	if err := b.store.Upsert(rec.Key, rec); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (b *BadgerStore) Delete(ctx context.Context, email string) error {
	if err := b.store.Delete(Key(email), &sessionRecord{}); err != nil && !errors.Is(err, badgerhold.ErrNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (b *BadgerStore) PurgeExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error) {
	query := badgerhold.Where("LastActivity").Lt(now.Add(-ttl).Unix())

	count, err := b.store.Count(&sessionRecord{}, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count expired sessions: %w", err)
	}
	if count == 0 {
		return 0, nil
	}
	if err := b.store.DeleteMatching(&sessionRecord{}, query); err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return int(count), nil
}

func (b *BadgerStore) Close() error {
	if b.store != nil {
		return b.store.Close()
	}
	return nil
}
