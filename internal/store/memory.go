package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps encoded sessions in a map. It is used by tests and the
// "memory" backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(ctx context.Context, email string) (*Session, error) {
	m.mu.RLock()
	data, ok := m.data[Key(email)]
	m.mu.RUnlock()
	if !ok {
		return nil, notFound(email)
	}
	return decode(data)
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[Key(s.Email)] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, email string) error {
	m.mu.Lock()
	delete(m.data, Key(email))
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) PurgeExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, data := range m.data {
		s, err := decode(data)
		if err != nil {
			return removed, err
		}
		if s.Expired(now, ttl) {
			delete(m.data, key)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Close() error { return nil }
