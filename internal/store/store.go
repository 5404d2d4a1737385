// Package store persists account sessions. Every backend stores the session
// as JSON under KeyPrefix + email.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bilantra/internal/core"
)

// KeyPrefix namespaces session payloads in key-value backends.
const KeyPrefix = "bilantra_userData:"

// Session is the persisted state of one business account.
type Session struct {
	Email        string             `json:"email"`
	PasswordHash string             `json:"passwordHash"`
	Snapshot     core.Snapshot      `json:"snapshot"`
	Goals        []core.Goal        `json:"goals"`
	Team         []core.TeamMember  `json:"team"`
	Alerts       core.AlertSettings `json:"alertSettings"`
	Language     string             `json:"language"`
	LastActivity time.Time          `json:"lastActivity"`
}

// Expired reports whether the session has been idle for longer than ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActivity) > ttl
}

// Store is a load/save pair for sessions. Load returns core.ErrNotFound when no
// session exists for the email.
type Store interface {
	Load(ctx context.Context, email string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, email string) error
	// PurgeExpired removes sessions idle since before now-ttl and reports how
	// many were removed. Backends with native expiry return 0.
	PurgeExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error)
	Close() error
}

// Key returns the storage key for email.
func Key(email string) string {
	return KeyPrefix + NormalizeEmail(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func encode(s *Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

func notFound(email string) error {
	return fmt.Errorf("session %s: %w", NormalizeEmail(email), core.ErrNotFound)
}
