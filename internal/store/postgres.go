package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps one row per account in the sessions table
// (see migrations/001_sessions.sql).
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Load(ctx context.Context, email string) (*Session, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx,
		"SELECT payload FROM sessions WHERE session_key = $1", Key(email),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(email)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return decode(payload)
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO sessions (session_key, email, payload, last_activity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_key) DO UPDATE
		   SET payload = EXCLUDED.payload,
		       last_activity = EXCLUDED.last_activity`,
		Key(s.Email), NormalizeEmail(s.Email), data, s.LastActivity,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, email string) error {
	if _, err := p.pool.Exec(ctx, "DELETE FROM sessions WHERE session_key = $1", Key(email)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (p *PostgresStore) PurgeExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error) {
	tag, err := p.pool.Exec(ctx, "DELETE FROM sessions WHERE last_activity < $1", now.Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
