package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as plain string keys. Redis enforces the
// inactivity window itself: every Save resets the key's TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// DialRedis connects to addr and verifies the connection.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisStore) Load(ctx context.Context, email string) (*Session, error) {
	data, err := r.client.Get(ctx, Key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(email)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return decode(data)
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, Key(s.Email), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, Key(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *RedisStore) PurgeExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error) {
	return 0, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
