package oauthstate

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps pending states in Redis so multiple instances can share
// the install flow. Entries carry the TTL natively, which makes the periodic
// sweep a no-op for this implementation.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, shop, state string, _ time.Time) error {
	return s.client.Set(ctx, keyPrefix+shop, state, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, shop string) (string, bool, error) {
	state, err := s.client.Get(ctx, keyPrefix+shop).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return state, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, shop string) error {
	return s.client.Del(ctx, keyPrefix+shop).Err()
}

// SweepExpired relies on Redis key expiry; nothing to do here.
func (s *RedisStore) SweepExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}
