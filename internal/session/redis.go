package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per session. Every write slides the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, sid, key string) ([]byte, error) {
	if err := validate(sid, key); err != nil {
		return nil, err
	}
	data, err := r.client.HGet(ctx, sessionKey(sid), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis hget failed: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, sid, key string, value []byte) error {
	if err := validate(sid, key); err != nil {
		return err
	}
	k := sessionKey(sid)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	pipe.Expire(ctx, k, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sid, key string) error {
	if err := validate(sid, key); err != nil {
		return err
	}
	if err := r.client.HDel(ctx, sessionKey(sid), key).Err(); err != nil {
		return fmt.Errorf("redis hdel failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}
