package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV is the durable KV implementation. Values survive process
// restarts, which makes it the default record store.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps an existing Redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", &Error{Op: "get", Key: key, Err: err}
	}
	return val, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	// Records have no TTL; they live until an explicit wipe.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *RedisKV) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return &Error{Op: "del", Key: keys[0], Err: err}
	}
	return nil
}
