package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores values as plain redis strings with no expiry.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to the redis server at addr and verifies it with PING.
func NewRedisKV(ctx context.Context, addr, password string, db int) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, backendErr("redis", "ping", addr, err)
	}
	return &RedisKV{client: client}, nil
}

// Get retrieves a value.
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, backendErr("redis", "get", key, err)
	}
	return v, true, nil
}

// Set stores a value.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return backendErr("redis", "set", key, r.client.Set(ctx, key, value, 0).Err())
}

// Delete removes a value.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return backendErr("redis", "delete", key, r.client.Del(ctx, key).Err())
}

// Close closes the client connection pool.
func (r *RedisKV) Close() error {
	return r.client.Close()
}

var _ KV = (*RedisKV)(nil)
