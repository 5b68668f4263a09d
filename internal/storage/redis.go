package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis persists the key→value layout on a Redis server. All keys are
// namespaced with an instance name so multiple deployments can share a
// server. The client is safe for concurrent use.
type Redis struct {
	rdb      *redis.Client
	instance string
}

// NewRedis creates a storage client for the given instance.
// Returns an error if instance is empty.
func NewRedis(opts *redis.Options, instance string) (*Redis, error) {
	if instance == "" {
		return nil, fmt.Errorf("instance name cannot be empty")
	}
	return &Redis{rdb: redis.NewClient(opts), instance: instance}, nil
}

// Close closes the Redis connection. Implements io.Closer.
func (s *Redis) Close() error {
	return s.rdb.Close()
}

// Ping verifies Redis connectivity.
func (s *Redis) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Redis) key(k string) string {
	return fmt.Sprintf("medconnect:%s:%s", s.instance, k)
}

func (s *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}

func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
