package credentials

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "draftkit:credential"

// RedisStorage keeps the credential in a Redis key, for deployments where the
// slot must be shared across hosts or survive local disk loss.
type RedisStorage struct {
	client *redis.Client
	key    string
}

// RedisStorageOption configures a RedisStorage.
type RedisStorageOption func(*RedisStorage)

// WithRedisKey overrides the key the credential is stored under.
func WithRedisKey(key string) RedisStorageOption {
	return func(s *RedisStorage) {
		if key != "" {
			s.key = key
		}
	}
}

// NewRedisStorage creates a Redis-backed credential slot.
func NewRedisStorage(client *redis.Client, opts ...RedisStorageOption) *RedisStorage {
	if client == nil {
		panic("credentials: redis client cannot be nil")
	}

	s := &RedisStorage{client: client, key: defaultRedisKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStorage) Get(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *RedisStorage) Set(ctx context.Context, value string) error {
	return s.client.Set(ctx, s.key, value, 0).Err()
}
