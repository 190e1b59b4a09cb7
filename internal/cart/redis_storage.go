package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amit-00/shop-kit/prometheus"
)

// RedisStorage persists cart records in Redis. Each key holds the whole
// serialized cart; SET gives the last-write-wins semantics carts expect
// when several sessions for the same tenant race.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects to Redis and verifies the connection.
func NewRedisStorage(addr, password string, db int) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStorage{client: client}, nil
}

// NewRedisStorageWithClient wraps an existing client, useful when one
// client is shared across components.
func NewRedisStorageWithClient(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	defer prometheus.TrackStorageOperation("load")(time.Now())

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		prometheus.StorageErrorsCounter.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("failed to load cart record: %w", err)
	}
	return data, nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	defer prometheus.TrackStorageOperation("save")(time.Now())

	// Carts persist indefinitely until cleared; no TTL.
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		prometheus.StorageErrorsCounter.WithLabelValues("save").Inc()
		return fmt.Errorf("failed to save cart record: %w", err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
