package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/retry"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "airports:"

// RedisConfig holds the connection settings for the cache backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a Redis client and waits for it to answer PING.
// The client is closed again when it never becomes reachable.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := retry.Do(ctx, func() error {
		return client.Ping(ctx).Err()
	}, retry.StartupConfig)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// RedisStore is a Store backed by Redis string keys holding JSON.
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore creates a RedisStore on an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) ([]domain.Airport, error) {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis get airports: %w", err)
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, fmt.Errorf("unmarshal cached airports: %w", err)
	}

	return airports, nil
}

// Set implements Store. A non-positive ttl stores nothing.
func (s *RedisStore) Set(ctx context.Context, key string, airports []domain.Airport, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(airports)
	if err != nil {
		return fmt.Errorf("marshal airports for cache: %w", err)
	}

	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set airports: %w", err)
	}

	return nil
}

// airportKey normalizes a free-text query so "Istanbul " and "istanbul" share an entry.
func airportKey(query string) string {
	return keyPrefix + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

var _ Store = (*RedisStore)(nil)
