// Package cache holds the short-lived airport lookup cache used by autocomplete.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
)

// ErrMiss is returned by a Store when nothing is cached under a key.
var ErrMiss = errors.New("cache miss")

// Store keeps airport lookups by key for a bounded time.
type Store interface {
	Get(ctx context.Context, key string) ([]domain.Airport, error)
	Set(ctx context.Context, key string, airports []domain.Airport, ttl time.Duration) error
}
