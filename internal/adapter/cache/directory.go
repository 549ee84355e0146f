package cache

import (
	"context"
	"errors"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/rs/zerolog"
)

// DefaultTTL is how long a lookup stays cached when no TTL is configured.
const DefaultTTL = 10 * time.Minute

// CachedDirectory serves airport lookups from a Store before asking the wrapped
// directory. The cache is best effort: store failures are logged and skipped.
type CachedDirectory struct {
	next   domain.AirportDirectory
	store  Store
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedDirectory wraps next with store.
func NewCachedDirectory(next domain.AirportDirectory, store Store, ttl time.Duration, logger zerolog.Logger) *CachedDirectory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedDirectory{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup implements domain.AirportDirectory.
func (d *CachedDirectory) Lookup(ctx context.Context, query string) ([]domain.Airport, error) {
	key := airportKey(query)

	cached, err := d.store.Get(ctx, key)
	switch {
	case err == nil:
		d.logger.Debug().Str("key", key).Int("airports", len(cached)).Msg("Airport cache hit")
		return cached, nil
	case !errors.Is(err, ErrMiss):
		d.logger.Warn().Err(err).Str("key", key).Msg("Airport cache read failed")
	}

	airports, err := d.next.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}

	// Empty answers are never cached
	if len(airports) > 0 {
		if err := d.store.Set(ctx, key, airports, d.ttl); err != nil {
			d.logger.Warn().Err(err).Str("key", key).Msg("Airport cache write failed")
		}
	}

	return airports, nil
}

var _ domain.AirportDirectory = (*CachedDirectory)(nil)
