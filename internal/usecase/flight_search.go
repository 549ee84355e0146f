// Package usecase contains the search orchestration behind the web UI: airport
// resolution, the upstream itinerary fetch, normalization and result filters.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/retry"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Defaults used when Config leaves a field empty.
const (
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultCurrency        = "USD"
	DefaultMarket          = "en-US"
)

// ErrClosed is the cancellation cause of upstream calls still running at Close.
var ErrClosed = errors.New("flight search closed")

// FlightSearchUseCase defines the operations the web UI needs.
type FlightSearchUseCase interface {
	// Search resolves both endpoints, fetches itineraries and returns display records.
	// Only invalid requests produce an error; upstream trouble yields an empty result.
	Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)

	// SuggestAirports returns autocomplete candidates for one form field.
	SuggestAirports(ctx context.Context, session string, field domain.AirportField, query string) (Suggestions, error)

	// Close cancels every upstream call still in flight.
	Close()
}

// Normalizer turns a raw itinerary payload into display records.
type Normalizer interface {
	Normalize(raw []byte, requestedCabin domain.CabinClass) []domain.FlightRecord
}

// Suggestions is the outcome of one autocomplete lookup.
type Suggestions struct {
	Field    domain.AirportField `json:"field"`
	Query    string              `json:"query"`
	Airports []domain.Airport    `json:"airports"`

	// Stale is set when a newer lookup for the same field was issued meanwhile;
	// Airports is then empty and the client should ignore the response.
	Stale bool `json:"stale"`
}

// Config contains configuration options for the use case.
type Config struct {
	// UpstreamTimeout bounds a single upstream attempt
	UpstreamTimeout time.Duration

	// Retry is applied to every upstream call
	Retry retry.Config

	Currency string
	Market   string

	// FenceTTL is how long idle autocomplete sequences are remembered
	FenceTTL time.Duration

	Clock timeutil.Clock
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UpstreamTimeout: DefaultUpstreamTimeout,
		Retry:           retry.UpstreamConfig,
		Currency:        DefaultCurrency,
		Market:          DefaultMarket,
		FenceTTL:        DefaultFenceTTL,
		Clock:           timeutil.NewRealClock(),
	}
}

type flightSearchUseCase struct {
	directory  domain.AirportDirectory
	source     domain.ItinerarySource
	normalizer Normalizer
	cfg        Config
	fence      *sequenceFence
	logger     zerolog.Logger

	lifetime context.Context
	shutdown context.CancelFunc
}

// NewFlightSearchUseCase creates the use case. If config is nil, defaults are used;
// zero fields of a non-nil config fall back to their defaults.
func NewFlightSearchUseCase(
	directory domain.AirportDirectory,
	source domain.ItinerarySource,
	normalizer Normalizer,
	logger zerolog.Logger,
	config *Config,
) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.UpstreamTimeout > 0 {
			cfg.UpstreamTimeout = config.UpstreamTimeout
		}
		if config.Retry.MaxAttempts > 0 {
			cfg.Retry = config.Retry
		}
		if config.Currency != "" {
			cfg.Currency = config.Currency
		}
		if config.Market != "" {
			cfg.Market = config.Market
		}
		if config.FenceTTL > 0 {
			cfg.FenceTTL = config.FenceTTL
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
	}
	cfg.Retry = cfg.Retry.WithRetryIf(retryPolicy(cfg.Retry.RetryIf))

	lifetime, shutdown := context.WithCancel(context.Background())

	return &flightSearchUseCase{
		directory:  directory,
		source:     source,
		normalizer: normalizer,
		cfg:        cfg,
		fence:      newSequenceFence(cfg.FenceTTL, cfg.Clock),
		logger:     logger.With().Str("component", "flight_search").Logger(),
		lifetime:   lifetime,
		shutdown:   shutdown,
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	startTime := time.Now()

	if req == nil {
		return nil, fmt.Errorf("%w: request body is required", domain.ErrInvalidRequest)
	}
	req.SetDefaults(uc.cfg.Currency)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, stop := uc.bindLifetime(ctx)
	defer stop()

	log := uc.logger.With().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("depart_date", req.DepartDate).
		Logger()

	from, to, err := uc.resolveEndpoints(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("Could not resolve search endpoints")
		return uc.respond(req, req.Origin, req.Destination, nil, 0, startTime), nil
	}

	query := domain.NewItineraryQuery(req, from, to, uc.cfg.Market)
	raw, err := callUpstream(ctx, uc.cfg, func(ctx context.Context) ([]byte, error) {
		return uc.source.SearchItineraries(ctx, query)
	})
	if err != nil {
		log.Warn().Err(err).
			Str("origin_code", from.Code).
			Str("destination_code", to.Code).
			Msg("Itinerary search failed")
		return uc.respond(req, from.Code, to.Code, nil, 0, startTime), nil
	}

	records := uc.normalizer.Normalize(raw, req.CabinClass)
	filtered := ApplyFilters(records, req.Filters)

	resp := uc.respond(req, from.Code, to.Code, filtered, len(records)-len(filtered), startTime)

	log.Info().
		Int("normalized", len(records)).
		Int("results", resp.Metadata.TotalResults).
		Int64("duration_ms", resp.Metadata.SearchTimeMs).
		Msg("Search completed")

	return resp, nil
}

// SuggestAirports implements FlightSearchUseCase.SuggestAirports.
// A short query still claims a new token, so lookups issued before it become stale.
func (uc *flightSearchUseCase) SuggestAirports(ctx context.Context, session string, field domain.AirportField, query string) (Suggestions, error) {
	if !field.IsValid() {
		return Suggestions{}, fmt.Errorf("%w: field must be one of: origin, destination", domain.ErrInvalidRequest)
	}

	query = strings.TrimSpace(query)
	result := Suggestions{Field: field, Query: query, Airports: []domain.Airport{}}

	token := uc.fence.issue(session, field)
	if len([]rune(query)) < domain.MinAirportQueryLength {
		return result, nil
	}

	ctx, stop := uc.bindLifetime(ctx)
	defer stop()

	airports, err := callUpstream(ctx, uc.cfg, func(ctx context.Context) ([]domain.Airport, error) {
		return uc.directory.Lookup(ctx, query)
	})
	if err != nil {
		uc.logger.Warn().Err(err).Str("query", query).Str("field", string(field)).Msg("Airport lookup failed")
		airports = nil
	}

	if !uc.fence.isLatest(session, field, token) {
		uc.logger.Debug().Str("query", query).Str("field", string(field)).Msg("Discarding stale airport suggestions")
		result.Stale = true
		return result, nil
	}

	if len(airports) > domain.MaxAirportSuggestions {
		airports = airports[:domain.MaxAirportSuggestions]
	}
	if airports != nil {
		result.Airports = airports
	}
	return result, nil
}

// Close implements FlightSearchUseCase.Close. It is safe to call more than once.
func (uc *flightSearchUseCase) Close() {
	uc.shutdown()
}

// resolveEndpoints looks up origin and destination concurrently and takes the
// first candidate of each.
func (uc *flightSearchUseCase) resolveEndpoints(ctx context.Context, req *domain.SearchRequest) (domain.Airport, domain.Airport, error) {
	var from, to domain.Airport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = uc.resolveAirport(gctx, req.Origin)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = uc.resolveAirport(gctx, req.Destination)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Airport{}, domain.Airport{}, err
	}
	return from, to, nil
}

func (uc *flightSearchUseCase) resolveAirport(ctx context.Context, text string) (domain.Airport, error) {
	candidates, err := callUpstream(ctx, uc.cfg, func(ctx context.Context) ([]domain.Airport, error) {
		return uc.directory.Lookup(ctx, text)
	})
	if err != nil {
		return domain.Airport{}, fmt.Errorf("resolve %q: %w", text, err)
	}
	if len(candidates) == 0 {
		return domain.Airport{}, fmt.Errorf("%w: %q", domain.ErrAirportNotFound, text)
	}
	return candidates[0], nil
}

func (uc *flightSearchUseCase) respond(req *domain.SearchRequest, origin, destination string, flights []domain.FlightRecord, filteredOut int, startTime time.Time) *domain.SearchResponse {
	return domain.NewSearchResponse(req, origin, destination, flights, domain.SearchMetadata{
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		FilteredOut:  filteredOut,
	})
}

// bindLifetime derives a context that is also cancelled when the use case closes.
func (uc *flightSearchUseCase) bindLifetime(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	if uc.lifetime.Err() != nil {
		cancel(ErrClosed)
		return ctx, func() {}
	}
	stopAfter := context.AfterFunc(uc.lifetime, func() {
		cancel(ErrClosed)
	})
	return ctx, func() {
		stopAfter()
		cancel(context.Canceled)
	}
}

// retryPolicy retries only errors the domain classifies as retryable, and then
// only if the configured predicate (permanent errors by default) agrees.
func retryPolicy(next func(error) bool) func(error) bool {
	if next == nil {
		next = retry.SkipPermanent
	}
	return func(err error) bool {
		return domain.IsRetryable(err) && next(err)
	}
}

// callUpstream runs fn under the retry policy, giving every attempt its own timeout.
func callUpstream[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	return retry.DoWithResult(ctx, func() (T, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.UpstreamTimeout)
		defer cancel()
		return fn(attemptCtx)
	}, cfg.Retry)
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
