// Package skyscrapper talks to the Sky Scrapper flight-search API on RapidAPI.
// It provides the airport directory, the raw itinerary fetch and the normalizer
// that turns itinerary payloads into display records.
package skyscrapper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/retry"
)

// Defaults for an unconfigured client.
const (
	DefaultBaseURL     = "https://sky-scrapper.p.rapidapi.com/api"
	DefaultHost        = "sky-scrapper.p.rapidapi.com"
	DefaultMarket      = "en-US"
	DefaultTimeout     = 10 * time.Second
	DefaultMaxResponse = 8 << 20
	opSearchAirport    = "searchAirport"
	opSearchItinerary  = "searchFlights"
	headerRapidAPIKey  = "X-RapidAPI-Key"
	headerRapidAPIHost = "X-RapidAPI-Host"
)

// ErrResponseTooLarge is returned when a response body exceeds the configured limit.
var ErrResponseTooLarge = errors.New("upstream response too large")

// Config configures a Client.
type Config struct {
	BaseURL     string
	APIKey      string
	Host        string
	Market      string
	LookupLimit int
	Timeout     time.Duration

	// MaxResponseBytes caps a response body; larger bodies are rejected
	MaxResponseBytes int64
}

// Client is an HTTP client for the Sky Scrapper API.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	market     string
	limit      int
	maxBody    int64
	httpClient *http.Client
}

// NewClient creates a Client, filling defaults for empty fields.
func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Host) == "" {
		cfg.Host = DefaultHost
	}
	if strings.TrimSpace(cfg.Market) == "" {
		cfg.Market = DefaultMarket
	}
	if cfg.LookupLimit <= 0 || cfg.LookupLimit > domain.MaxAirportSuggestions {
		cfg.LookupLimit = domain.MaxAirportSuggestions
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponse
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		host:       strings.TrimSpace(cfg.Host),
		market:     cfg.Market,
		limit:      cfg.LookupLimit,
		maxBody:    cfg.MaxResponseBytes,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Market returns the market code sent with itinerary searches.
func (c *Client) Market() string {
	return c.market
}

// Lookup implements domain.AirportDirectory.
func (c *Client) Lookup(ctx context.Context, query string) ([]domain.Airport, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(c.limit))

	body, err := c.get(ctx, opSearchAirport, "/v1/flights/searchAirport", params)
	if err != nil {
		return nil, err
	}

	return parseAirports(body, c.limit), nil
}

// SearchItineraries implements domain.ItinerarySource. The body is returned as-is.
func (c *Client) SearchItineraries(ctx context.Context, q domain.ItineraryQuery) ([]byte, error) {
	params := url.Values{}
	params.Set("originSkyId", q.OriginSkyID)
	params.Set("destinationSkyId", q.DestinationSkyID)
	params.Set("originEntityId", q.OriginEntityID)
	params.Set("destinationEntityId", q.DestinationEntityID)
	params.Set("date", q.Date)
	params.Set("adults", strconv.Itoa(max(q.Adults, 1)))
	params.Set("cabinClass", strings.ToLower(q.CabinClass))
	params.Set("currency", q.Currency)

	market := q.Market
	if market == "" {
		market = c.market
	}
	params.Set("market", market)

	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}

	return c.get(ctx, opSearchItinerary, "/v1/flights/searchFlights", params)
}

// get performs a GET and classifies failures: transport errors, 429 and 5xx are
// retryable; everything else is permanent.
func (c *Client) get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, retry.NewPermanent(domain.NewUpstreamError(op, 0, errors.New("api key is empty")))
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewUpstreamError(op, 0, fmt.Errorf("build request: %w", err)))
	}
	req.Header.Set(headerRapidAPIKey, c.apiKey)
	req.Header.Set(headerRapidAPIHost, c.host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A cancelled caller is not worth retrying; a timed-out attempt is
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, domain.NewUpstreamError(op, 0, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, ctx.Err()))
		}
		return nil, domain.NewRetryableUpstreamError(op, 0, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

		statusErr := fmt.Errorf("%w: %s", domain.ErrUpstreamStatus, resp.Status)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, domain.NewRetryableUpstreamError(op, resp.StatusCode, statusErr)
		}
		return nil, retry.NewPermanent(domain.NewUpstreamError(op, resp.StatusCode, statusErr))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, domain.NewRetryableUpstreamError(op, resp.StatusCode, fmt.Errorf("%w: read body: %w", domain.ErrUpstreamUnavailable, err))
	}
	if int64(len(body)) > c.maxBody {
		return nil, retry.NewPermanent(domain.NewUpstreamError(op, resp.StatusCode, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBody)))
	}
	return body, nil
}

var (
	_ domain.AirportDirectory = (*Client)(nil)
	_ domain.ItinerarySource  = (*Client)(nil)
)
