// Package integration provides helpers and integration tests for the flight search web backend.
// Integration tests run the real client, use case, middleware and handlers against a stub
// of the upstream flight API.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-web/internal/adapter/cache"
	httpAdapter "github.com/flight-search/flight-search-web/internal/adapter/http"
	"github.com/flight-search/flight-search-web/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-web/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-search-web/internal/calendar"
	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/retry"
	"github.com/flight-search/flight-search-web/internal/usecase"
	"github.com/flight-search/flight-search-web/test/mock"
	"github.com/flight-search/flight-search-web/test/testutil"
)

// Now is the wall-clock instant every integration test runs at.
const Now = "2025-05-20T10:00:00Z"

// Options tweak the stack built by NewTestServer.
type Options struct {
	// UpstreamTimeout bounds one upstream attempt; defaults to one second
	UpstreamTimeout time.Duration

	// Store enables the airport cache when set
	Store cache.Store

	// APIKey defaults to "test-key"; set NoAPIKey to run without one
	APIKey   string
	NoAPIKey bool
}

// TestServer wraps an Echo instance wired like the production server.
type TestServer struct {
	Echo     *echo.Echo
	UseCase  usecase.FlightSearchUseCase
	Upstream *mock.Upstream
}

// NewTestServer builds the full stack against a started upstream stub.
func NewTestServer(t *testing.T, upstream *mock.Upstream, opts Options) *TestServer {
	t.Helper()

	if opts.UpstreamTimeout == 0 {
		opts.UpstreamTimeout = time.Second
	}
	if opts.APIKey == "" && !opts.NoAPIKey {
		opts.APIKey = "test-key"
	}

	log := zerolog.Nop()
	clock := testutil.FixedClock(t, Now)

	client := skyscrapper.NewClient(skyscrapper.Config{
		BaseURL: upstream.URL(),
		APIKey:  opts.APIKey,
		Timeout: opts.UpstreamTimeout,
	})

	var directory domain.AirportDirectory = client
	cacheStatus := httpAdapter.CacheDisabled
	if opts.Store != nil {
		directory = cache.NewCachedDirectory(client, opts.Store, cache.DefaultTTL, log)
		cacheStatus = httpAdapter.CacheEnabled
	}

	uc := usecase.NewFlightSearchUseCase(directory, client, skyscrapper.NewNormalizer(log), log, &usecase.Config{
		UpstreamTimeout: opts.UpstreamTimeout,
		Retry:           retry.UpstreamConfig.WithInitialDelay(time.Millisecond),
		Clock:           clock,
	})
	t.Cleanup(uc.Close)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log, middleware.Config{})

	handler := httpAdapter.NewFlightHandler(uc, httpAdapter.HandlerConfig{
		ServiceName: "flight-search-web",
		CacheStatus: cacheStatus,
		Clock:       clock,
	})
	httpAdapter.RegisterRoutes(e, handler, httpAdapter.NewCalendarHandler(calendar.NewSelector(clock, nil)))

	return &TestServer{Echo: e, UseCase: uc, Upstream: upstream}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts a flight search.
func (ts *TestServer) Search(body any) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// Suggest requests autocomplete candidates for one field within a session.
func (ts *TestServer) Suggest(session, field, query string) Response {
	return ts.Do(Request{
		Method:  http.MethodGet,
		Path:    "/api/v1/airports?" + url.Values{"field": {field}, "query": {query}}.Encode(),
		Headers: map[string]string{middleware.SessionIDHeader: session},
	})
}

// Calendar posts one picker interaction.
func (ts *TestServer) Calendar(action string, body any) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/calendar/" + action,
		Body:   body,
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseSuggestions parses the response body of the autocomplete endpoint.
func (r *Response) ParseSuggestions() (*httpAdapter.SuggestionsDTO, error) {
	var resp httpAdapter.SuggestionsDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseCalendar parses the response body of a calendar endpoint.
func (r *Response) ParseCalendar() (*calendar.View, error) {
	var resp httpAdapter.CalendarResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp.View, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]any, error) {
	var errResp map[string]any
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	DepartDate  string         `json:"departDate"`
	ReturnDate  string         `json:"returnDate,omitempty"`
	TripType    string         `json:"tripType,omitempty"`
	Passengers  map[string]int `json:"passengers,omitempty"`
	CabinClass  string         `json:"cabinClass,omitempty"`
	Currency    string         `json:"currency,omitempty"`
	Filters     map[string]any `json:"filters,omitempty"`
}

// DefaultSearchRequest returns a valid Istanbul to New York round trip.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "Istanbul",
		Destination: "New York",
		DepartDate:  "2025-06-01",
		ReturnDate:  "2025-06-10",
	}
}

// StandardUpstream returns a started stub that resolves "Istanbul" and "New York"
// and answers searches with the IST-JFK fixture.
func StandardUpstream(t *testing.T) *mock.Upstream {
	t.Helper()
	return mock.NewUpstream().
		WithAirports("Istanbul", testutil.LoadTestJSON(t, "airports_istanbul.json")).
		WithAirports("New York", testutil.LoadTestJSON(t, "airports_new_york.json")).
		WithItineraries(testutil.LoadTestJSON(t, "itineraries_ist_jfk.json")).
		Start(t)
}

// memoryStore is an in-process cache.Store used in place of Redis.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string][]domain.Airport
	sets    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string][]domain.Airport)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	airports, ok := s.entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return airports, nil
}

func (s *memoryStore) Set(_ context.Context, key string, airports []domain.Airport, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = airports
	s.sets++
	return nil
}

func (s *memoryStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

var _ cache.Store = (*memoryStore)(nil)
