package skyscrapper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL: server.URL,
		APIKey:  testAPIKey,
		Timeout: 2 * time.Second,
	})
}

// TestNewClient_Defaults tests that empty config fields are filled in.
func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{APIKey: " key ", LookupLimit: 50})

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultHost, c.host)
	assert.Equal(t, DefaultMarket, c.Market())
	assert.Equal(t, domain.MaxAirportSuggestions, c.limit)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, int64(DefaultMaxResponse), c.maxBody)
	assert.Equal(t, "key", c.apiKey)
}

// TestClient_SearchItineraries_Request tests the outgoing request shape.
func TestClient_SearchItineraries_Request(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":{"itineraries":[]}}`))
	})

	tests := []struct {
		name       string
		query      domain.ItineraryQuery
		wantParams url.Values
		noReturn   bool
	}{
		{
			name: "round trip",
			query: domain.ItineraryQuery{
				OriginSkyID: "IST", DestinationSkyID: "JFK",
				OriginEntityID: "95673383", DestinationEntityID: "95565058",
				Date: "2025-06-01", ReturnDate: "2025-06-10",
				Adults: 3, CabinClass: "Premium_Economy", Currency: "EUR",
			},
			wantParams: url.Values{
				"originSkyId":         {"IST"},
				"destinationSkyId":    {"JFK"},
				"originEntityId":      {"95673383"},
				"destinationEntityId": {"95565058"},
				"date":                {"2025-06-01"},
				"returnDate":          {"2025-06-10"},
				"adults":              {"3"},
				"cabinClass":          {"premium_economy"},
				"currency":            {"EUR"},
				"market":              {DefaultMarket},
			},
		},
		{
			name: "one way with explicit market",
			query: domain.ItineraryQuery{
				OriginSkyID: "IST", DestinationSkyID: "JFK",
				Date: "2025-06-01", Adults: 0, CabinClass: "economy",
				Currency: "USD", Market: "en-GB",
			},
			wantParams: url.Values{
				"adults":     {"1"},
				"cabinClass": {"economy"},
				"market":     {"en-GB"},
			},
			noReturn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := c.SearchItineraries(context.Background(), tt.query)
			require.NoError(t, err)
			assert.JSONEq(t, `{"status":true,"data":{"itineraries":[]}}`, string(body))

			require.NotNil(t, got)
			assert.Equal(t, http.MethodGet, got.Method)
			assert.Equal(t, "/v1/flights/searchFlights", got.URL.Path)
			assert.Equal(t, testAPIKey, got.Header.Get("X-RapidAPI-Key"))
			assert.Equal(t, DefaultHost, got.Header.Get("X-RapidAPI-Host"))

			params := got.URL.Query()
			for key, want := range tt.wantParams {
				assert.Equal(t, want, params[key], key)
			}
			if tt.noReturn {
				assert.False(t, params.Has("returnDate"))
			}
		})
	}
}

// TestClient_ErrorClassification tests which failures may be retried.
func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantRetryable bool
		wantPermanent bool
	}{
		{name: "too many requests", status: http.StatusTooManyRequests, wantRetryable: true},
		{name: "internal error", status: http.StatusInternalServerError, wantRetryable: true},
		{name: "bad gateway", status: http.StatusBadGateway, wantRetryable: true},
		{name: "bad request", status: http.StatusBadRequest, wantPermanent: true},
		{name: "forbidden", status: http.StatusForbidden, wantPermanent: true},
		{name: "redirect without location", status: http.StatusMultipleChoices, wantPermanent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.SearchItineraries(context.Background(), domain.ItineraryQuery{})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstreamStatus)
			assert.Equal(t, tt.wantRetryable, domain.IsRetryable(err))
			assert.Equal(t, tt.wantPermanent, retry.IsPermanent(err))

			var upstreamErr *domain.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, tt.status, upstreamErr.StatusCode)
			assert.Equal(t, opSearchItinerary, upstreamErr.Op)
		})
	}
}

// TestClient_MissingAPIKey tests that no request is sent without credentials.
func TestClient_MissingAPIKey(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})

	_, err := c.Lookup(context.Background(), "istanbul")

	require.Error(t, err)
	assert.True(t, retry.IsPermanent(err))
	assert.Zero(t, calls.Load())
}

// TestClient_TransportError tests that an unreachable upstream is retryable.
func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	c := NewClient(Config{BaseURL: baseURL, APIKey: testAPIKey, Timeout: time.Second})

	_, err := c.SearchItineraries(context.Background(), domain.ItineraryQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.True(t, domain.IsRetryable(err))
}

// TestClient_CanceledContext tests that a cancelled caller is not retried.
func TestClient_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SearchItineraries(ctx, domain.ItineraryQuery{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, domain.IsRetryable(err))
}

// TestClient_ResponseSizeLimit tests that an oversized body is rejected rather than truncated.
func TestClient_ResponseSizeLimit(t *testing.T) {
	const limit = 64

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "at the limit", size: limit},
		{name: "one byte over", size: limit + 1, wantErr: true},
		{name: "far over", size: 10 * limit, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(strings.Repeat(" ", tt.size)))
			}))
			t.Cleanup(server.Close)
			c := NewClient(Config{BaseURL: server.URL, APIKey: testAPIKey, MaxResponseBytes: limit})

			body, err := c.SearchItineraries(context.Background(), domain.ItineraryQuery{})

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Len(t, body, limit)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrResponseTooLarge)
			assert.True(t, retry.IsPermanent(err))
			assert.Nil(t, body)
		})
	}
}

// TestClient_RetriesOnceThenSucceeds tests the client together with the upstream retry policy.
func TestClient_RetriesOnceThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"itineraries":[]}}`))
	})

	cfg := retry.UpstreamConfig.WithInitialDelay(time.Millisecond)
	body, err := retry.DoWithResult(context.Background(), func() ([]byte, error) {
		return c.SearchItineraries(context.Background(), domain.ItineraryQuery{})
	}, cfg)

	require.NoError(t, err)
	assert.NotEmpty(t, body)
	assert.Equal(t, int32(2), calls.Load())
}

// TestClient_PermanentErrorIsNotRetried tests that a 4xx stops the retry loop.
func TestClient_PermanentErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	cfg := retry.UpstreamConfig.WithInitialDelay(time.Millisecond)
	_, err := retry.DoWithResult(context.Background(), func() ([]byte, error) {
		return c.SearchItineraries(context.Background(), domain.ItineraryQuery{})
	}, cfg)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

// TestClient_Lookup tests airport lookups against a stub searchAirport endpoint.
func TestClient_Lookup(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/flights/searchAirport", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"status": true,
			"data": [
				{
					"skyId": "IST",
					"entityId": "95673383",
					"presentation": {"title": "Istanbul", "suggestionTitle": "Istanbul (IST)", "subtitle": "Turkey"},
					"navigation": {"entityId": "95673383", "entityType": "AIRPORT", "localizedName": "Istanbul"}
				}
			]
		}`))
	})

	airports, err := c.Lookup(context.Background(), "istan")

	require.NoError(t, err)
	assert.Equal(t, "istan", gotQuery.Get("query"))
	assert.Equal(t, "10", gotQuery.Get("limit"))
	require.Len(t, airports, 1)
	assert.Equal(t, domain.Airport{
		Code:     "IST",
		Name:     "Istanbul (IST)",
		City:     "Istanbul",
		Country:  "Turkey",
		Type:     "AIRPORT",
		EntityID: "95673383",
	}, airports[0])
}
