// Package mock provides test doubles for the flight search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"
)

// Upstream API paths served by the stub.
const (
	AirportPath = "/v1/flights/searchAirport"
	SearchPath  = "/v1/flights/searchFlights"
)

const emptyAirports = `{"status":true,"data":[]}`

// Upstream is a configurable stand-in for the Sky Scrapper API. Configure it with
// the With methods, then call Start.
type Upstream struct {
	mu sync.Mutex

	airports      map[string]string
	lookupDelays  map[string]time.Duration
	airportStatus int

	itineraries    string
	searchFailures []int
	searchDelay    time.Duration

	calls      map[string]int
	lastSearch url.Values

	server *httptest.Server
}

// NewUpstream creates a stub that knows no airports and returns no itineraries.
func NewUpstream() *Upstream {
	return &Upstream{
		airports:     make(map[string]string),
		lookupDelays: make(map[string]time.Duration),
		itineraries:  `{"status":true,"data":{"itineraries":[]}}`,
		calls:        make(map[string]int),
	}
}

// WithAirports answers lookups for query (case-insensitive) with body.
func (u *Upstream) WithAirports(query string, body []byte) *Upstream {
	u.airports[strings.ToLower(query)] = string(body)
	return u
}

// WithLookupDelay holds the lookup for query for d, or until the client gives up.
func (u *Upstream) WithLookupDelay(query string, d time.Duration) *Upstream {
	u.lookupDelays[strings.ToLower(query)] = d
	return u
}

// WithAirportStatus makes every lookup fail with status.
func (u *Upstream) WithAirportStatus(status int) *Upstream {
	u.airportStatus = status
	return u
}

// WithItineraries answers every flight search with body.
func (u *Upstream) WithItineraries(body []byte) *Upstream {
	u.itineraries = string(body)
	return u
}

// WithSearchFailures makes the next searches fail with the given statuses, in order.
func (u *Upstream) WithSearchFailures(statuses ...int) *Upstream {
	u.searchFailures = append(u.searchFailures, statuses...)
	return u
}

// WithSearchDelay holds every flight search for d, or until the client gives up.
func (u *Upstream) WithSearchDelay(d time.Duration) *Upstream {
	u.searchDelay = d
	return u
}

// Start serves the stub until the test ends.
func (u *Upstream) Start(t testing.TB) *Upstream {
	t.Helper()
	u.server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.server.Close)
	return u
}

// URL is the base URL to configure the client with.
func (u *Upstream) URL() string {
	return u.server.URL
}

// LookupCalls returns the number of airport lookups received.
func (u *Upstream) LookupCalls() int {
	return u.callsTo(AirportPath)
}

// SearchCalls returns the number of flight searches received.
func (u *Upstream) SearchCalls() int {
	return u.callsTo(SearchPath)
}

// LastSearch returns the query parameters of the most recent flight search.
func (u *Upstream) LastSearch() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastSearch
}

func (u *Upstream) callsTo(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls[r.URL.Path]++
	u.mu.Unlock()

	if r.Header.Get("X-RapidAPI-Key") == "" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	switch r.URL.Path {
	case AirportPath:
		u.serveAirports(w, r)
	case SearchPath:
		u.serveSearch(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (u *Upstream) serveAirports(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("query"))

	u.mu.Lock()
	status := u.airportStatus
	body, ok := u.airports[query]
	delay := u.lookupDelays[query]
	u.mu.Unlock()

	if !wait(r, delay) {
		return
	}
	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if !ok {
		body = emptyAirports
	}
	writeJSON(w, body)
}

func (u *Upstream) serveSearch(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.lastSearch = r.URL.Query()
	status := 0
	if len(u.searchFailures) > 0 {
		status = u.searchFailures[0]
		u.searchFailures = u.searchFailures[1:]
	}
	body := u.itineraries
	delay := u.searchDelay
	u.mu.Unlock()

	if !wait(r, delay) {
		return
	}
	if status != 0 {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, body)
}

// wait sleeps for d and reports false if the client went away first.
func wait(r *http.Request, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	select {
	case <-r.Context().Done():
		return false
	case <-time.After(d):
		return true
	}
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
