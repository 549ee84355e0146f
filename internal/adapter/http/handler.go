// Package http provides the HTTP handler layer for the flight search web UI.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-search-web/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-web/internal/adapter/http/response"
	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-search-web/internal/usecase"
)

// Cache status values reported by the health endpoint.
const (
	CacheDisabled = "disabled"
	CacheEnabled  = "enabled"
)

// DefaultServiceName is reported by the health endpoint when none is configured.
const DefaultServiceName = "flight-search-web"

// HandlerConfig carries the static details the health endpoint reports.
type HandlerConfig struct {
	ServiceName string
	CacheStatus string
	Clock       timeutil.Clock
}

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
	cfg     HandlerConfig
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase, cfg HandlerConfig) *FlightHandler {
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.CacheStatus == "" {
		cfg.CacheStatus = CacheDisabled
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	return &FlightHandler{
		useCase: uc,
		cfg:     cfg,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Resolves both airports, queries Sky Scrapper and returns normalized flight legs.
// @Description Upstream failures produce an empty result with the "No flights found" message.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainRequest(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// SuggestAirports handles GET /api/v1/airports
//
// @Summary Airport autocomplete
// @Description Returns up to 10 airports matching the query. Queries shorter than two
// @Description characters return an empty list. Responses superseded by a newer lookup
// @Description for the same session and field are marked stale and carry no airports.
// @Tags airports
// @Produce json
// @Param query query string true "Text typed into the field"
// @Param field query string false "origin or destination" default(origin)
// @Param X-Session-ID header string false "Client session used to order lookups"
// @Success 200 {object} SuggestionsDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/airports [get]
func (h *FlightHandler) SuggestAirports(c echo.Context) error {
	field := domain.AirportField(c.QueryParam("field"))
	if field == "" {
		field = domain.AirportFieldOrigin
	}

	result, err := h.useCase.SuggestAirports(c.Request().Context(), sessionOf(c), field, c.QueryParam("query"))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToSuggestionsDTO(result))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.cfg.ServiceName, h.cfg.CacheStatus, h.cfg.Clock.Now())
}

// sessionOf identifies the client for autocomplete ordering. Browsers send a
// session header; a missing or malformed one falls back to the client address.
func sessionOf(c echo.Context) string {
	if id := c.Request().Header.Get(middleware.SessionIDHeader); middleware.ValidClientID(id) {
		return id
	}
	return c.RealIP()
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}
