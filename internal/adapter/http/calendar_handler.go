package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-search-web/internal/adapter/http/response"
	"github.com/flight-search/flight-search-web/internal/calendar"
	"github.com/flight-search/flight-search-web/internal/domain"
)

// CalendarHandler serves the date picker. It keeps no state: every endpoint
// takes the client's current state and answers with the next one.
type CalendarHandler struct {
	selector *calendar.Selector
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(sel *calendar.Selector) *CalendarHandler {
	return &CalendarHandler{selector: sel}
}

// transition is one picker operation applied to a normalized state.
type transition func(req *CalendarRequest, s calendar.State) calendar.State

// View handles POST /api/v1/calendar/view
//
// @Summary Render the date picker
// @Description Returns the two-month view for the given state, or a fresh picker.
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest false "Current picker state"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/calendar/view [post]
func (h *CalendarHandler) View(c echo.Context) error {
	return h.apply(c, nil, func(_ *CalendarRequest, s calendar.State) calendar.State {
		return s
	})
}

// Select handles POST /api/v1/calendar/select
//
// @Summary Click a day
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest true "State and clicked date"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/calendar/select [post]
func (h *CalendarHandler) Select(c echo.Context) error {
	return h.apply(c, (*CalendarRequest).ValidateSelect, func(req *CalendarRequest, s calendar.State) calendar.State {
		return h.selector.Select(s, calendar.MustParseDate(req.Date))
	})
}

// Advance handles POST /api/v1/calendar/advance
//
// @Summary Move the visible window
// @Description Moves the window by the given number of months; it never starts before the current month.
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest true "State and month step"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/calendar/advance [post]
func (h *CalendarHandler) Advance(c echo.Context) error {
	return h.apply(c, (*CalendarRequest).ValidateAdvance, func(req *CalendarRequest, s calendar.State) calendar.State {
		return h.selector.AdvanceMonth(s, req.Months)
	})
}

// Reset handles POST /api/v1/calendar/reset
//
// @Summary Clear both dates
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest true "Current picker state"
// @Success 200 {object} CalendarResponse
// @Router /api/v1/calendar/reset [post]
func (h *CalendarHandler) Reset(c echo.Context) error {
	return h.apply(c, nil, func(_ *CalendarRequest, s calendar.State) calendar.State {
		return calendar.Reset(s)
	})
}

// SetTripType handles POST /api/v1/calendar/trip-type
//
// @Summary Switch between round trip and one way
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest true "State and trip type"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/calendar/trip-type [post]
func (h *CalendarHandler) SetTripType(c echo.Context) error {
	return h.apply(c, (*CalendarRequest).ValidateTripType, func(req *CalendarRequest, s calendar.State) calendar.State {
		return calendar.SetTripType(s, domain.TripType(strings.ToLower(req.TripType)))
	})
}

// Open handles POST /api/v1/calendar/open
//
// @Summary Show the picker
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest false "Current picker state"
// @Success 200 {object} CalendarResponse
// @Router /api/v1/calendar/open [post]
func (h *CalendarHandler) Open(c echo.Context) error {
	return h.apply(c, nil, func(_ *CalendarRequest, s calendar.State) calendar.State {
		return calendar.Open(s)
	})
}

// Close handles POST /api/v1/calendar/close
//
// @Summary Hide the picker
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest false "Current picker state"
// @Success 200 {object} CalendarResponse
// @Router /api/v1/calendar/close [post]
func (h *CalendarHandler) Close(c echo.Context) error {
	return h.apply(c, nil, func(_ *CalendarRequest, s calendar.State) calendar.State {
		return calendar.Close(s)
	})
}

// apply binds and validates the body, normalizes the state and renders the result
// of next.
func (h *CalendarHandler) apply(c echo.Context, validate func(*CalendarRequest) error, next transition) error {
	var req CalendarRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := validateState(req.State); err != nil {
		return handleValidationError(c, err)
	}
	if validate != nil {
		if err := validate(&req); err != nil {
			return handleValidationError(c, err)
		}
	}

	state := h.selector.Initial()
	if req.State != nil {
		state = h.selector.Normalize(*req.State)
	}

	return response.OK(c, ToCalendarResponse(h.selector, next(&req, state)))
}
