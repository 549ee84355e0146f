package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all web UI API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler, cal *CalendarHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	api.POST("/flights/search", h.SearchFlights)
	api.GET("/airports", h.SuggestAirports)

	calendarGroup := api.Group("/calendar")
	calendarGroup.POST("/view", cal.View)
	calendarGroup.POST("/select", cal.Select)
	calendarGroup.POST("/advance", cal.Advance)
	calendarGroup.POST("/reset", cal.Reset)
	calendarGroup.POST("/trip-type", cal.SetTripType)
	calendarGroup.POST("/open", cal.Open)
	calendarGroup.POST("/close", cal.Close)
}

// RegisterSwagger serves the generated API documentation under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
