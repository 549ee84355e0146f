package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Time    string `json:"time"`

	// Cache is "enabled" or "disabled" depending on whether a lookup cache is wired
	Cache string `json:"cache,omitempty"`
}

// Health writes a health check response stamped with now.
func Health(c echo.Context, service, cache string, now time.Time) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Service: service,
		Time:    now.UTC().Format(time.RFC3339),
		Cache:   cache,
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results any) error {
	return OK(c, results)
}
