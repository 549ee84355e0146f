package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// DefaultBodyLimit caps inbound JSON bodies.
const DefaultBodyLimit = "64K"

// Config holds the tunable parts of the middleware stack.
type Config struct {
	// AllowOrigins lists the web UI origins allowed by CORS; empty allows any origin
	AllowOrigins []string

	// BodyLimit uses echo's size syntax, e.g. "64K"
	BodyLimit string

	Recovery RecoveryConfig
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, so every later log line carries the id
//  2. RequestLogger - Logs all requests, including recovered panics
//  3. Recover - Catches panics and returns 500
//  4. Secure, CORS, BodyLimit - Browser-facing protections
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, cfg Config) {
	for _, mw := range Chain(log, cfg) {
		e.Use(mw)
	}
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, cfg Config) []echo.MiddlewareFunc {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = DefaultBodyLimit
	}

	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, cfg.Recovery),
		echomw.SecureWithConfig(echomw.SecureConfig{
			XSSProtection:      "0",
			ContentTypeNosniff: "nosniff",
			XFrameOptions:      "SAMEORIGIN",
			ReferrerPolicy:     "no-referrer",
		}),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{echo.HeaderContentType, RequestIDHeader, SessionIDHeader},
			ExposeHeaders: []string{RequestIDHeader},
		}),
		echomw.BodyLimit(bodyLimit),
	}
}
