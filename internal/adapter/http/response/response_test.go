package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()
	now := time.Date(2025, 5, 20, 12, 30, 0, 0, time.FixedZone("TRT", 3*60*60))

	err := Health(c, "flight-search-web", "disabled", now)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "flight-search-web", result.Service)
	assert.Equal(t, "2025-05-20T09:30:00Z", result.Time)
	assert.Equal(t, "disabled", result.Cache)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "departDate is required") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "departDate is required",
		},
		{
			name:        "internal error",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	details := map[string]string{
		"origin":     "origin is required",
		"departDate": "departDate must be in YYYY-MM-DD format",
	}
	err := ValidationError(c, details)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestSearchResults(t *testing.T) {
	c, rec := setupEcho()

	results := struct {
		Flights []string `json:"flights"`
		Message string   `json:"message"`
	}{
		Flights: []string{},
		Message: "No flights found",
	}

	err := SearchResults(c, results)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flights":[],"message":"No flights found"}`, rec.Body.String())
}
