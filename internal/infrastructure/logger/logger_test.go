package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	l.Info().Msg("test message")

	result := decodeLine(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test-service"}, &buf)

	l.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at warn level", "warn", "info", false},
		{"invalid level falls back to info", "loud", "info", true},
		{"empty level falls back to info", "", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				l.Debug().Msg("test")
			case "info":
				l.Info().Msg("test")
			case "warn":
				l.Warn().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String(), "expected log output")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	l.Info().Msg("test")

	result := decodeLine(t, &buf)
	require.Contains(t, result, "caller")
	assert.Contains(t, result["caller"].(string), "logger_test.go")
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(DefaultConfig(), &buf)

	l.WithComponent("normalizer").WithContext("field", "origin").Info().Msg("test")

	result := decodeLine(t, &buf)
	assert.Equal(t, "normalizer", result["component"])
	assert.Equal(t, "origin", result["field"])
	assert.Equal(t, "flight-search-web", result["service"])
}

func TestInstall(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	var buf bytes.Buffer
	Install(NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "global-test"}, &buf))

	log.Info().Msg("global info")

	assert.Contains(t, buf.String(), "global info")
	assert.Contains(t, buf.String(), "global-test")
}

func TestNop(t *testing.T) {
	l := Nop()

	assert.NotPanics(t, func() {
		l.Error().Msg("this goes nowhere")
	})
}
