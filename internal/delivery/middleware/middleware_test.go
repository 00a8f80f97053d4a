package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perks/config"
	deliverycontext "perks/internal/delivery/context"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "client id kept", incoming: "scan-7f3a:01", keep: true},
		{name: "header injection replaced", incoming: "abc\r\nX-Evil: 1", keep: false},
		{name: "oversized replaced", incoming: strings.Repeat("a", 65), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(NewRequestIDMiddleware(newJSONLogger(&buf)).Process)

			var seenCtxID string
			e.GET("/", func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header[deliverycontext.HeaderXRequestID] = []string{tt.incoming}
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenCtxID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			records := decodeLines(t, &buf)
			require.Len(t, records, 1)
			assert.Equal(t, got, records[0]["request_id"])
		})
	}
}

func newLoggedEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewLoggerMiddleware(newJSONLogger(buf), cfg).Handle)

	return e
}

func TestLoggerMiddleware_StatusLevels(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		status  float64
		level   string
		logged  bool
	}{
		{
			name:    "success hidden without debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "success logged in debug",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			status:  200,
			level:   "INFO",
			logged:  true,
		},
		{
			name:    "duplicate redemption warns in debug",
			debug:   true,
			handler: func(echo.Context) error { return domainerrors.ErrAlreadyRedeemedToday },
			status:  409,
			level:   "WARN",
			logged:  true,
		},
		{
			name:    "echo error code used",
			debug:   true,
			handler: func(echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) },
			status:  418,
			level:   "WARN",
			logged:  true,
		},
		{
			name: "server error always logged",
			handler: func(c echo.Context) error {
				deliverycontext.SetSession(c, entity.Session{UserID: userID})

				return domainerrors.ErrBackendUnavailable
			},
			status: 503,
			level:  "ERROR",
			logged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newLoggedEcho(&buf, tt.debug)
			e.GET("/api/v1/redemptions", tt.handler)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/redemptions", nil))

			if !tt.logged {
				assert.Empty(t, buf.String())

				return
			}
			records := decodeLines(t, &buf)
			require.Len(t, records, 1)
			assert.Equal(t, tt.level, records[0]["level"])
			assert.Equal(t, tt.status, records[0]["status"])
			assert.Equal(t, "/api/v1/redemptions", records[0]["uri"])
		})
	}
}

func TestLoggerMiddleware_IncludesUserID(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, false)
	userID := uuid.New()
	e.POST("/api/v1/redemptions", func(c echo.Context) error {
		deliverycontext.SetSession(c, entity.Session{UserID: userID})

		return domainerrors.ErrCommitFailed
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/redemptions", nil))

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, userID.String(), records[0]["user_id"])
	assert.Contains(t, records[0]["error"], "COMMIT_FAILED")
}

func TestLoggerMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, true)
	e.GET("/health", func(echo.Context) error { return echo.ErrInternalServerError })
	e.GET("/metrics", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Empty(t, buf.String())
}
