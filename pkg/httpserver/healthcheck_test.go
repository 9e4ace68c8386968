package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessiontag/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		return body
	}

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil, 0)(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alive", decode(t, w)["status"])
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h := httpserver.HealthCheckHandler(nil, time.Second, httpserver.Check{
			Name:  "redis",
			Probe: func(context.Context) error { return nil },
		})
		h(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "ready", body["status"])
		assert.Equal(t, map[string]any{"redis": "ok"}, body["checks"])
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h := httpserver.HealthCheckHandler(nil, time.Second,
			httpserver.Check{Name: "redis", Probe: func(context.Context) error { return errors.New("down") }},
			httpserver.Check{Name: "self", Probe: func(context.Context) error { return nil }},
		)
		h(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode(t, w)
		assert.Equal(t, "not_ready", body["status"])
		assert.Equal(t, map[string]any{"redis": "fail", "self": "ok"}, body["checks"])
	})

	t.Run("probe bounded by timeout", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		h := httpserver.HealthCheckHandler(nil, 20*time.Millisecond, httpserver.Check{
			Name: "slow",
			Probe: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		})
		h(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
