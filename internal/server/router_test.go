package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessiontag/internal/server"
	"github.com/dmitrymomot/sessiontag/pkg/digest"
	"github.com/dmitrymomot/sessiontag/pkg/httpserver"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
	"github.com/dmitrymomot/sessiontag/pkg/requestid"
	"github.com/dmitrymomot/sessiontag/pkg/telemetry"
)

func TestRouter_Identity(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(server.Router(server.RouterOptions{Resolver: identity.NewResolver()}))
	t.Cleanup(ts.Close)

	body := `{"timezone":"UTC","language":"en-US","languages":["en-US"],"userAgent":"UA-string"}`
	resp, err := http.Post(ts.URL+"/identity", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))

	var id identity.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&id))
	assert.Equal(t, digest.SHA256Hex(id.Identifier+"::"+id.Signals), id.Fingerprint)
	assert.Equal(t, "UTC||0|en-US|en-US|UA-string|||0|0|0x0x0x0x0x0", id.Signals)

	cookies := resp.Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, id.Identifier, cookies[0].Value)
	assert.Equal(t, "sfp", cookies[1].Name)
	assert.Equal(t, id.Fingerprint, cookies[1].Value)
}

func TestRouter_Telemetry(t *testing.T) {
	t.Parallel()

	var recorded []telemetry.Report
	sink := telemetry.SinkFunc(func(_ context.Context, r telemetry.Report) error {
		recorded = append(recorded, r)
		return nil
	})
	h := server.Router(server.RouterOptions{Resolver: identity.NewResolver(), Telemetry: sink})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/identity", nil))
	require.Equal(t, http.StatusOK, first.Code)

	var id identity.Identity
	require.NoError(t, json.NewDecoder(first.Body).Decode(&id))

	req := httptest.NewRequest(http.MethodPost, "/telemetry", strings.NewReader(`{"network":{"online":true}}`))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range first.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Values("Set-Cookie"), "returning session writes no cookies")
	require.Len(t, recorded, 1)
	assert.Equal(t, id.Identifier, recorded[0].SessionID)
	assert.Equal(t, id.Fingerprint, recorded[0].Fingerprint)
}

func TestRouter_TelemetryDisabled(t *testing.T) {
	t.Parallel()

	h := server.Router(server.RouterOptions{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/telemetry", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := server.Router(server.RouterOptions{
		HealthChecks: []httpserver.Check{{
			Name:  "redis",
			Probe: func(context.Context) error { return errors.New("down") },
		}},
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_Snippet(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	server.Router(server.RouterOptions{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session.js", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, w.Body.String(), `postJSON("/identity"`)
}

func TestRouter_AccessLog(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	w := httptest.NewRecorder()
	server.Router(server.RouterOptions{Logger: log}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Contains(t, buf.String(), `"msg":"http request"`)
	assert.Contains(t, buf.String(), `"path":"/healthz"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
