package identity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessiontag/pkg/digest"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
)

func decodeIdentity(t *testing.T, w *httptest.ResponseRecorder) identity.Identity {
	t.Helper()
	var id identity.Identity
	require.NoError(t, json.NewDecoder(w.Body).Decode(&id))
	return id
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("GET resolves from headers", func(t *testing.T) {
		t.Parallel()
		h := identity.NewResolver().Handler()

		req := httptest.NewRequest(http.MethodGet, "/identity", nil)
		req.Header.Set("User-Agent", "UA-string")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.Len(t, w.Header().Values("Set-Cookie"), 2)

		id := decodeIdentity(t, w)
		assert.Regexp(t, `^[A-Za-z0-9_-]{20,24}$`, id.Identifier)
		assert.Regexp(t, `^[0-9a-f]{64}$`, id.Fingerprint)
		assert.Contains(t, id.Signals, "UA-string")
	})

	t.Run("POST descriptor overrides headers", func(t *testing.T) {
		t.Parallel()
		h := identity.NewResolver().Handler()

		body := `{"timezone":"UTC","language":"en-US","languages":["en-US"],"userAgent":"UA-string","platform":"Platform","vendor":"Vendor","hardwareConcurrency":8,"deviceMemory":4,"doNotTrack":"0","screen":{"width":1920,"height":1080,"availWidth":1920,"availHeight":1040,"colorDepth":24,"pixelDepth":24}}`
		req := httptest.NewRequest(http.MethodPost, "/identity", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "header agent")
		req.AddCookie(&http.Cookie{Name: "sid", Value: "abc123"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		id := decodeIdentity(t, w)

		signalString := "UTC|0|0|en-US|en-US|UA-string|Platform|Vendor|8|4|1920x1080x1920x1040x24x24"
		assert.Equal(t, "abc123", id.Identifier)
		assert.Equal(t, signalString, id.Signals)
		assert.Equal(t, digest.SHA256Hex("abc123::"+signalString), id.Fingerprint)

		headers := w.Header().Values("Set-Cookie")
		require.Len(t, headers, 1, "only the fingerprint is new")
		assert.True(t, strings.HasPrefix(headers[0], "sfp="))
	})

	t.Run("POST rejects bad bodies", func(t *testing.T) {
		t.Parallel()
		h := identity.NewResolver().Handler()

		tests := []struct {
			name        string
			contentType string
			body        string
			want        int
		}{
			{"missing content type", "", `{}`, http.StatusUnsupportedMediaType},
			{"wrong content type", "text/plain", `{}`, http.StatusUnsupportedMediaType},
			{"malformed json", "application/json", `{"timezone":`, http.StatusBadRequest},
			{"unknown field", "application/json", `{"canvas":"x"}`, http.StatusBadRequest},
			{"too large", "application/json", `{"userAgent":"` + strings.Repeat("a", 70<<10) + `"}`, http.StatusRequestEntityTooLarge},
		}

		for _, tt := range tests {
			req := httptest.NewRequest(http.MethodPost, "/identity", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, tt.name)
			assert.Empty(t, w.Header().Values("Set-Cookie"), tt.name)
		}
	})

	t.Run("other methods not allowed", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		identity.NewResolver().Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/identity", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET, HEAD, POST", w.Header().Get("Allow"))
	})

	t.Run("digest failure", func(t *testing.T) {
		t.Parallel()
		r := identity.NewResolver(identity.WithDigester(digest.Func(nil)))
		w := httptest.NewRecorder()
		r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/identity", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := identity.DefaultConfig()
	cfg.IdentifierName = "app_sid"
	cfg.FingerprintName = "app_sfp"
	cfg.SameSite = "Strict"
	cfg.IdentifierBytes = 24

	r := identity.NewFromConfig(cfg)
	idName, fpName := r.EntryNames()
	assert.Equal(t, "app_sid", idName)
	assert.Equal(t, "app_sfp", fpName)

	w := httptest.NewRecorder()
	id, err := r.ResolveRequest(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	require.NoError(t, err)
	assert.Len(t, id.Identifier, 32)

	headers := w.Header().Values("Set-Cookie")
	require.Len(t, headers, 2)
	assert.Equal(t, "app_sid="+id.Identifier+"; Path=/; SameSite=Strict", headers[0])
}
