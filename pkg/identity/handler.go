package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/sessiontag/pkg/binder"
	"github.com/dmitrymomot/sessiontag/pkg/logger"
	"github.com/dmitrymomot/sessiontag/pkg/signals"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the session identity as JSON.
//
// GET resolves from request cookies and headers. POST additionally accepts a
// signals.Descriptor body whose values take precedence over the headers. Mount
// it outside Middleware: otherwise the middleware stores a fingerprint derived
// from headers alone before the descriptor is read.
func (r *Resolver) Handler() http.Handler {
	bind := binder.JSON()

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var env signals.Environment

		switch req.Method {
		case http.MethodGet, http.MethodHead:
		case http.MethodPost:
			var d signals.Descriptor
			if err := bind(req, &d); err != nil {
				status := http.StatusBadRequest
				switch {
				case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
					status = http.StatusUnsupportedMediaType
				case errors.Is(err, binder.ErrBodyTooLarge):
					status = http.StatusRequestEntityTooLarge
				}
				writeJSON(w, status, errorResponse{Error: err.Error()})
				return
			}
			env = &d
		default:
			w.Header().Set("Allow", "GET, HEAD, POST")
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		id, err := r.ResolveRequest(w, req, env)
		if err != nil {
			r.logger.ErrorContext(req.Context(), "session identity resolution failed", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session identity unavailable"})
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, id)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
