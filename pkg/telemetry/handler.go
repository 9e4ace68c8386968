package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/sessiontag/pkg/binder"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
	"github.com/dmitrymomot/sessiontag/pkg/logger"
)

// HandlerOption configures the telemetry handler.
type HandlerOption func(*handler)

type handler struct {
	sink    Sink
	bind    func(r *http.Request, v any) error
	log     *slog.Logger
	now     func() time.Time
	maxBody int64
}

// WithHandlerLogger sets the logger for sink failures.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodySize limits the payload size in bytes.
func WithMaxBodySize(n int64) HandlerOption {
	return func(h *handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// WithClock sets the time source for ReceivedAt.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *handler) {
		if now != nil {
			h.now = now
		}
	}
}

// Handler serves the session's telemetry. It must run behind
// identity.Middleware.
//
// POST accepts a Payload and answers 204. GET returns the session's recent
// reports when the sink implements Reader; the "limit" query parameter caps
// the count.
func Handler(sink Sink, opts ...HandlerOption) http.Handler {
	h := &handler{
		sink:    sink,
		log:     slog.New(slog.DiscardHandler),
		now:     time.Now,
		maxBody: 16 << 10,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.sink == nil {
		h.sink = SinkFunc(func(context.Context, Report) error { return nil })
	}
	h.bind = binder.JSONWithLimit(h.maxBody)

	return identity.RequireIdentity(h)
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := identity.MustFromContext(r.Context())

	switch r.Method {
	case http.MethodPost:
		h.record(w, r, id)
	case http.MethodGet:
		h.recent(w, r, id)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *handler) record(w http.ResponseWriter, r *http.Request, id identity.Identity) {
	var p Payload
	if err := h.bind(r, &p); err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
			status = http.StatusUnsupportedMediaType
		case errors.Is(err, binder.ErrBodyTooLarge):
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err.Error())
		return
	}

	report := NewReport(id.Identifier, id.Fingerprint, p, h.now())
	if err := h.sink.Record(r.Context(), report); err != nil {
		h.log.ErrorContext(r.Context(), "telemetry record failed", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "telemetry unavailable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) recent(w http.ResponseWriter, r *http.Request, id identity.Identity) {
	rd, ok := h.sink.(Reader)
	if !ok {
		writeError(w, http.StatusNotFound, ErrNotReadable.Error())
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	reports, err := rd.Recent(r.Context(), id.Identifier, limit)
	switch {
	case errors.Is(err, ErrReportNotFound):
		reports = []Report{}
	case errors.Is(err, ErrNotReadable):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "telemetry read failed", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "telemetry unavailable")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, reports)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
