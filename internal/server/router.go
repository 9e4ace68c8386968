package server

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sessiontag/pkg/httpserver"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
	"github.com/dmitrymomot/sessiontag/pkg/logger"
	"github.com/dmitrymomot/sessiontag/pkg/requestid"
	"github.com/dmitrymomot/sessiontag/pkg/telemetry"
)

//go:embed assets/session.js
var assets embed.FS

// RouterOptions configures the routes mounted by Router. Resolver is
// required; everything else is optional.
type RouterOptions struct {
	Resolver *identity.Resolver
	Logger   *slog.Logger

	// Telemetry enables /telemetry when set.
	Telemetry        telemetry.Sink
	TelemetryMaxBody int64

	HealthChecks  []httpserver.Check
	HealthTimeout time.Duration
}

// Router builds the sessiond HTTP routes:
//
//	GET|HEAD|POST /identity   resolve and return the session identity
//	GET|POST      /telemetry  session telemetry (behind identity.Middleware)
//	GET|HEAD      /healthz    liveness and readiness
//	GET           /session.js browser snippet
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = identity.NewResolver(identity.WithLogger(log))
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	health := httpserver.HealthCheckHandler(log, opts.HealthTimeout, opts.HealthChecks...)
	r.Get("/healthz", health)
	r.Head("/healthz", health)

	r.Get("/session.js", serveSnippet)

	r.Handle("/identity", resolver.Handler())

	if opts.Telemetry != nil {
		r.Group(func(r chi.Router) {
			r.Use(resolver.Middleware)
			r.Handle("/telemetry", telemetry.Handler(opts.Telemetry,
				telemetry.WithHandlerLogger(log),
				telemetry.WithMaxBodySize(opts.TelemetryMaxBody),
			))
		})
	}

	return r
}

func serveSnippet(w http.ResponseWriter, r *http.Request) {
	data, err := assets.ReadFile("assets/session.js")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(data)
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.LogAttrs(r.Context(), slog.LevelDebug, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
