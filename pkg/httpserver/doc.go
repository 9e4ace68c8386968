// Package httpserver runs an http.Handler with graceful shutdown, configurable
// timeouts and slog logging.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or
// Shutdown is called, then drains in-flight requests within the shutdown
// timeout. Options follow the functional style (WithAddr, WithTimeouts,
// WithLogger, WithStartHook, ...); NewFromConfig builds a Server from the
// HTTP_* environment variables.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, 2*time.Second,
//	    httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)},
//	))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//	    return err
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps drain errors with
// ErrShutdown.
package httpserver
