// Package logger builds *slog.Logger values configured through functional
// options, with helper attribute constructors and transparent injection of
// values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with NewContextHandler, which runs every registered
// ContextExtractor before delegating. Request-scoped packages expose their
// own extractors (request ids, session identifiers) so handlers only need to
// log with the request context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "sessiond"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        identity.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(r.Context(), "telemetry recorded",
//	    logger.Fingerprint(id.Fingerprint),
//	    logger.Duration(time.Since(start)),
//	)
//
// NewFromConfig does the same from environment variables (APP_ENV, APP_NAME,
// LOG_LEVEL, LOG_FORMAT).
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Warn("session entry write failed", logger.Error(err))
//
// needs no extra nil check.
package logger
