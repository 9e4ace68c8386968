// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed inbound X-Request-ID header (letters,
// digits, '-' and '_', at most 128 bytes) or generates a UUIDv4, stores the id
// in the request context and echoes it in the response header. New builds the
// same middleware with options, e.g. to ignore inbound ids from untrusted
// clients.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with the request context carries "request_id".
package requestid
