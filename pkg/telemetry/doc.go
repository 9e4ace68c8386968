// Package telemetry accepts client-side network and performance reports
// tagged with the session identity.
//
// Reports are optional and peripheral: identity resolution never waits on
// them. The browser snippet served by sessiond posts a Payload after the
// identity is established; Handler attaches the session identifier and
// fingerprint from the request context, normalises the values and hands the
// Report to a Sink.
//
// Normalisation drops timings outside (0, 60000) ms, a failed latency probe
// and non-positive frame rates, and defaults the connection types to
// "unknown".
//
// Sinks:
//
//   - LogSink writes one structured log record per report.
//   - RedisSink keeps a capped, expiring list of recent reports per session.
//   - MultiSink fans out to several sinks.
package telemetry
