package telemetry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/sessiontag/pkg/logger"
)

// Sink stores or forwards reports.
type Sink interface {
	Record(ctx context.Context, r Report) error
}

// Reader is implemented by sinks that can return the recent reports of a
// session, newest first.
type Reader interface {
	Recent(ctx context.Context, sessionID string, limit int) ([]Report, error)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ctx context.Context, r Report) error

func (f SinkFunc) Record(ctx context.Context, r Report) error {
	return f(ctx, r)
}

// LogSink writes every report as one log record.
type LogSink struct {
	log   *slog.Logger
	level slog.Level
}

// NewLogSink creates a sink logging at info level. A nil logger uses
// slog.Default().
func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log.With(logger.Component("telemetry")), level: slog.LevelInfo}
}

func (s *LogSink) Record(ctx context.Context, r Report) error {
	if err := r.Validate(); err != nil {
		return err
	}

	attrs := []slog.Attr{
		logger.SessionID(r.SessionID),
		logger.Fingerprint(r.Fingerprint),
	}
	if n := r.Network; n != nil {
		network := []slog.Attr{
			slog.Bool("online", n.Online),
			slog.String("connection_type", n.ConnectionType),
			slog.String("effective_type", n.EffectiveType),
			slog.Float64("downlink", n.Downlink),
			slog.Int("rtt", n.RTT),
			slog.Bool("save_data", n.SaveData),
		}
		if n.LatencyMS != nil {
			network = append(network, slog.Int("latency_ms", *n.LatencyMS))
		}
		attrs = append(attrs, logger.Group("network", network...))
	}
	if p := r.Performance; p != nil {
		var perf []slog.Attr
		perf = appendTiming(perf, "load_ms", p.LoadTimeMS)
		perf = appendTiming(perf, "dom_content_loaded_ms", p.DOMContentLoadedMS)
		perf = appendTiming(perf, "first_paint_ms", p.FirstPaintMS)
		perf = appendTiming(perf, "first_contentful_paint_ms", p.FirstContentfulPaintMS)
		perf = appendTiming(perf, "fps", p.FPS)
		if m := p.Memory; m != nil {
			perf = append(perf, logger.Group("memory_mb",
				slog.Int("used", m.UsedMB),
				slog.Int("total", m.TotalMB),
				slog.Int("limit", m.LimitMB),
			))
		}
		attrs = append(attrs, logger.Group("performance", perf...))
	}

	s.log.LogAttrs(ctx, s.level, "telemetry report", attrs...)
	return nil
}

func appendTiming(attrs []slog.Attr, key string, v *int) []slog.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, slog.Int(key, *v))
}

// MultiSink records every report in all sinks. Failures are joined; one
// failing sink does not stop the others.
type MultiSink []Sink

func (m MultiSink) Record(ctx context.Context, r Report) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Record(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recent returns the reports of the first readable sink.
func (m MultiSink) Recent(ctx context.Context, sessionID string, limit int) ([]Report, error) {
	for _, s := range m {
		if rd, ok := s.(Reader); ok {
			return rd.Recent(ctx, sessionID, limit)
		}
	}
	return nil, ErrNotReadable
}
