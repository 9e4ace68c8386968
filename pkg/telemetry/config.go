package telemetry

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds telemetry configuration
type Config struct {
	Enabled bool `env:"TELEMETRY_ENABLED" envDefault:"true"`

	// Log writes every report to the application log
	Log bool `env:"TELEMETRY_LOG" envDefault:"true"`

	KeyPrefix  string        `env:"TELEMETRY_REDIS_PREFIX" envDefault:"telemetry:"`
	MaxReports int           `env:"TELEMETRY_MAX_REPORTS" envDefault:"50"`
	ReportTTL  time.Duration `env:"TELEMETRY_REPORT_TTL" envDefault:"24h"`
	MaxBody    int64         `env:"TELEMETRY_MAX_BODY" envDefault:"16384"`
}

// NewSinkFromConfig assembles the configured sinks. client may be nil when
// Redis is not configured. The result is nil when no sink is enabled.
func NewSinkFromConfig(cfg Config, log *slog.Logger, client redis.Cmdable) Sink {
	if !cfg.Enabled {
		return nil
	}

	var sinks MultiSink
	if client != nil {
		sinks = append(sinks, NewRedisSink(client,
			WithKeyPrefix(cfg.KeyPrefix),
			WithMaxReports(cfg.MaxReports),
			WithReportTTL(cfg.ReportTTL),
		))
	}
	if cfg.Log {
		sinks = append(sinks, NewLogSink(log))
	}

	switch len(sinks) {
	case 0:
		return nil
	case 1:
		return sinks[0]
	}
	return sinks
}
