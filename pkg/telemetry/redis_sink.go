package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix  = "telemetry:"
	DefaultMaxReports = 50
	DefaultReportTTL  = 24 * time.Hour
)

// RedisSink keeps the most recent reports of each session in a Redis list.
// Each write trims the list to the configured size and refreshes its expiry.
type RedisSink struct {
	client     redis.Cmdable
	prefix     string
	maxReports int64
	ttl        time.Duration
}

// RedisSinkOption configures a RedisSink.
type RedisSinkOption func(*RedisSink)

// WithKeyPrefix sets the key prefix, default "telemetry:".
func WithKeyPrefix(prefix string) RedisSinkOption {
	return func(s *RedisSink) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithMaxReports caps the number of reports kept per session.
func WithMaxReports(n int) RedisSinkOption {
	return func(s *RedisSink) {
		if n > 0 {
			s.maxReports = int64(n)
		}
	}
}

// WithReportTTL sets how long a session's reports live after the last write.
func WithReportTTL(ttl time.Duration) RedisSinkOption {
	return func(s *RedisSink) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisSink creates a sink on top of client.
func NewRedisSink(client redis.Cmdable, opts ...RedisSinkOption) *RedisSink {
	s := &RedisSink{
		client:     client,
		prefix:     DefaultKeyPrefix,
		maxReports: DefaultMaxReports,
		ttl:        DefaultReportTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the list key holding a session's reports.
func (s *RedisSink) Key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisSink) Record(ctx context.Context, r Report) error {
	if err := r.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return errors.Join(ErrSinkFailed, err)
	}

	key := s.Key(r.SessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, s.maxReports-1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return errors.Join(ErrSinkFailed, err)
	}
	return nil
}

// Recent returns up to limit reports of the session, newest first. A limit
// outside (0, max reports] returns all kept reports.
func (s *RedisSink) Recent(ctx context.Context, sessionID string, limit int) ([]Report, error) {
	if sessionID == "" {
		return nil, ErrInvalidReport
	}

	stop := int64(limit) - 1
	if limit <= 0 || int64(limit) > s.maxReports {
		stop = s.maxReports - 1
	}

	items, err := s.client.LRange(ctx, s.Key(sessionID), 0, stop).Result()
	if err != nil {
		return nil, errors.Join(ErrSinkFailed, err)
	}
	if len(items) == 0 {
		return nil, ErrReportNotFound
	}

	reports := make([]Report, 0, len(items))
	for _, item := range items {
		var r Report
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, errors.Join(ErrSinkFailed, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
