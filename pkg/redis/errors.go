package redis

import "errors"

var (
	ErrDisabled          = errors.New("redis: connection url not configured")
	ErrInvalidURL        = errors.New("redis: invalid connection url")
	ErrNotReady          = errors.New("redis: server not ready before deadline")
	ErrNilClient         = errors.New("redis: nil client")
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
