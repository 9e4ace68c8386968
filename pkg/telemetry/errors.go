package telemetry

import "errors"

var (
	ErrInvalidReport  = errors.New("telemetry.invalid_report")
	ErrSinkFailed     = errors.New("telemetry.sink_failed")
	ErrNotReadable    = errors.New("telemetry.sink_not_readable")
	ErrReportNotFound = errors.New("telemetry.report_not_found")
)
