package telemetry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessiontag/pkg/telemetry"
)

func intPtr(v int) *int { return &v }

func TestReport_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("network defaults", func(t *testing.T) {
		t.Parallel()
		r := telemetry.Report{Network: &telemetry.NetworkInfo{Online: true, RTT: -5, Downlink: -1}}.Normalize()

		require.NotNil(t, r.Network)
		assert.Equal(t, telemetry.UnknownConnection, r.Network.ConnectionType)
		assert.Equal(t, telemetry.UnknownConnection, r.Network.EffectiveType)
		assert.Zero(t, r.Network.RTT)
		assert.Zero(t, r.Network.Downlink)
		assert.Nil(t, r.Network.LatencyMS)
	})

	t.Run("latency probe", func(t *testing.T) {
		t.Parallel()
		ok := telemetry.Report{Network: &telemetry.NetworkInfo{LatencyMS: intPtr(0)}}.Normalize()
		require.NotNil(t, ok.Network.LatencyMS)
		assert.Equal(t, 0, *ok.Network.LatencyMS)

		failed := telemetry.Report{Network: &telemetry.NetworkInfo{LatencyMS: intPtr(-1)}}.Normalize()
		assert.Nil(t, failed.Network.LatencyMS)
	})

	t.Run("timings bounded", func(t *testing.T) {
		t.Parallel()
		in := telemetry.Report{Performance: &telemetry.PerformanceInfo{
			LoadTimeMS:             intPtr(1200),
			DOMContentLoadedMS:     intPtr(0),
			FirstPaintMS:           intPtr(60000),
			FirstContentfulPaintMS: intPtr(59999),
			FPS:                    intPtr(0),
			Memory:                 &telemetry.MemoryUsage{UsedMB: 12, TotalMB: 20, LimitMB: 2048},
		}}
		out := in.Normalize()

		p := out.Performance
		require.NotNil(t, p)
		assert.Equal(t, 1200, *p.LoadTimeMS)
		assert.Nil(t, p.DOMContentLoadedMS)
		assert.Nil(t, p.FirstPaintMS)
		assert.Equal(t, 59999, *p.FirstContentfulPaintMS)
		assert.Nil(t, p.FPS)
		assert.Equal(t, 12, p.Memory.UsedMB)

		assert.NotNil(t, in.Performance.FirstPaintMS, "input must not be modified")
	})

	t.Run("empty memory dropped", func(t *testing.T) {
		t.Parallel()
		r := telemetry.Report{Performance: &telemetry.PerformanceInfo{Memory: &telemetry.MemoryUsage{}}}.Normalize()
		assert.Nil(t, r.Performance.Memory)
	})
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	r := telemetry.NewReport("sid-1", "fp-1", telemetry.Payload{Network: &telemetry.NetworkInfo{Online: true}}, at)

	assert.Equal(t, "sid-1", r.SessionID)
	assert.Equal(t, "fp-1", r.Fingerprint)
	assert.Equal(t, time.UTC, r.ReceivedAt.Location())
	assert.True(t, at.Equal(r.ReceivedAt))
	assert.Equal(t, telemetry.UnknownConnection, r.Network.ConnectionType)
	assert.NoError(t, r.Validate())

	assert.ErrorIs(t, telemetry.Report{}.Validate(), telemetry.ErrInvalidReport)
}
