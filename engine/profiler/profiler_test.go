package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTickLogsAfterInterval(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	now := time.Unix(0, 0)
	p := NewProfiler(WithLogger(zap.New(core)), WithInterval(time.Second), withClock(func() time.Time { return now }))

	now = now.Add(500 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Equal(t, 0, logs.Len())

	now = now.Add(500 * time.Millisecond)
	assert.True(t, p.Tick())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "frame stats", entries[0].Message)
	assert.Equal(t, "profiler", entries[0].LoggerName)
	assert.InDelta(t, 2.0, entries[0].ContextMap()["fps"], 1e-9)

	now = now.Add(10 * time.Millisecond)
	assert.False(t, p.Tick(), "window restarts after logging")
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithLogger(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.logger)
}
