package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunWithoutWindowTicksUntilQuit(t *testing.T) {
	var ticks, frames atomic.Int32
	e := NewEngine(WithTickRate(200), WithRenderFrameLimit(200), WithLogger(zaptest.NewLogger(t)))
	e.SetTickCallback(func(dt float32) {
		assert.GreaterOrEqual(t, dt, float32(0))
		ticks.Add(1)
	})
	e.SetRenderCallback(func(float32) { frames.Add(1) })

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 && frames.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	e.Quit()
	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestRenderPanicQuitsEngine(t *testing.T) {
	e := NewEngine(WithLogger(zaptest.NewLogger(t)))
	e.SetRenderCallback(func(float32) { panic("boom") })

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after render panic")
	}
}

func TestResizeUpdatesCameraAspect(t *testing.T) {
	first := camera.NewCamera()
	second := camera.NewCamera(camera.WithAspect(2))
	e := NewEngine(WithCamera(first), WithCamera(nil)).(*engine)
	e.AddCamera(second)
	e.AddCamera(nil)
	require.Len(t, e.Cameras(), 2)

	e.resize(1600, 800)
	assert.Equal(t, float32(2), first.Aspect())
	assert.Equal(t, float32(2), second.Aspect())

	e.resize(0, 800)
	assert.Equal(t, float32(2), first.Aspect(), "degenerate sizes are ignored")
}

func TestResizeCallbackRunsAfterCameras(t *testing.T) {
	cam := camera.NewCamera()
	e := NewEngine(WithCamera(cam)).(*engine)

	var sizes [][2]int
	e.SetResizeCallback(func(width, height int) {
		assert.Equal(t, float32(width)/float32(height), cam.Aspect(), "camera aspect is updated first")
		sizes = append(sizes, [2]int{width, height})
	})

	e.resize(1280, 720)
	e.resize(0, 720)
	assert.Equal(t, [][2]int{{1280, 720}}, sizes)

	e.SetResizeCallback(nil)
	e.resize(640, 480)
	assert.Len(t, sizes, 1)
	assert.Equal(t, float32(640)/float32(480), cam.Aspect())
}

func TestTickRateConversion(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, time.Second/60, tickInterval(-5))
	assert.Equal(t, 8*time.Millisecond, tickInterval(125))
	assert.Equal(t, time.Duration(0), frameLimit(0))
	assert.Equal(t, 10*time.Millisecond, frameLimit(100))

	e := NewEngine().(*engine)
	e.SetTickRate(30)
	assert.Equal(t, time.Second/30, e.engineTickRate)
	e.SetRenderFrameLimit(50)
	assert.Equal(t, 20*time.Millisecond, e.renderFrameLimit)
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithProfiling(true)).(*engine)
	assert.True(t, e.profilingEnabled)
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled)
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled)
}
