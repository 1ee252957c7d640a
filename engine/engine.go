package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/Carmen-Shannon/oxy-controls/engine/logger"
	"github.com/Carmen-Shannon/oxy-controls/engine/profiler"
	"github.com/Carmen-Shannon/oxy-controls/engine/window"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// Coordinates engine, render, and window threads.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	logger *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
	resizeCallback func(width, height int)

	cameras []camera.Camera

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the engine.
// It orchestrates the engine loop, render loop, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Use this for controls, movement and other per-tick updates.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	// Use this for GPU buffer updates and drawing.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetResizeCallback registers the function called after a window resize, once the registered
	// cameras' aspect ratios are updated. The engine owns the window's resize callback, so use
	// this instead of Window().SetResizeCallback.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels (or nil to disable)
	SetResizeCallback(callback func(width, height int))

	// AddCamera registers a camera whose aspect ratio follows the window size.
	//
	// Parameters:
	//   - c: the camera to register
	AddCamera(c camera.Camera)

	// Cameras returns a copy of the registered cameras.
	//
	// Returns:
	//   - []camera.Camera: the registered cameras in registration order
	Cameras() []camera.Camera

	// Run starts the main engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		logger:           logger.Provide(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	e.logger = e.logger.Named("engine")
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

// Run starts the tick and render goroutines and blocks in the window's message loop.
// Closing the window quits the engine, and the window is destroyed on the calling goroutine.
func (e *engine) Run() {
	e.handle()
	if e.window == nil {
		<-e.quitChannel
		e.wg.Wait()
		return
	}
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
	if err := e.window.Close(); err != nil {
		e.logger.Warn("failed to close window", zap.Error(err))
	}
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
	if e.window != nil {
		e.window.RequestClose()
	}
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle launches the engine and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// resize keeps every registered camera's aspect ratio in sync with the window, then calls the
// resize callback.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	for _, c := range e.Cameras() {
		c.SetAspect(aspect)
	}
	e.logger.Debug("window resized", zap.Int("width", width), zap.Int("height", height))

	e.mu.Lock()
	hook := e.resizeCallback
	e.mu.Unlock()
	if hook != nil {
		hook(width, height)
	}
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	e.mu.Lock()
	rate := e.engineTickRate
	e.mu.Unlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if cb := e.tick(); cb != nil {
				cb(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("render goroutine recovered from panic", zap.Any("panic", r))
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			e.mu.Lock()
			render := e.renderCallback
			profiling := e.profilingEnabled
			limit := e.renderFrameLimit
			e.mu.Unlock()

			if render != nil {
				render(dt)
			}

			if profiling {
				e.profiler.Tick()
			}

			if limit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := limit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			} else {
				// yield so an empty render loop does not spin a core
				time.Sleep(time.Millisecond)
			}
		}
	}
}

func (e *engine) tick() func(deltaTime float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tickCallback
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

// SetResizeCallback registers the function called after each window resize.
func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizeCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameLimit(fps)
}

func (e *engine) AddCamera(c camera.Camera) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cameras = append(e.cameras, c)
}

func (e *engine) Cameras() []camera.Camera {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make([]camera.Camera, len(e.cameras))
	copy(cp, e.cameras)
	return cp
}

// tickInterval converts a tick rate into a ticker interval, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameLimit converts a frame cap into a minimum frame duration; 0 means uncapped.
func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
