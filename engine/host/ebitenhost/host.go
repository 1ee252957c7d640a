// Package ebitenhost adapts an Ebiten game loop into a pointer capture host so pointer lock
// controls can run inside an ebiten.Game.
package ebitenhost

import (
	"github.com/Carmen-Shannon/oxy-controls/engine/input"
	"github.com/Carmen-Shannon/oxy-controls/engine/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Platform is the subset of Ebiten's global input API the host relies on.
type Platform interface {
	CursorMode() ebiten.CursorModeType
	SetCursorMode(mode ebiten.CursorModeType)
	CursorPosition() (x, y int)
	IsFocused() bool
}

// ebitenPlatform forwards to the ebiten package functions.
type ebitenPlatform struct{}

func (ebitenPlatform) CursorMode() ebiten.CursorModeType        { return ebiten.CursorMode() }
func (ebitenPlatform) SetCursorMode(mode ebiten.CursorModeType) { ebiten.SetCursorMode(mode) }
func (ebitenPlatform) CursorPosition() (int, int)               { return ebiten.CursorPosition() }
func (ebitenPlatform) IsFocused() bool                          { return ebiten.IsFocused() }

// Host is an input.Element backed by the Ebiten cursor.
// Call Update once at the start of every ebiten.Game.Update.
type Host struct {
	document input.Document
	platform Platform
	logger   *zap.Logger

	captured bool
	lastX    int
	lastY    int
	sampled  bool
}

var (
	_ input.Element = &Host{}
	_ input.Backend = &Host{}
)

// HostOption is a functional option for configuring a Host.
type HostOption func(*Host)

// WithPlatform replaces the Ebiten input API, mainly for tests.
//
// Parameters:
//   - p: the platform implementation
//
// Returns:
//   - HostOption: functional option to set the platform
func WithPlatform(p Platform) HostOption {
	return func(h *Host) {
		h.platform = p
	}
}

// WithLogger sets the logger used by the host and its document.
//
// Parameters:
//   - l: the zap logger (nil keeps the process logger)
//
// Returns:
//   - HostOption: functional option to set the logger
func WithLogger(l *zap.Logger) HostOption {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHost creates a Host with its own Document.
//
// Parameters:
//   - options: functional options to configure the host
//
// Returns:
//   - *Host: the newly created host
func NewHost(options ...HostOption) *Host {
	h := &Host{
		platform: ebitenPlatform{},
		logger:   logger.Provide(),
	}
	for _, option := range options {
		option(h)
	}
	h.document = input.NewDocument(input.WithBackend(h), input.WithLogger(h.logger))
	return h
}

// Document returns the host's document.
func (h *Host) Document() input.Document {
	return h.document
}

// Capture switches Ebiten to captured cursor mode. Ebiten has no raw motion switch,
// so unadjusted requests fail with input.ErrRawMotionUnsupported.
func (h *Host) Capture(unadjusted bool) error {
	if unadjusted {
		return input.ErrRawMotionUnsupported
	}
	h.platform.SetCursorMode(ebiten.CursorModeCaptured)
	h.captured = true
	return nil
}

// Release restores the visible cursor.
func (h *Host) Release() {
	h.captured = false
	if h.platform.CursorMode() == ebiten.CursorModeCaptured {
		h.platform.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Update polls the cursor, detects capture lost on the platform side, and resolves pending
// capture requests. Motion is only reported when the cursor moved since the last poll.
func (h *Host) Update() {
	if h.captured && (h.platform.CursorMode() != ebiten.CursorModeCaptured || !h.platform.IsFocused()) {
		h.logger.Debug("cursor capture lost")
		h.document.ReleasePointerLock()
	}

	before := h.document.PointerLockElement()
	h.document.ProcessPending()
	transitioned := !input.SameElement(h.document.PointerLockElement(), before)

	// a capture transition resets the document's sampling, so re-seed it with the current position
	x, y := h.platform.CursorPosition()
	if !h.sampled || transitioned || x != h.lastX || y != h.lastY {
		h.document.MoveCursor(float64(x), float64(y))
		h.lastX, h.lastY = x, y
		h.sampled = true
	}
}
