package ebitenhost

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-controls/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	mode    ebiten.CursorModeType
	x, y    int
	focused bool
}

func (p *fakePlatform) CursorMode() ebiten.CursorModeType        { return p.mode }
func (p *fakePlatform) SetCursorMode(mode ebiten.CursorModeType) { p.mode = mode }
func (p *fakePlatform) CursorPosition() (int, int)               { return p.x, p.y }
func (p *fakePlatform) IsFocused() bool                          { return p.focused }

func newTestHost() (*Host, *fakePlatform) {
	p := &fakePlatform{mode: ebiten.CursorModeVisible, focused: true}
	return NewHost(WithPlatform(p)), p
}

func TestHostCapture(t *testing.T) {
	h, p := newTestHost()
	var changes int
	h.Document().AddEventListener(input.EventPointerLockChange, func(input.Event) { changes++ })

	h.Document().RequestPointerLock(h, input.PointerLockOptions{})
	h.Update()

	assert.Equal(t, ebiten.CursorModeCaptured, p.mode)
	assert.Equal(t, h, h.Document().PointerLockElement())
	assert.Equal(t, 1, changes)

	h.Document().ExitPointerLock()
	h.Update()

	assert.Equal(t, ebiten.CursorModeVisible, p.mode)
	assert.Nil(t, h.Document().PointerLockElement())
	assert.Equal(t, 2, changes)
}

func TestHostRejectsUnadjusted(t *testing.T) {
	h, p := newTestHost()
	var errs []error
	h.Document().AddEventListener(input.EventPointerLockError, func(e input.Event) { errs = append(errs, e.Err) })

	h.Document().RequestPointerLock(h, input.PointerLockOptions{UnadjustedMovement: true})
	h.Update()

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], input.ErrRawMotionUnsupported)
	assert.Equal(t, ebiten.CursorModeVisible, p.mode)
}

func TestHostReportsMotion(t *testing.T) {
	h, p := newTestHost()
	var moves []input.Event
	h.Document().AddEventListener(input.EventMouseMove, func(e input.Event) { moves = append(moves, e) })

	p.x, p.y = 10, 10
	h.Update()
	h.Update()
	p.x, p.y = 15, 7
	h.Update()

	require.Len(t, moves, 2)
	assert.Equal(t, 5.0, moves[1].MovementX)
	assert.Equal(t, -3.0, moves[1].MovementY)
}

func TestHostReseedsAfterCapture(t *testing.T) {
	h, p := newTestHost()
	var moves []input.Event
	h.Document().AddEventListener(input.EventMouseMove, func(e input.Event) { moves = append(moves, e) })

	p.x, p.y = 100, 100
	h.Update()

	h.Document().RequestPointerLock(h, input.PointerLockOptions{})
	h.Update()
	p.x = 104
	h.Update()

	require.Len(t, moves, 3)
	assert.Equal(t, 0.0, moves[1].MovementX)
	assert.Equal(t, 4.0, moves[2].MovementX)
}

func TestHostDetectsPlatformRelease(t *testing.T) {
	h, p := newTestHost()
	h.Document().RequestPointerLock(h, input.PointerLockOptions{})
	h.Update()
	require.NotNil(t, h.Document().PointerLockElement())

	p.focused = false
	h.Update()

	assert.Nil(t, h.Document().PointerLockElement())
	assert.Equal(t, ebiten.CursorModeVisible, p.mode)
}
