package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-controls/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWalkerDoesNothingWhileUnlocked(t *testing.T) {
	c, _ := newTestControls(t)
	w := NewWalker(c)

	w.KeyDown(common.KeyW)
	w.Update(0.1)

	assert.Equal(t, mgl32.Vec3{}, c.Object().Position())
	assert.Equal(t, mgl32.Vec3{}, w.Velocity())
}

func TestWalkerMovesForward(t *testing.T) {
	c, el := newTestControls(t)
	lockControls(t, c, el)
	w := NewWalker(c)

	w.KeyDown(common.KeyW)
	w.Update(0.1)

	assert.InDelta(t, -40, w.Velocity().Z(), epsilon)
	assertVecNear(t, mgl32.Vec3{0, 0, -4}, c.Object().Position())
}

func TestWalkerStrafesWithArrows(t *testing.T) {
	c, el := newTestControls(t)
	lockControls(t, c, el)
	w := NewWalker(c, WithAcceleration(100))

	w.KeyDown(common.KeyLeft)
	w.Update(0.5)

	assert.InDelta(t, 50, w.Velocity().X(), epsilon)
	assertVecNear(t, mgl32.Vec3{-25, 0, 0}, c.Object().Position())
}

func TestWalkerNormalizesDiagonal(t *testing.T) {
	c, el := newTestControls(t)
	lockControls(t, c, el)
	w := NewWalker(c)

	w.KeyDown(common.KeyW)
	w.KeyDown(common.KeyD)
	w.Update(0.01)

	v := w.Velocity()
	assert.InDelta(t, 4, v.Len(), 1e-3)
	assert.InDelta(t, v.X(), v.Z(), epsilon)
}

func TestWalkerDamping(t *testing.T) {
	c, el := newTestControls(t)
	lockControls(t, c, el)
	w := NewWalker(c, WithDamping(5))

	w.KeyDown(common.KeyS)
	w.Update(0.1)
	w.KeyUp(common.KeyS)
	assert.InDelta(t, 40, w.Velocity().Z(), epsilon)

	w.Update(0.1)
	assert.InDelta(t, 20, w.Velocity().Z(), epsilon)

	// damping never reverses the velocity
	w.Update(10)
	assert.InDelta(t, 0, w.Velocity().Z(), epsilon)
}

func TestWalkerOpposingKeysCancel(t *testing.T) {
	c, el := newTestControls(t)
	lockControls(t, c, el)
	w := NewWalker(c)

	w.KeyDown(common.KeyA)
	w.KeyDown(common.KeyD)
	w.Update(0.1)

	assert.Equal(t, mgl32.Vec3{}, c.Object().Position())
}

func TestWalkerReset(t *testing.T) {
	c, el := newTestControls(t)
	lockControls(t, c, el)
	w := NewWalker(c)

	w.KeyDown(common.KeyW)
	w.Update(0.1)
	w.Reset()
	assert.Equal(t, mgl32.Vec3{}, w.Velocity())

	before := c.Object().Position()
	w.Update(0.1)
	assert.Equal(t, before, c.Object().Position())
}

func TestWalkerIgnoresInvalidOptions(t *testing.T) {
	w := NewWalker(nil, WithDamping(0), WithAcceleration(-1)).(*walkerImpl)
	assert.Equal(t, float32(10), w.damping)
	assert.Equal(t, float32(400), w.acceleration)
}
