package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-controls/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Walker drives PointerLockControls from keyboard state with damped velocity,
// giving first-person walking movement on the ground plane.
// Key state is fed from window key callbacks; Update is called from the tick loop.
type Walker interface {
	// KeyDown records a key press. Unknown keys are ignored.
	//
	// Parameters:
	//   - keyCode: virtual key code (see common.Key*)
	KeyDown(keyCode uint32)

	// KeyUp records a key release. Unknown keys are ignored.
	//
	// Parameters:
	//   - keyCode: virtual key code (see common.Key*)
	KeyUp(keyCode uint32)

	// Update damps the velocity and, while the controls are locked, accelerates along the
	// pressed directions and moves the camera.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	Update(deltaTime float32)

	// Velocity returns the current velocity in camera-local units per second
	// (X = right, Z = backward).
	//
	// Returns:
	//   - mgl32.Vec3: the velocity
	Velocity() mgl32.Vec3

	// Reset clears key state and velocity.
	Reset()
}

type walkerImpl struct {
	mu *sync.Mutex

	controls PointerLockControls

	moveForward  bool
	moveBackward bool
	moveLeft     bool
	moveRight    bool

	velocity mgl32.Vec3

	damping      float32
	acceleration float32
}

var _ Walker = &walkerImpl{}

// NewWalker creates a Walker moving the camera of controls.
// Defaults: damping 10 per second, acceleration 400 units per second squared.
//
// Parameters:
//   - controls: the controls whose MoveForward/MoveRight are driven
//   - options: functional options to configure the walker
//
// Returns:
//   - Walker: the newly created walker
func NewWalker(controls PointerLockControls, options ...WalkerOption) Walker {
	w := &walkerImpl{
		mu:           &sync.Mutex{},
		controls:     controls,
		damping:      10.0,
		acceleration: 400.0,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *walkerImpl) KeyDown(keyCode uint32) {
	w.setKey(keyCode, true)
}

func (w *walkerImpl) KeyUp(keyCode uint32) {
	w.setKey(keyCode, false)
}

func (w *walkerImpl) Update(deltaTime float32) {
	w.mu.Lock()
	decay := common.Clamp(w.damping*deltaTime, 0, 1)
	w.velocity[0] -= w.velocity[0] * decay
	w.velocity[2] -= w.velocity[2] * decay

	if !w.controls.IsLocked() {
		w.mu.Unlock()
		return
	}

	direction := mgl32.Vec3{boolToFloat(w.moveRight) - boolToFloat(w.moveLeft), 0, boolToFloat(w.moveForward) - boolToFloat(w.moveBackward)}
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	if w.moveForward || w.moveBackward {
		w.velocity[2] -= direction[2] * w.acceleration * deltaTime
	}
	if w.moveLeft || w.moveRight {
		w.velocity[0] -= direction[0] * w.acceleration * deltaTime
	}
	vx, vz := w.velocity[0], w.velocity[2]
	w.mu.Unlock()

	w.controls.MoveRight(-vx * deltaTime)
	w.controls.MoveForward(-vz * deltaTime)
}

func (w *walkerImpl) Velocity() mgl32.Vec3 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.velocity
}

func (w *walkerImpl) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.moveForward, w.moveBackward, w.moveLeft, w.moveRight = false, false, false, false
	w.velocity = mgl32.Vec3{}
}

func (w *walkerImpl) setKey(keyCode uint32, pressed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch keyCode {
	case common.KeyW, common.KeyUp:
		w.moveForward = pressed
	case common.KeyS, common.KeyDown:
		w.moveBackward = pressed
	case common.KeyA, common.KeyLeft:
		w.moveLeft = pressed
	case common.KeyD, common.KeyRight:
		w.moveRight = pressed
	}
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
