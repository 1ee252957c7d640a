package camera

import (
	"github.com/Carmen-Shannon/oxy-controls/engine/event"
	"github.com/Carmen-Shannon/oxy-controls/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// ControlsEventType names a notification emitted by PointerLockControls.
type ControlsEventType string

const (
	// ControlsEventChange is emitted after the camera orientation changed from pointer motion.
	ControlsEventChange ControlsEventType = "change"
	// ControlsEventLock is emitted when the bound element acquired pointer capture.
	ControlsEventLock ControlsEventType = "lock"
	// ControlsEventUnlock is emitted when pointer capture moved away from the bound element.
	ControlsEventUnlock ControlsEventType = "unlock"
)

// ControlsEvent is a tagged notification with no payload beyond its type and source.
type ControlsEvent struct {
	Type   ControlsEventType
	Target PointerLockControls
}

// PointerLockControls rotates a Camera from relative pointer motion while its element holds
// pointer capture, and moves the camera along its local forward and right axes.
//
// Capture is driven by the element's Document: Lock and Unlock only request a transition,
// the controls flip IsLocked when the document reports the change. Orientation updates only
// happen while both Enabled and IsLocked are true.
type PointerLockControls interface {
	// Connect binds the controls to el and registers motion and capture listeners on its document.
	// Connecting to the element already connected is a no-op; connecting to another element
	// disconnects from the previous one first.
	//
	// Parameters:
	//   - el: the element to bind (must not be nil)
	Connect(el input.Element)

	// Disconnect removes every listener registered by Connect.
	// Panics if no element was ever bound.
	Disconnect()

	// Dispose tears the controls down. Equivalent to Disconnect: once it returns no document
	// callback reaches the controls, including dispatches already in progress.
	Dispose()

	// Object returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera mutated by these controls
	Object() Camera

	// Element returns the bound element, or nil.
	//
	// Returns:
	//   - input.Element: the bound element or nil
	Element() input.Element

	// Direction returns the camera's forward-facing unit vector, (0,0,-1) rotated by its orientation.
	//
	// Returns:
	//   - mgl32.Vec3: world-space look direction
	Direction() mgl32.Vec3

	// DirectionInto writes the look direction into out and returns out.
	//
	// Parameters:
	//   - out: destination vector
	//
	// Returns:
	//   - *mgl32.Vec3: out
	DirectionInto(out *mgl32.Vec3) *mgl32.Vec3

	// MoveForward moves the camera parallel to the ground plane along its facing direction.
	// Pitch does not affect the movement. Ignored while disabled.
	//
	// Parameters:
	//   - distance: world units; negative moves backwards
	MoveForward(distance float32)

	// MoveRight moves the camera along its local right axis. Ignored while disabled.
	//
	// Parameters:
	//   - distance: world units; negative moves left
	MoveRight(distance float32)

	// Lock requests pointer capture for the bound element. Panics if no element is bound.
	//
	// Parameters:
	//   - unadjustedMovement: optional flag requesting raw motion without OS acceleration
	Lock(unadjustedMovement ...bool)

	// Unlock requests release of pointer capture. Panics if no element is bound.
	Unlock()

	// Enabled reports whether the controls react to input and movement calls.
	Enabled() bool

	// SetEnabled enables or suspends the controls without disconnecting them.
	SetEnabled(enabled bool)

	// IsLocked reports whether the bound element currently holds pointer capture.
	IsLocked() bool

	// PointerSpeed returns the motion multiplier.
	PointerSpeed() float32

	// SetPointerSpeed sets the motion multiplier. Non-positive values are ignored.
	SetPointerSpeed(speed float32)

	// MinPolarAngle returns the lower polar angle bound in radians (0 looks straight up).
	MinPolarAngle() float32

	// MaxPolarAngle returns the upper polar angle bound in radians (π looks straight down).
	MaxPolarAngle() float32

	// SetPolarAngleBounds sets the vertical look limits as polar angles measured from the up axis.
	// Values are clamped into [0, π] and swapped if min > max.
	//
	// Parameters:
	//   - min: lower polar angle in radians
	//   - max: upper polar angle in radians
	SetPolarAngleBounds(min, max float32)

	// Subscribe registers a handler for a controls notification.
	//
	// Parameters:
	//   - t: the notification type
	//   - handler: invoked synchronously, in registration order
	//
	// Returns:
	//   - event.SubscriptionID: token for Unsubscribe
	Subscribe(t ControlsEventType, handler func(ControlsEvent)) event.SubscriptionID

	// Unsubscribe removes a handler registered by Subscribe.
	//
	// Parameters:
	//   - t: the notification type
	//   - id: the token returned by Subscribe
	//
	// Returns:
	//   - bool: true if a handler was removed
	Unsubscribe(t ControlsEventType, id event.SubscriptionID) bool
}
