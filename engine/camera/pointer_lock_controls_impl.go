package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-controls/common"
	"github.com/Carmen-Shannon/oxy-controls/engine/event"
	"github.com/Carmen-Shannon/oxy-controls/engine/input"
	"github.com/Carmen-Shannon/oxy-controls/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// pointerSensitivity converts device pixels of motion into radians before PointerSpeed is applied.
const pointerSensitivity = 0.002

const halfPi = float32(math.Pi / 2)

// forward is the camera-space look axis.
var forward = mgl32.Vec3{0, 0, -1}

type pointerLockControlsImpl struct {
	mu *sync.Mutex

	object  Camera
	element input.Element

	// document and listeners are set while connected
	document  input.Document
	listeners map[input.EventType]input.ListenerID

	enabled bool
	locked  bool

	minPolarAngle float32
	maxPolarAngle float32
	pointerSpeed  float32

	logger     *zap.Logger
	dispatcher *event.Dispatcher[ControlsEventType, ControlsEvent]
}

var _ PointerLockControls = &pointerLockControlsImpl{}

// NewPointerLockControls creates pointer lock controls for cam.
// Defaults: enabled, unlocked, polar bounds [0, π], pointer speed 1.
// If an element is supplied via WithElement the controls connect to it immediately.
//
// Parameters:
//   - cam: the camera to control (owned by the caller)
//   - options: functional options to configure the controls
//
// Returns:
//   - PointerLockControls: the newly created controls
func NewPointerLockControls(cam Camera, options ...PointerLockControlsOption) PointerLockControls {
	c := &pointerLockControlsImpl{
		mu:            &sync.Mutex{},
		object:        cam,
		enabled:       true,
		minPolarAngle: 0,
		maxPolarAngle: math.Pi,
		pointerSpeed:  1.0,
		logger:        logger.Provide(),
		dispatcher:    event.NewDispatcher[ControlsEventType, ControlsEvent](),
	}
	for _, option := range options {
		option(c)
	}
	if c.element != nil {
		c.Connect(c.element)
	}
	return c
}

func (c *pointerLockControlsImpl) Connect(el input.Element) {
	if el == nil {
		panic("pointer lock controls: Connect requires a non-nil element")
	}

	c.mu.Lock()
	if c.document != nil && input.SameElement(c.element, el) {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if c.isConnected() {
		c.Disconnect()
	}

	doc := el.Document()
	listeners := map[input.EventType]input.ListenerID{
		input.EventMouseMove:         doc.AddEventListener(input.EventMouseMove, c.onMouseMove),
		input.EventPointerLockChange: doc.AddEventListener(input.EventPointerLockChange, c.onPointerLockChange),
		input.EventPointerLockError:  doc.AddEventListener(input.EventPointerLockError, c.onPointerLockError),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.element = el
	c.document = doc
	c.listeners = listeners
}

func (c *pointerLockControlsImpl) Disconnect() {
	c.mu.Lock()
	if c.element == nil {
		c.mu.Unlock()
		panic("pointer lock controls: Disconnect called before an element was bound")
	}
	doc := c.document
	listeners := c.listeners
	c.document = nil
	c.listeners = nil
	c.mu.Unlock()

	if doc == nil {
		return
	}
	for t, id := range listeners {
		doc.RemoveEventListener(t, id)
	}
}

func (c *pointerLockControlsImpl) Dispose() {
	c.Disconnect()
}

func (c *pointerLockControlsImpl) Object() Camera {
	return c.object
}

func (c *pointerLockControlsImpl) Element() input.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.element
}

func (c *pointerLockControlsImpl) Direction() mgl32.Vec3 {
	return c.object.Quaternion().Rotate(forward)
}

func (c *pointerLockControlsImpl) DirectionInto(out *mgl32.Vec3) *mgl32.Vec3 {
	*out = c.Direction()
	return out
}

func (c *pointerLockControlsImpl) MoveForward(distance float32) {
	if !c.Enabled() {
		return
	}
	// up x right stays in the ground plane regardless of pitch
	right := c.object.MatrixWorld().Col(0).Vec3()
	dir := c.object.Up().Cross(right)
	c.object.Translate(dir.Mul(distance))
}

func (c *pointerLockControlsImpl) MoveRight(distance float32) {
	if !c.Enabled() {
		return
	}
	right := c.object.MatrixWorld().Col(0).Vec3()
	c.object.Translate(right.Mul(distance))
}

func (c *pointerLockControlsImpl) Lock(unadjustedMovement ...bool) {
	el := c.boundElement("Lock")
	opts := input.PointerLockOptions{}
	if len(unadjustedMovement) > 0 {
		opts.UnadjustedMovement = unadjustedMovement[0]
	}
	el.Document().RequestPointerLock(el, opts)
}

func (c *pointerLockControlsImpl) Unlock() {
	el := c.boundElement("Unlock")
	el.Document().ExitPointerLock()
}

func (c *pointerLockControlsImpl) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *pointerLockControlsImpl) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

func (c *pointerLockControlsImpl) IsLocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

func (c *pointerLockControlsImpl) PointerSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointerSpeed
}

func (c *pointerLockControlsImpl) SetPointerSpeed(speed float32) {
	if speed <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointerSpeed = speed
}

func (c *pointerLockControlsImpl) MinPolarAngle() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minPolarAngle
}

func (c *pointerLockControlsImpl) MaxPolarAngle() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxPolarAngle
}

func (c *pointerLockControlsImpl) SetPolarAngleBounds(min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minPolarAngle, c.maxPolarAngle = sanitizePolarBounds(min, max)
}

func (c *pointerLockControlsImpl) Subscribe(t ControlsEventType, handler func(ControlsEvent)) event.SubscriptionID {
	return c.dispatcher.Subscribe(t, handler)
}

func (c *pointerLockControlsImpl) Unsubscribe(t ControlsEventType, id event.SubscriptionID) bool {
	return c.dispatcher.Unsubscribe(t, id)
}

// --- event handlers ---

// onMouseMove turns relative motion into yaw/pitch while connected, enabled and locked.
func (c *pointerLockControlsImpl) onMouseMove(e input.Event) {
	c.mu.Lock()
	if c.document == nil || !c.enabled || !c.locked {
		c.mu.Unlock()
		return
	}
	scale := pointerSensitivity * c.pointerSpeed
	minPitch := halfPi - c.maxPolarAngle
	maxPitch := halfPi - c.minPolarAngle
	c.mu.Unlock()

	euler := common.EulerFromQuat(c.object.Quaternion())
	euler.Y -= float32(e.MovementX) * scale
	euler.X -= float32(e.MovementY) * scale
	euler.X = common.Clamp(euler.X, minPitch, maxPitch)
	c.object.SetQuaternion(euler.Quat())

	c.emit(ControlsEventChange)
}

// onPointerLockChange mirrors the document's capture state for the bound element.
func (c *pointerLockControlsImpl) onPointerLockChange(input.Event) {
	c.mu.Lock()
	doc := c.document
	el := c.element
	c.mu.Unlock()
	if doc == nil {
		return
	}

	locked := input.SameElement(doc.PointerLockElement(), el)

	c.mu.Lock()
	c.locked = locked
	c.mu.Unlock()

	if locked {
		c.emit(ControlsEventLock)
	} else {
		c.emit(ControlsEventUnlock)
	}
}

// onPointerLockError reports a capture failure. State is left unchanged.
func (c *pointerLockControlsImpl) onPointerLockError(e input.Event) {
	if !c.isConnected() {
		return
	}
	c.logger.Warn("unable to use pointer lock API", zap.Error(e.Err))
}

// --- internal helpers ---

func (c *pointerLockControlsImpl) emit(t ControlsEventType) {
	c.dispatcher.Dispatch(t, ControlsEvent{Type: t, Target: c})
}

func (c *pointerLockControlsImpl) isConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.document != nil
}

// boundElement returns the bound element or panics naming the offending call.
func (c *pointerLockControlsImpl) boundElement(op string) input.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.element == nil {
		panic("pointer lock controls: " + op + " called before an element was bound")
	}
	return c.element
}

// sanitizePolarBounds clamps both bounds into [0, π] and orders them.
func sanitizePolarBounds(min, max float32) (float32, float32) {
	min = common.Clamp(min, 0, math.Pi)
	max = common.Clamp(max, 0, math.Pi)
	if min > max {
		min, max = max, min
	}
	return min, max
}
