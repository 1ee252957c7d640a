package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-controls/engine/event"
	"go.uber.org/zap"
)

// lockRequest is a queued capture transition.
type lockRequest struct {
	element Element
	options PointerLockOptions
	exit    bool
}

type documentImpl struct {
	mu *sync.Mutex

	listeners *event.Dispatcher[EventType, Event]
	backend   Backend
	logger    *zap.Logger

	lockElement Element
	pending     []lockRequest

	// last cursor sample; hasSample is false until the first sample after creation or a capture transition
	lastX, lastY float64
	hasSample    bool
}

var _ Document = &documentImpl{}

// NewDocument creates a Document with no capture held and no listeners.
//
// Parameters:
//   - options: functional options to configure the document
//
// Returns:
//   - Document: the newly created document
func NewDocument(options ...DocumentBuilderOption) Document {
	d := &documentImpl{
		mu:        &sync.Mutex{},
		listeners: event.NewDispatcher[EventType, Event](),
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(d)
	}
	return d
}

func (d *documentImpl) AddEventListener(t EventType, l Listener) ListenerID {
	return d.listeners.Subscribe(t, l)
}

func (d *documentImpl) RemoveEventListener(t EventType, id ListenerID) bool {
	return d.listeners.Unsubscribe(t, id)
}

func (d *documentImpl) ListenerCount(t EventType) int {
	return d.listeners.Count(t)
}

func (d *documentImpl) DispatchEvent(e Event) {
	d.listeners.Dispatch(e.Type, e)
}

func (d *documentImpl) PointerLockElement() Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lockElement
}

func (d *documentImpl) RequestPointerLock(el Element, opts PointerLockOptions) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, lockRequest{element: el, options: opts})
}

func (d *documentImpl) ExitPointerLock() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, lockRequest{exit: true})
}

func (d *documentImpl) ReleasePointerLock() {
	d.mu.Lock()
	if d.lockElement == nil {
		d.mu.Unlock()
		return
	}
	d.lockElement = nil
	d.hasSample = false
	backend := d.backend
	d.mu.Unlock()

	if backend != nil {
		backend.Release()
	}
	d.logger.Debug("pointer lock released by platform")
	d.DispatchEvent(Event{Type: EventPointerLockChange})
}

func (d *documentImpl) ProcessPending() {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, req := range pending {
		if req.exit {
			d.resolveExit()
		} else {
			d.resolveLock(req)
		}
	}
}

func (d *documentImpl) MoveCursor(x, y float64) {
	d.mu.Lock()
	var dx, dy float64
	if d.hasSample {
		dx = x - d.lastX
		dy = y - d.lastY
	}
	d.lastX, d.lastY = x, y
	d.hasSample = true
	d.mu.Unlock()

	d.DispatchEvent(Event{
		Type:      EventMouseMove,
		MovementX: dx,
		MovementY: dy,
		ClientX:   x,
		ClientY:   y,
	})
}

func (d *documentImpl) SetBackend(b Backend) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.backend = b
}

// resolveLock grants or rejects a single capture request and dispatches the outcome.
// Requests for the element already holding capture resolve silently.
func (d *documentImpl) resolveLock(req lockRequest) {
	if req.element == nil {
		d.logger.Warn("pointer lock request rejected", zap.Error(ErrNilElement))
		d.DispatchEvent(Event{Type: EventPointerLockError, Err: ErrNilElement})
		return
	}

	d.mu.Lock()
	if SameElement(d.lockElement, req.element) {
		d.mu.Unlock()
		return
	}
	backend := d.backend
	d.mu.Unlock()

	if backend != nil {
		if err := backend.Capture(req.options.UnadjustedMovement); err != nil {
			d.logger.Warn("pointer lock request rejected", zap.Error(err))
			d.DispatchEvent(Event{Type: EventPointerLockError, Target: req.element, Err: err})
			return
		}
	}

	d.mu.Lock()
	d.lockElement = req.element
	d.hasSample = false
	d.mu.Unlock()

	d.logger.Debug("pointer lock acquired", zap.Bool("unadjusted", req.options.UnadjustedMovement))
	d.DispatchEvent(Event{Type: EventPointerLockChange, Target: req.element})
}

// resolveExit releases capture if it is held and dispatches the change.
func (d *documentImpl) resolveExit() {
	d.mu.Lock()
	if d.lockElement == nil {
		d.mu.Unlock()
		return
	}
	d.lockElement = nil
	d.hasSample = false
	backend := d.backend
	d.mu.Unlock()

	if backend != nil {
		backend.Release()
	}
	d.logger.Debug("pointer lock exited")
	d.DispatchEvent(Event{Type: EventPointerLockChange})
}
