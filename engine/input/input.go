// Package input defines the host contract consumed by pointer-driven controls: elements that can
// request exclusive pointer capture, and the document that owns capture state and dispatches
// relative motion and capture-change events to listeners.
package input

import (
	"errors"
	"reflect"

	"github.com/Carmen-Shannon/oxy-controls/engine/event"
)

// EventType names an event dispatched by a Document.
type EventType string

const (
	// EventMouseMove carries relative pointer motion in MovementX/MovementY.
	EventMouseMove EventType = "mousemove"
	// EventPointerLockChange fires after the document's pointer lock element changed.
	EventPointerLockChange EventType = "pointerlockchange"
	// EventPointerLockError fires when a capture request could not be honoured.
	EventPointerLockError EventType = "pointerlockerror"
)

var (
	// ErrRawMotionUnsupported is reported when unadjusted movement was requested but the platform
	// cannot deliver raw (unaccelerated) motion.
	ErrRawMotionUnsupported = errors.New("raw mouse motion is not supported on this platform")

	// ErrNilElement is reported when pointer lock is requested for a nil element.
	ErrNilElement = errors.New("pointer lock requested for a nil element")
)

// ListenerID identifies a listener registration on a Document.
type ListenerID = event.SubscriptionID

// Listener receives events dispatched by a Document.
type Listener = event.Handler[Event]

// Event is a single notification dispatched by a Document.
type Event struct {
	// Type is the kind of event.
	Type EventType

	// MovementX and MovementY are the relative motion since the previous sample, in device pixels.
	// Only set for EventMouseMove.
	MovementX, MovementY float64

	// ClientX and ClientY are the absolute cursor position reported by the host.
	// Only set for EventMouseMove.
	ClientX, ClientY float64

	// Target is the element the event concerns: the requesting element for lock errors,
	// the new lock element (or nil) for lock changes.
	Target Element

	// Err describes why a capture request failed. Only set for EventPointerLockError.
	Err error
}

// PointerLockOptions tunes a capture request.
type PointerLockOptions struct {
	// UnadjustedMovement asks the platform to disable OS pointer acceleration while captured.
	UnadjustedMovement bool
}

// Element is an input surface that can be captured. Elements are compared by identity with
// SameElement, so implementations should be pointer types.
type Element interface {
	// Document returns the document owning this element's events and capture state.
	//
	// Returns:
	//   - Document: the owning document
	Document() Document
}

// SameElement reports whether a and b are the same element. Two nil elements are the same.
// Elements whose dynamic type is not comparable only match themselves through a pointer, so a
// non-comparable value never matches instead of panicking.
//
// Parameters:
//   - a, b: the elements to compare
//
// Returns:
//   - bool: true if a and b are identical
func SameElement(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Backend is the platform primitive that actually grabs or frees the cursor.
type Backend interface {
	// Capture hides the cursor and switches the platform to relative motion.
	//
	// Parameters:
	//   - unadjusted: request raw motion without OS acceleration
	//
	// Returns:
	//   - error: non-nil if capture is not possible
	Capture(unadjusted bool) error

	// Release restores the normal cursor. Must be safe to call when not captured.
	Release()
}

// Document owns pointer capture state for a set of elements and dispatches input events.
// Capture requests are asynchronous: RequestPointerLock and ExitPointerLock only queue a request,
// which ProcessPending resolves and reports through EventPointerLockChange or EventPointerLockError.
type Document interface {
	// AddEventListener registers a listener for an event type.
	//
	// Parameters:
	//   - t: the event type
	//   - l: the listener
	//
	// Returns:
	//   - ListenerID: token required to remove this registration
	AddEventListener(t EventType, l Listener) ListenerID

	// RemoveEventListener removes a registration made by AddEventListener.
	//
	// Parameters:
	//   - t: the event type the listener was registered for
	//   - id: the registration token
	//
	// Returns:
	//   - bool: true if a listener was removed
	RemoveEventListener(t EventType, id ListenerID) bool

	// ListenerCount returns the number of listeners registered for an event type.
	//
	// Parameters:
	//   - t: the event type
	//
	// Returns:
	//   - int: number of listeners
	ListenerCount(t EventType) int

	// DispatchEvent delivers an event to every listener of its type, in registration order.
	//
	// Parameters:
	//   - e: the event to dispatch
	DispatchEvent(e Event)

	// PointerLockElement returns the element currently holding pointer capture, or nil.
	//
	// Returns:
	//   - Element: the captured element or nil
	PointerLockElement() Element

	// RequestPointerLock queues a capture request for el.
	//
	// Parameters:
	//   - el: the element asking for capture
	//   - opts: capture options
	RequestPointerLock(el Element, opts PointerLockOptions)

	// ExitPointerLock queues a request to release pointer capture.
	ExitPointerLock()

	// ReleasePointerLock drops capture immediately on behalf of the platform
	// (escape key, focus loss) and dispatches EventPointerLockChange if capture was held.
	ReleasePointerLock()

	// ProcessPending resolves queued capture requests in order. Hosts call it once per
	// message loop iteration.
	ProcessPending()

	// MoveCursor feeds an absolute cursor sample and dispatches EventMouseMove with the
	// movement since the previous sample.
	//
	// Parameters:
	//   - x, y: absolute cursor position in device pixels
	MoveCursor(x, y float64)

	// SetBackend replaces the platform capture primitive. A nil backend always succeeds.
	//
	// Parameters:
	//   - b: the backend
	SetBackend(b Backend)
}
